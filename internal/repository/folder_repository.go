package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserFolder pairs a user with their on-disk upload directory. The unique
// index on username guarantees at most one row per user.
type UserFolder struct {
	ID         uint   `gorm:"primaryKey"`
	Username   string `gorm:"column:username;uniqueIndex;size:64"`
	FolderPath string `gorm:"column:folder_path;size:255"`
}

// TableName overrides the default table name.
func (UserFolder) TableName() string {
	return "user_folders"
}

// FolderRepository maintains the user folder registry.
type FolderRepository struct {
	base
}

// NewFolderRepository creates a new registry instance.
func NewFolderRepository(db *gorm.DB, logger *zap.Logger) *FolderRepository {
	return &FolderRepository{base: newBase(db, logger.Named("folder_repository"))}
}

// AutoMigrate ensures the schema is available.
func (r *FolderRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&UserFolder{})
}

// Ensure registers the user's folder if it is not registered yet. The write
// is a single atomic insert-if-absent, safe under concurrent calls for the
// same username.
func (r *FolderRepository) Ensure(ctx context.Context, username, folderPath string) error {
	return r.executeWithRetry(ctx, "repository.ensure_folder", username, func() error {
		folder := UserFolder{Username: username, FolderPath: folderPath}
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "username"}},
				DoNothing: true,
			}).
			Create(&folder).Error
	})
}

// Exists probes the registry for the given username.
func (r *FolderRepository) Exists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.executeWithRetry(ctx, "repository.folder_exists", username, func() error {
		return r.db.WithContext(ctx).
			Model(&UserFolder{}).
			Where("username = ?", username).
			Count(&count).Error
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
