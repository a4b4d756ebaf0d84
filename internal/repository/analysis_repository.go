package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnalysisRecord is one immutable entry of the per-user analysis log, one per
// uploaded region per upload event. Rows are never updated or deleted.
type AnalysisRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"column:user_id;index;size:64" json:"user_id"`
	Filename   string    `gorm:"column:filename;size:128" json:"filename"`
	FacePart   string    `gorm:"column:face_part;size:16" json:"face_part"`
	Severity   string    `gorm:"column:severity;type:text" json:"severity"`
	Confidence float64   `gorm:"column:confidence" json:"confidence"`
	UploadTime time.Time `gorm:"column:upload_time" json:"upload_time"`
}

// TableName overrides the default table name.
func (AnalysisRecord) TableName() string {
	return "acne_analysis"
}

// SeverityCount is the number of log entries carrying one severity label.
type SeverityCount struct {
	Severity string `json:"severity"`
	Count    int64  `json:"count"`
}

// SeverityAggregation summarizes a user's analysis history.
type SeverityAggregation struct {
	TotalRecords      int64           `json:"total_records"`
	AverageConfidence float64         `json:"average_confidence"`
	BySeverity        []SeverityCount `json:"by_severity"`
}

// AnalysisRepository provides access to the append-only analysis log.
type AnalysisRepository struct {
	base
}

// NewAnalysisRepository creates a new log instance.
func NewAnalysisRepository(db *gorm.DB, logger *zap.Logger) *AnalysisRepository {
	return &AnalysisRepository{base: newBase(db, logger.Named("analysis_repository"))}
}

// AutoMigrate ensures the schema is available.
func (r *AnalysisRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&AnalysisRecord{})
}

// Append inserts a new analysis record.
func (r *AnalysisRepository) Append(ctx context.Context, record *AnalysisRecord) error {
	return r.executeWithRetry(ctx, "repository.append_record", record.UserID, func() error {
		return r.db.WithContext(ctx).Create(record).Error
	})
}

// ListByUser returns all of a user's records, most recent upload first. A user
// with no history yields an empty slice, not an error.
func (r *AnalysisRepository) ListByUser(ctx context.Context, userID string) ([]AnalysisRecord, error) {
	records := make([]AnalysisRecord, 0)
	err := r.executeWithRetry(ctx, "repository.list_records", userID, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("upload_time DESC").
			Order("id DESC").
			Find(&records).Error
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Summarize aggregates a user's analysis history.
func (r *AnalysisRepository) Summarize(ctx context.Context, userID string) (*SeverityAggregation, error) {
	agg := &SeverityAggregation{BySeverity: make([]SeverityCount, 0)}
	err := r.executeWithRetry(ctx, "repository.summarize_records", userID, func() error {
		row := r.db.WithContext(ctx).
			Model(&AnalysisRecord{}).
			Where("user_id = ?", userID).
			Select("count(*), coalesce(avg(confidence), 0)").
			Row()
		if err := row.Scan(&agg.TotalRecords, &agg.AverageConfidence); err != nil {
			return err
		}
		return r.db.WithContext(ctx).
			Model(&AnalysisRecord{}).
			Where("user_id = ?", userID).
			Select("severity, count(*) as count").
			Group("severity").
			Order("count DESC").
			Scan(&agg.BySeverity).Error
	})
	if err != nil {
		return nil, err
	}
	return agg, nil
}
