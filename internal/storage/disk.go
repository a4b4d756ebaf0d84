package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	unsafeChars       = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)
	allowedExtensions = map[string]struct{}{"png": {}, "jpg": {}, "jpeg": {}}
)

// SanitizeUserID reduces a raw user identifier to a filesystem-safe token.
// An identifier that sanitizes to nothing becomes "anonymous".
func SanitizeUserID(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "\\", "/")
	if idx := strings.LastIndex(raw, "/"); idx >= 0 {
		raw = raw[idx+1:]
	}
	token := unsafeChars.ReplaceAllString(raw, "_")
	token = strings.Trim(token, "._")
	if token == "" {
		return "anonymous"
	}
	return token
}

// AllowedImage reports whether the filename carries an accepted image
// extension (png, jpg or jpeg, case-insensitive).
func AllowedImage(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(filename[idx+1:])]
	return ok
}

// ImageFilename derives the stored filename for a user's region image. The
// name is deterministic, so re-uploading the same region overwrites the file.
func ImageFilename(userID, region string) string {
	return fmt.Sprintf("%s_%s.jpg", userID, region)
}

// Disk stores uploaded images under {root}/{user_id}/.
type Disk struct {
	root string
}

// NewDisk returns a store rooted at the given directory.
func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

// Root returns the storage root directory.
func (d *Disk) Root() string {
	return d.root
}

// UserDir returns the directory holding a user's images.
func (d *Disk) UserDir(userID string) string {
	return filepath.Join(d.root, userID)
}

// EnsureUserDir creates the user's directory if absent and returns its path.
func (d *Disk) EnsureUserDir(userID string) (string, error) {
	dir := d.UserDir(userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// ImagePath returns the on-disk path of a stored image.
func (d *Disk) ImagePath(userID, filename string) string {
	return filepath.Join(d.root, userID, filename)
}

// SaveImage writes the image bytes to their deterministic path, replacing any
// previous upload for the same user and region.
func (d *Disk) SaveImage(userID, filename string, data []byte) (string, error) {
	if _, err := d.EnsureUserDir(userID); err != nil {
		return "", err
	}
	path := d.ImagePath(userID, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
