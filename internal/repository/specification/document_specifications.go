package specification

import "gorm.io/gorm"

// SharedOnly filters documents flagged shared
type SharedOnly struct{}

func (s SharedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_shared = ?", true)
}

// ProcessingOnly filters documents still in the processing state
type ProcessingOnly struct{}

func (s ProcessingOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_processing = ?", true)
}

// NameContains matches documents whose filename or original name contains the
// query, case-insensitive.
type NameContains struct {
	Query string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("filename ILIKE ? OR original_name ILIKE ?", pattern, pattern)
}

// ByRole filters messages by author role
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}
