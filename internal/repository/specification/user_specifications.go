package specification

import "gorm.io/gorm"

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByUsername filters users by username
type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

// ByMicrosoftId filters users by linked Microsoft Graph identity
type ByMicrosoftId struct {
	MicrosoftId string
}

func (s ByMicrosoftId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("microsoft_id = ?", s.MicrosoftId)
}
