package specification

import "gorm.io/gorm"

// ByEmailInsensitive matches a record by email, case-insensitively.
type ByEmailInsensitive struct {
	Email string
}

func (s ByEmailInsensitive) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = LOWER(?)", s.Email)
}

// ByPhoneDigits matches a record by the digits-only phone column, so
// formatting differences ("205-555-0142" vs "(205) 555 0142") don't matter.
type ByPhoneDigits struct {
	Digits string
}

func (s ByPhoneDigits) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone_digits = ?", s.Digits)
}

// BySessionID filters transcript rows for one conversation.
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}
