package models

import (
	"database/sql"
	"time"
)

// Sign-in method tags
const (
	SignInMethodForm   = "form"
	SignInMethodGoogle = "google"
)

// WaitlistEntry is one landing-page signup. Email and phone are indexed but
// deliberately NOT unique: the collection predates the conditional-write
// path and may still hold duplicates, which the duplicate resolver cleans
// up. New writes go through WaitlistRepository.CreateEntryIfAbsent.
type WaitlistEntry struct {
	ID       uint   `gorm:"primaryKey"`
	FullName string `gorm:"not null"`
	Email    string `gorm:"not null;index"`
	Phone    string `gorm:"not null;index"`

	// Populated only for identity-provider signups.
	ProviderSubjectID sql.NullString `gorm:"index"`
	ProviderEmail     sql.NullString
	SignInMethod      sql.NullString

	// CreatedAt is the store-assigned creation timestamp and the resolver's
	// tie-break key. A zero value sorts as the oldest record.
	CreatedAt time.Time
	UpdatedAt time.Time
}
