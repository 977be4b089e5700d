package models

import "time"

// Pitch type discriminators. Only URL-referenced pitches are accepted today;
// the upload variant exists in historical data.
const (
	PitchTypeURL    = "url"
	PitchTypeUpload = "upload"
)

// PitchStatusPending is the initial review status. Status transitions are
// managed outside this system.
const PitchStatusPending = "pending"

// PitchSubmission is a free-form content pitch. Created once, never updated
// or deleted by this system.
type PitchSubmission struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null;index"`
	Phone       string `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	URL         string `gorm:"not null"`
	Type        string `gorm:"not null;default:url"`
	Status      string `gorm:"not null;default:pending"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
