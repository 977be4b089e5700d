package waitlist

import (
	"context"
	"errors"

	"github.com/playitloud/waitlist-api/internal/models"
	apperrors "github.com/playitloud/waitlist-api/pkg/errors"
	"gorm.io/gorm"
)

const (
	emailRegisteredMessage = "This email is already registered. Please use a different email address."
	phoneRegisteredMessage = "This phone number is already registered. Please use a different phone number."
)

type WaitlistRepository interface {
	// CreateEntryIfAbsent persists a new entry unless one already exists with
	// the same email or (when set) the same phone. The existence checks and
	// the insert run inside a single transaction, so concurrent submissions
	// cannot interleave between check and write.
	CreateEntryIfAbsent(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
	// GetAllEntries returns the full waitlist collection.
	GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error)
	// DeleteEntry removes an entry by its ID.
	DeleteEntry(ctx context.Context, id uint) error
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) CreateEntryIfAbsent(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	err := wr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.WaitlistEntry{}).Where("email = ?", entry.Email).Count(&count).Error; err != nil {
			return apperrors.NewDatabaseError("unable to check existing waitlist entries", err)
		}
		if count > 0 {
			return apperrors.NewConflictError(emailRegisteredMessage, nil)
		}

		// Provider signups may arrive without a phone; only a present phone
		// participates in duplicate detection.
		if entry.Phone != "" {
			if err := tx.Model(&models.WaitlistEntry{}).Where("phone = ?", entry.Phone).Count(&count).Error; err != nil {
				return apperrors.NewDatabaseError("unable to check existing waitlist entries", err)
			}
			if count > 0 {
				return apperrors.NewConflictError(phoneRegisteredMessage, nil)
			}
		}

		if err := tx.Create(entry).Error; err != nil {
			return apperrors.NewDatabaseError("unable to create waitlist entry", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (wr *waitlistRepository) GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error) {
	var entries []*models.WaitlistEntry

	if err := wr.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}

func (wr *waitlistRepository) DeleteEntry(ctx context.Context, id uint) error {
	result := wr.db.WithContext(ctx).Delete(&models.WaitlistEntry{}, id)

	if result.Error != nil {
		return apperrors.NewDatabaseError("unable to delete waitlist entry", result.Error)
	}

	// Another actor may have deleted the record since the scan.
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("waitlist entry not found", gorm.ErrRecordNotFound)
	}

	return nil
}

// IsConflict reports whether err is the duplicate rejection produced by
// CreateEntryIfAbsent.
func IsConflict(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeConflict
}
