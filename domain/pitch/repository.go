package pitch

import (
	"context"

	"github.com/playitloud/waitlist-api/internal/models"
	apperrors "github.com/playitloud/waitlist-api/pkg/errors"
	"gorm.io/gorm"
)

type PitchRepository interface {
	// CreateSubmission persists a new pitch. Resubmissions are allowed, so
	// there is no duplicate check here.
	CreateSubmission(ctx context.Context, submission *models.PitchSubmission) (*models.PitchSubmission, error)
	// GetAllSubmissions returns every pitch, newest first.
	GetAllSubmissions(ctx context.Context) ([]*models.PitchSubmission, error)
}

type pitchRepository struct {
	db *gorm.DB
}

func NewPitchRepository(db *gorm.DB) PitchRepository {
	return &pitchRepository{db: db}
}

func (pr *pitchRepository) CreateSubmission(ctx context.Context, submission *models.PitchSubmission) (*models.PitchSubmission, error) {
	if err := pr.db.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to create pitch submission", err)
	}

	return submission, nil
}

func (pr *pitchRepository) GetAllSubmissions(ctx context.Context) ([]*models.PitchSubmission, error) {
	var submissions []*models.PitchSubmission

	if err := pr.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch pitch submissions", err)
	}

	return submissions, nil
}
