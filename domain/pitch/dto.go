package pitch

import (
	"strings"

	"github.com/playitloud/waitlist-api/internal/models"
	"github.com/playitloud/waitlist-api/pkg/constants"
	apperrors "github.com/playitloud/waitlist-api/pkg/errors"
	"github.com/playitloud/waitlist-api/pkg/validate"
)

type SubmitPitchRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type PitchResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Validate runs every field check and returns all failures together, in
// declaration order, so the caller can render the whole form's errors at
// once.
func (req *SubmitPitchRequest) Validate() []apperrors.ValidationErrorResponse {
	var errs []apperrors.ValidationErrorResponse

	if len(strings.TrimSpace(req.Name)) < 2 {
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "name", Message: "Name must be at least 2 characters"})
	}

	if !validate.Email(validate.NormalizeEmail(req.Email)) {
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "email", Message: "Invalid email format"})
	}

	if !validate.Phone(validate.NormalizePhone(req.Phone)) {
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "phone", Message: "Invalid phone number format"})
	}

	if len(strings.TrimSpace(req.Title)) < 3 {
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "title", Message: "Title must be at least 3 characters"})
	}

	if len(strings.TrimSpace(req.Description)) < 10 {
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "description", Message: "Description must be at least 10 characters"})
	}

	if !validate.URL(req.URL) {
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "url", Message: "A valid http or https link is required"})
	}

	return errs
}

// ========================================
// Mappers
// ========================================

func ToPitchSubmissionModel(req *SubmitPitchRequest) *models.PitchSubmission {
	if req == nil {
		return nil
	}
	return &models.PitchSubmission{
		Name:        strings.TrimSpace(req.Name),
		Email:       validate.NormalizeEmail(req.Email),
		Phone:       validate.NormalizePhone(req.Phone),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		URL:         strings.TrimSpace(req.URL),
		Type:        models.PitchTypeURL,
		Status:      models.PitchStatusPending,
	}
}

func ToPitchResponse(submission *models.PitchSubmission) PitchResponse {
	if submission == nil {
		return PitchResponse{}
	}
	return PitchResponse{
		ID:          submission.ID,
		Name:        submission.Name,
		Email:       submission.Email,
		Phone:       submission.Phone,
		Title:       submission.Title,
		Description: submission.Description,
		URL:         submission.URL,
		Type:        submission.Type,
		Status:      submission.Status,
		CreatedAt:   submission.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}

func ToPitchResponses(submissions []*models.PitchSubmission) []PitchResponse {
	responses := make([]PitchResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, ToPitchResponse(submission))
	}
	return responses
}
