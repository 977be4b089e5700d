package waitlist

import (
	"database/sql"
	"strings"

	"github.com/playitloud/waitlist-api/internal/identity"
	"github.com/playitloud/waitlist-api/internal/models"
	"github.com/playitloud/waitlist-api/pkg/constants"
	apperrors "github.com/playitloud/waitlist-api/pkg/errors"
	"github.com/playitloud/waitlist-api/pkg/validate"
)

type JoinWaitlistRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type WaitlistEntryResponse struct {
	ID           uint   `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	SignInMethod string `json:"sign_in_method,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// Validate runs every field check and returns all failures together, so the
// caller can render every invalid field at once. Nothing touches the store
// until this passes.
func (req *JoinWaitlistRequest) Validate() []apperrors.ValidationErrorResponse {
	var errs []apperrors.ValidationErrorResponse

	if trimmed(req.FullName) == "" {
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "full_name", Message: "This field is required"})
	}

	switch {
	case trimmed(req.Email) == "":
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "email", Message: "This field is required"})
	case !validate.Email(validate.NormalizeEmail(req.Email)):
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "email", Message: "Invalid email format"})
	}

	// The waitlist flow only requires a phone to be present; format checks
	// apply to the pitch flow.
	if validate.NormalizePhone(req.Phone) == "" {
		errs = append(errs, apperrors.ValidationErrorResponse{Field: "phone", Message: "This field is required"})
	}

	return errs
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryModel(req *JoinWaitlistRequest) *models.WaitlistEntry {
	if req == nil {
		return nil
	}
	return &models.WaitlistEntry{
		FullName:     trimmed(req.FullName),
		Email:        validate.NormalizeEmail(req.Email),
		Phone:        validate.NormalizePhone(req.Phone),
		SignInMethod: sql.NullString{String: models.SignInMethodForm, Valid: true},
	}
}

func ToProviderEntryModel(profile *identity.Profile) *models.WaitlistEntry {
	if profile == nil {
		return nil
	}
	email := validate.NormalizeEmail(profile.Email)
	return &models.WaitlistEntry{
		FullName:          trimmed(profile.FullName),
		Email:             email,
		Phone:             validate.NormalizePhone(profile.Phone),
		ProviderSubjectID: sql.NullString{String: profile.SubjectID, Valid: profile.SubjectID != ""},
		ProviderEmail:     sql.NullString{String: email, Valid: email != ""},
		SignInMethod:      sql.NullString{String: models.SignInMethodGoogle, Valid: true},
	}
}

func ToWaitlistEntryResponse(entry *models.WaitlistEntry) WaitlistEntryResponse {
	if entry == nil {
		return WaitlistEntryResponse{}
	}
	return WaitlistEntryResponse{
		ID:           entry.ID,
		FullName:     entry.FullName,
		Email:        entry.Email,
		Phone:        entry.Phone,
		SignInMethod: entry.SignInMethod.String,
		CreatedAt:    entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
