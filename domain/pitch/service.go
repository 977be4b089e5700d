package pitch

import (
	"context"

	"github.com/playitloud/waitlist-api/internal/log"
	apperrors "github.com/playitloud/waitlist-api/pkg/errors"
)

// ConfirmationSender is the slice of the mail facade this service needs.
type ConfirmationSender interface {
	SendPitchConfirmation(ctx context.Context, email, name, pitchTitle string) (string, error)
}

type PitchService interface {
	// SubmitPitch stores a pitch submission and sends a best-effort
	// confirmation email to the submitter.
	SubmitPitch(ctx context.Context, req *SubmitPitchRequest) (*PitchResponse, error)

	// ListPitches returns every submission, newest first.
	ListPitches(ctx context.Context) ([]PitchResponse, error)
}

type pitchService struct {
	logger     *log.Logger
	repository PitchRepository
	sender     ConfirmationSender
}

func NewPitchService(logger *log.Logger, repository PitchRepository, sender ConfirmationSender) PitchService {
	return &pitchService{logger: logger, repository: repository, sender: sender}
}

func (s *pitchService) SubmitPitch(ctx context.Context, req *SubmitPitchRequest) (*PitchResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("SubmitPitch received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	submission, err := s.repository.CreateSubmission(ctx, ToPitchSubmissionModel(req))
	if err != nil {
		logger.Error("Failed to create pitch submission", "error", err)
		return nil, err
	}

	// The write already succeeded; a failed or unconfigured send is logged
	// and swallowed.
	if _, err := s.sender.SendPitchConfirmation(ctx, submission.Email, submission.Name, submission.Title); err != nil {
		logger.Warn("Pitch confirmation email not sent", "email", submission.Email, "error", err)
	} else {
		logger.Info("Pitch confirmation email sent", "email", submission.Email)
	}

	response := ToPitchResponse(submission)
	return &response, nil
}

func (s *pitchService) ListPitches(ctx context.Context) ([]PitchResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	submissions, err := s.repository.GetAllSubmissions(ctx)
	if err != nil {
		logger.Error("Failed to fetch pitch submissions", "error", err)
		return nil, err
	}

	return ToPitchResponses(submissions), nil
}
