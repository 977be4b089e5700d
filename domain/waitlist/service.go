package waitlist

import (
	"context"

	"github.com/playitloud/waitlist-api/internal/identity"
	"github.com/playitloud/waitlist-api/internal/log"
	apperrors "github.com/playitloud/waitlist-api/pkg/errors"
)

// ConfirmationSender is the slice of the mail facade this service needs.
type ConfirmationSender interface {
	SendWaitlistConfirmation(ctx context.Context, email, fullName string) (string, error)
}

type WaitlistService interface {
	// JoinWaitlist creates a waitlist entry from the landing-page form,
	// rejecting duplicates, then sends a best-effort confirmation email.
	JoinWaitlist(ctx context.Context, req *JoinWaitlistRequest) (*WaitlistEntryResponse, error)

	// JoinWithProfile creates a waitlist entry from identity-provider profile
	// fields. The provider session has already been terminated by the caller.
	JoinWithProfile(ctx context.Context, profile *identity.Profile) (*WaitlistEntryResponse, error)

	// ResolveDuplicates scans the full collection and deletes all but the
	// earliest-created record per duplicate group. Best effort, not a
	// transaction: per-record failures are tallied, never fatal.
	ResolveDuplicates(ctx context.Context) (*DedupReport, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	sender     ConfirmationSender
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, sender ConfirmationSender) WaitlistService {
	return &waitlistService{logger: logger, repository: repository, sender: sender}
}

func (s *waitlistService) JoinWaitlist(ctx context.Context, req *JoinWaitlistRequest) (*WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("JoinWaitlist received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	entry, err := s.repository.CreateEntryIfAbsent(ctx, ToWaitlistEntryModel(req))
	if err != nil {
		if IsConflict(err) {
			logger.Info("Waitlist signup rejected as duplicate", "email", req.Email)
		} else {
			logger.Error("Failed to create waitlist entry", "error", err)
		}
		return nil, err
	}

	s.sendConfirmation(ctx, entry.Email, entry.FullName)

	response := ToWaitlistEntryResponse(entry)
	return &response, nil
}

func (s *waitlistService) JoinWithProfile(ctx context.Context, profile *identity.Profile) (*WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if profile == nil || profile.Email == "" {
		logger.Error("JoinWithProfile received profile without email")
		return nil, apperrors.NewInvalidRequestError("identity provider returned no email address", nil)
	}

	entry, err := s.repository.CreateEntryIfAbsent(ctx, ToProviderEntryModel(profile))
	if err != nil {
		if IsConflict(err) {
			logger.Info("Provider signup rejected as duplicate", "email", profile.Email)
		} else {
			logger.Error("Failed to create waitlist entry from provider profile", "error", err)
		}
		return nil, err
	}

	s.sendConfirmation(ctx, entry.Email, entry.FullName)

	response := ToWaitlistEntryResponse(entry)
	return &response, nil
}

// The write already succeeded; a failed or unconfigured send is logged and
// swallowed.
func (s *waitlistService) sendConfirmation(ctx context.Context, email, fullName string) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if _, err := s.sender.SendWaitlistConfirmation(ctx, email, fullName); err != nil {
		logger.Warn("Confirmation email not sent", "email", email, "error", err)
		return
	}
	logger.Info("Confirmation email sent", "email", email)
}

func (s *waitlistService) ResolveDuplicates(ctx context.Context) (*DedupReport, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	// A failed scan aborts the whole run with no partial counts.
	entries, err := s.repository.GetAllEntries(ctx)
	if err != nil {
		logger.Error("Duplicate resolution aborted: scan failed", "error", err)
		return nil, err
	}

	report := &DedupReport{Total: len(entries), Final: len(entries)}
	if len(entries) == 0 {
		return report, nil
	}

	for _, id := range planDeletions(entries) {
		if err := s.repository.DeleteEntry(ctx, id); err != nil {
			report.Errors++
			logger.Error("Failed to delete duplicate waitlist entry", "id", id, "error", err)
			continue
		}
		report.Deleted++
	}

	report.Final = report.Total - report.Deleted

	logger.Info("Duplicate resolution completed",
		"total", report.Total,
		"deleted", report.Deleted,
		"errors", report.Errors,
		"final", report.Final,
	)

	return report, nil
}
