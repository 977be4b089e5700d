package mail

import (
	"context"
	"errors"

	"github.com/playitloud/waitlist-api/internal/log"
	"github.com/playitloud/waitlist-api/pkg/circuitbreaker"
)

// ErrNotConfigured is returned when no mail transport credentials are set.
// Callers treat it as a soft success so missing mail configuration never
// blocks a capture flow.
var ErrNotConfigured = errors.New("mail: transport is not configured")

// Sender is the application-facing facade over the transport. Sends run
// behind a circuit breaker so a dead SMTP host fails fast instead of
// stalling every request for the full dial timeout.
type Sender struct {
	mailer  Mailer
	breaker circuitbreaker.CircuitBreaker
	logger  *log.Logger
}

func NewSender(mailer Mailer, logger *log.Logger) *Sender {
	return &Sender{
		mailer:  mailer,
		breaker: circuitbreaker.NewCircuitBreaker(nil),
		logger:  logger,
	}
}

// Configured reports whether a transport is available.
func (s *Sender) Configured() bool {
	return s.mailer != nil
}

func (s *Sender) SendWaitlistConfirmation(ctx context.Context, email, fullName string) (string, error) {
	msg, err := WaitlistConfirmation(email, fullName)
	if err != nil {
		return "", err
	}
	return s.send(ctx, msg)
}

func (s *Sender) SendPitchConfirmation(ctx context.Context, email, name, pitchTitle string) (string, error) {
	msg, err := PitchConfirmation(email, name, pitchTitle)
	if err != nil {
		return "", err
	}
	return s.send(ctx, msg)
}

func (s *Sender) send(ctx context.Context, msg *Message) (string, error) {
	if s.mailer == nil {
		s.logger.Info("Mail transport not configured; skipping send", "to", msg.To, "subject", msg.Subject)
		return "", ErrNotConfigured
	}

	var messageID string
	err := s.breaker.Call(func() error {
		var sendErr error
		messageID, sendErr = s.mailer.Send(ctx, msg)
		return sendErr
	})
	if err != nil {
		return "", err
	}

	return messageID, nil
}
