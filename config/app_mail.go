package config

import (
	"github.com/playitloud/waitlist-api/internal/log"
	"github.com/playitloud/waitlist-api/internal/mail"
)

// NewMailSender builds the confirmation-email facade from the environment.
// Like the cache, mail is optional: with no transport credentials set the
// sender still works but reports every send as not configured.
func NewMailSender(logger *log.Logger) *mail.Sender {
	cfg := mail.ConfigFromEnv()

	if !cfg.IsConfigured() {
		logger.Warn("No mail transport configured; confirmation emails will be skipped")
		return mail.NewSender(nil, logger)
	}

	logger.Info("Mail transport configured")
	return mail.NewSender(cfg.NewMailer(), logger)
}
