// Package mail sends the templated confirmation emails. Delivery is always
// best-effort: a failed send after a successful store write is logged and
// swallowed, never surfaced as a flow failure.
package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Message is a single templated email to one recipient.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a message and returns the provider message id.
type Mailer interface {
	Send(ctx context.Context, msg *Message) (messageID string, err error)
}

type smtpMailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

func (m *smtpMailer) Send(ctx context.Context, msg *Message) (string, error) {
	if msg == nil || msg.To == "" {
		return "", fmt.Errorf("mail: message has no recipient")
	}

	// gomail has no context support; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), m.dialer.Host)

	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.fromEmail, m.fromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetHeader("Message-Id", messageID)
	gm.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(gm); err != nil {
		return "", fmt.Errorf("mail: send to %s failed: %w", msg.To, err)
	}

	return messageID, nil
}
