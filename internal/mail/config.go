package mail

import (
	"context"
	"strconv"

	"github.com/playitloud/waitlist-api/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gopkg.in/gomail.v2"
)

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 587
)

// Config selects the mail transport. Exactly one of the three credential
// sets is used, in priority order: explicit SMTP, Gmail OAuth2, Gmail app
// password. An empty config means mail is not configured and every send
// path degrades to a logged no-op.
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPSecure   bool
	SMTPUsername string
	SMTPPassword string

	GmailUser         string
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailAppPassword  string

	FromEmail string
	FromName  string
}

func ConfigFromEnv() *Config {
	cfg := &Config{
		SMTPHost:     utils.GetEnvTrimmed("SMTP_HOST"),
		SMTPSecure:   utils.GetEnvTrimmed("SMTP_SECURE") == "true",
		SMTPPassword: utils.GetEnvTrimmed("SMTP_PASSWORD"),

		GmailUser:         utils.GetEnvTrimmed("GMAIL_USER"),
		GmailClientID:     utils.GetEnvTrimmed("GMAIL_CLIENT_ID"),
		GmailClientSecret: utils.GetEnvTrimmed("GMAIL_CLIENT_SECRET"),
		GmailRefreshToken: utils.GetEnvTrimmed("GMAIL_REFRESH_TOKEN"),
		GmailAppPassword:  utils.GetEnvTrimmed("GMAIL_APP_PASSWORD"),
	}

	port, err := strconv.Atoi(utils.GetEnvTrimmedOrDefault("SMTP_PORT", "587"))
	if err != nil || port <= 0 {
		port = 587
	}
	cfg.SMTPPort = port

	// SMTP_USERNAME takes precedence over the legacy SMTP_USER name.
	cfg.SMTPUsername = utils.GetEnvTrimmed("SMTP_USERNAME")
	if cfg.SMTPUsername == "" {
		cfg.SMTPUsername = utils.GetEnvTrimmed("SMTP_USER")
	}

	cfg.FromEmail = firstNonEmpty(
		utils.GetEnvTrimmed("FROM_EMAIL"),
		utils.GetEnvTrimmed("EMAIL_FROM"),
		cfg.SMTPUsername,
		cfg.GmailUser,
		"noreply@playitloud.com",
	)
	cfg.FromName = firstNonEmpty(
		utils.GetEnvTrimmed("FROM_NAME"),
		utils.GetEnvTrimmed("EMAIL_FROM_NAME"),
		"Play It Loud",
	)

	return cfg
}

// IsConfigured reports whether any transport credentials are present.
func (c *Config) IsConfigured() bool {
	return c.SMTPHost != "" ||
		(c.GmailClientID != "" && c.GmailClientSecret != "" && c.GmailRefreshToken != "") ||
		(c.GmailUser != "" && c.GmailAppPassword != "")
}

// NewMailer builds the transport for the highest-priority credential set,
// or returns nil when mail is not configured.
func (c *Config) NewMailer() Mailer {
	switch {
	case c.SMTPHost != "":
		d := gomail.NewDialer(c.SMTPHost, c.SMTPPort, c.SMTPUsername, c.SMTPPassword)
		d.SSL = c.SMTPSecure
		return &smtpMailer{dialer: d, fromEmail: c.FromEmail, fromName: c.FromName}

	case c.GmailClientID != "" && c.GmailClientSecret != "" && c.GmailRefreshToken != "":
		oauthCfg := &oauth2.Config{
			ClientID:     c.GmailClientID,
			ClientSecret: c.GmailClientSecret,
			Endpoint:     google.Endpoint,
		}
		source := oauthCfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: c.GmailRefreshToken})

		d := gomail.NewDialer(gmailHost, gmailPort, c.GmailUser, "")
		d.Auth = newXOAuth2Auth(c.GmailUser, oauth2.ReuseTokenSource(nil, source))
		return &smtpMailer{dialer: d, fromEmail: c.FromEmail, fromName: c.FromName}

	case c.GmailUser != "" && c.GmailAppPassword != "":
		d := gomail.NewDialer(gmailHost, gmailPort, c.GmailUser, c.GmailAppPassword)
		return &smtpMailer{dialer: d, fromEmail: c.FromEmail, fromName: c.FromName}
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
