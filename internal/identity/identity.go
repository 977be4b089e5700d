// Package identity wraps the "sign in with Google" handshake. The provider
// session exists only for the duration of one callback request: the profile
// fields are copied out and the session is terminated before any store work,
// so no authenticated session is ever retained.
package identity

import (
	"fmt"
	"net/http"

	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"

	"github.com/gorilla/sessions"
	"github.com/playitloud/waitlist-api/internal/log"
	"github.com/playitloud/waitlist-api/pkg/utils"
)

const providerName = "google"

// Profile is the narrow read-only view of a provider account used to
// pre-fill the waitlist capture flow.
type Profile struct {
	SubjectID string
	FullName  string
	Email     string
	Phone     string
}

type Provider struct {
	logger *log.Logger
}

// Setup registers the Google provider from environment configuration and
// returns nil when the handshake is not configured.
func Setup(logger *log.Logger) *Provider {
	clientID := utils.GetEnvTrimmed("GOOGLE_CLIENT_ID")
	clientSecret := utils.GetEnvTrimmed("GOOGLE_CLIENT_SECRET")
	callbackURL := utils.GetEnvTrimmed("GOOGLE_CALLBACK_URL")
	sessionSecret := utils.GetEnvTrimmed("SESSION_SECRET")

	if clientID == "" || clientSecret == "" || callbackURL == "" {
		logger.Info("Identity provider not configured; Google signup endpoints disabled")
		return nil
	}

	if sessionSecret == "" {
		logger.Warn("SESSION_SECRET not set; using an ephemeral handshake session key")
		sessionSecret = log.GenerateCorrelationID()
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.Options.HttpOnly = true
	// The cookie only has to survive the round trip to the consent screen.
	store.MaxAge(300)
	gothic.Store = store

	goth.UseProviders(google.New(clientID, clientSecret, callbackURL, "email", "profile"))

	logger.Info("Identity provider configured", "provider", providerName)
	return &Provider{logger: logger}
}

// Begin redirects the client into the provider's consent flow.
func (p *Provider) Begin(w http.ResponseWriter, r *http.Request) {
	gothic.BeginAuthHandler(w, withProvider(r))
}

// Complete finishes the handshake, harvests the profile fields, and
// terminates the provider session regardless of outcome.
func (p *Provider) Complete(w http.ResponseWriter, r *http.Request) (*Profile, error) {
	r = withProvider(r)

	user, err := gothic.CompleteUserAuth(w, r)

	// The handshake session is dropped even when completion failed.
	if logoutErr := gothic.Logout(w, r); logoutErr != nil {
		p.logger.Warn("Failed to clear handshake session", "error", logoutErr)
	}

	if err != nil {
		return nil, fmt.Errorf("identity: complete handshake: %w", err)
	}

	return &Profile{
		SubjectID: user.UserID,
		FullName:  user.Name,
		Email:     user.Email,
		Phone:     phoneFromRawData(user),
	}, nil
}

// Google only exposes a phone number for some account types; it arrives in
// the raw profile payload when present.
func phoneFromRawData(user goth.User) string {
	for _, key := range []string{"phone_number", "phoneNumber"} {
		if v, ok := user.RawData[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

func withProvider(r *http.Request) *http.Request {
	q := r.URL.Query()
	if q.Get("provider") == "" {
		q.Set("provider", providerName)
		r.URL.RawQuery = q.Encode()
	}
	return r
}
