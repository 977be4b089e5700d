package mail

import (
	"fmt"
	"net/smtp"

	"golang.org/x/oauth2"
)

// xoauth2Auth implements the SASL XOAUTH2 mechanism over net/smtp, minting
// access tokens from the refresh-token source on each dial.
type xoauth2Auth struct {
	user   string
	source oauth2.TokenSource
}

func newXOAuth2Auth(user string, source oauth2.TokenSource) smtp.Auth {
	return &xoauth2Auth{user: user, source: source}
}

func (a *xoauth2Auth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS {
		return "", nil, fmt.Errorf("mail: XOAUTH2 requires a TLS connection")
	}

	token, err := a.source.Token()
	if err != nil {
		return "", nil, fmt.Errorf("mail: obtain OAuth2 token: %w", err)
	}

	resp := []byte("user=" + a.user + "\x01auth=Bearer " + token.AccessToken + "\x01\x01")
	return "XOAUTH2", resp, nil
}

func (a *xoauth2Auth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		// The server only continues the exchange to deliver an error blob.
		return nil, fmt.Errorf("mail: XOAUTH2 challenge rejected: %s", fromServer)
	}
	return nil, nil
}
