// Package auth implements the OAuth2 token flows that produce a
// session.Token. The core client never calls this package; callers
// authenticate once and pass the resulting token into every operation.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/crmkit/sforce/pkg/session"
)

// DefaultLoginURL is the production Salesforce login host. Sandboxes use
// https://test.salesforce.com.
const DefaultLoginURL = "https://login.salesforce.com"

// Authenticator exchanges credentials for a session token.
type Authenticator struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates an Authenticator with a default HTTP client.
func New() *Authenticator {
	return &Authenticator{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.With().Str("component", "sforce-auth").Logger(),
	}
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (a *Authenticator) SetHTTPClient(client *http.Client) {
	a.httpClient = client
}

// tokenResponse is the OAuth token endpoint payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	InstanceURL string `json:"instance_url"`
	TokenType   string `json:"token_type"`
	IssuedAt    string `json:"issued_at"`
	Signature   string `json:"signature"`
}

// Login runs the OAuth2 token flow for the given credentials and returns a
// session token. With a username present, the username-password grant is
// used and the security token (when set) is appended to the password as
// Salesforce requires; otherwise the client-credentials grant is used.
func (a *Authenticator) Login(ctx context.Context, creds *Credentials) (*session.Token, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	loginURL := creds.LoginURL
	if loginURL == "" {
		loginURL = DefaultLoginURL
	}
	endpoint := loginURL + "/services/oauth2/token"

	form := url.Values{}
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	if creds.Username != "" {
		form.Set("grant_type", "password")
		form.Set("username", creds.Username)
		form.Set("password", creds.Password+creds.SecurityToken)
	} else {
		form.Set("grant_type", "client_credentials")
	}

	a.logger.Debug().
		Str("endpoint", endpoint).
		Str("grant_type", form.Get("grant_type")).
		Msg("Requesting access token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Token request failed")
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		a.logger.Error().
			Int("status", resp.StatusCode).
			Msg("Authentication failed")
		return nil, fmt.Errorf("authentication failed with status %d: %s",
			resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" || token.InstanceURL == "" {
		return nil, fmt.Errorf("token response missing access_token or instance_url")
	}

	a.logger.Info().
		Str("instance_url", token.InstanceURL).
		Msg("Authenticated")

	return &session.Token{
		InstanceURL: token.InstanceURL,
		AccessToken: token.AccessToken,
	}, nil
}
