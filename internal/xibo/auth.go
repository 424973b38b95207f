package xibo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// AuthOAuth selects the OAuth2 client-credentials flow against
	// /api/authorize/access_token. This is the default for current CMS
	// versions.
	AuthOAuth = "oauth"

	// AuthBasic selects HTTP Basic authentication built locally from the
	// client ID and secret, with no token endpoint round-trip. Retained for
	// older CMS deployments.
	AuthBasic = "basic"

	// defaultTokenLifetime is assumed when the token endpoint omits
	// expires_in.
	defaultTokenLifetime = 3600 * time.Second

	// tokenExpiryMargin is how long before expiry a cached token is
	// considered stale and refetched.
	tokenExpiryMargin = 60 * time.Second
)

// tokenResponse is the token endpoint's JSON payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// tokenSource produces Authorization header values for CMS requests.
// Credentials are injected at construction; nothing reads ambient globals.
// Tokens from the OAuth flow are cached with their expiry and refetched
// only when stale, guarded by a mutex so concurrent tool calls share one
// fetch result.
type tokenSource struct {
	baseURL      string
	clientID     string
	clientSecret string
	method       string // AuthOAuth or AuthBasic
	httpClient   HTTPClient

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newTokenSource(baseURL, clientID, clientSecret, method string, httpClient HTTPClient) *tokenSource {
	if method == "" {
		method = AuthOAuth
	}
	return &tokenSource{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		method:       method,
		httpClient:   httpClient,
	}
}

// AuthorizationValue returns the value for the Authorization header,
// fetching or refreshing the access token as needed.
func (s *tokenSource) AuthorizationValue(ctx context.Context) (string, error) {
	if s.baseURL == "" {
		return "", &ConfigError{Missing: "cms.url"}
	}

	if s.method == AuthBasic {
		raw := s.clientID + ":" + s.clientSecret
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw)), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Add(tokenExpiryMargin).Before(s.expiresAt) {
		return "Bearer " + s.token, nil
	}

	token, lifetime, err := s.fetchToken(ctx)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expiresAt = time.Now().Add(lifetime)
	return "Bearer " + s.token, nil
}

// Invalidate drops the cached token so the next call refetches.
func (s *tokenSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiresAt = time.Time{}
}

func (s *tokenSource) fetchToken(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)

	tokenURL := s.baseURL + "/api/authorize/access_token"
	req, err := http.NewRequestWithContext(ctx, "POST", tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", 0, &AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, &AuthError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", 0, &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", 0, &AuthError{Status: resp.StatusCode, Body: string(body), Err: fmt.Errorf("failed to parse token response: %w", err)}
	}
	if tok.AccessToken == "" {
		return "", 0, &AuthError{Status: resp.StatusCode, Body: string(body), Err: fmt.Errorf("token response has no access_token")}
	}

	lifetime := defaultTokenLifetime
	if tok.ExpiresIn > 0 {
		lifetime = time.Duration(tok.ExpiresIn) * time.Second
	}
	return tok.AccessToken, lifetime, nil
}
