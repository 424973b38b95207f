// Package xibo is a typed client for the Xibo CMS REST API.
//
// Every operation follows one request/response contract: fail fast when the
// CMS URL is unconfigured, attach OAuth2 (or Basic) credentials, perform
// exactly one HTTP call, decode CMS error envelopes on non-2xx statuses, and
// validate 2xx payloads against the expected entity shape. There is no retry
// engine and no response caching; the only cached state is the access token.
package xibo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultHTTPTimeout is the default timeout for CMS requests.
const DefaultHTTPTimeout = 30 * time.Second

const (
	defaultRatePerMinute = 60
	defaultBurst         = 5
)

// HTTPClient is the transport the client performs requests through.
// *http.Client satisfies it; tests substitute counting or canned fakes.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client. Credentials and the base URL are injected
// here rather than read from process-wide state.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	AuthMethod   string        // AuthOAuth (default) or AuthBasic
	Timeout      time.Duration // ignored when HTTPClient is set
	RatePerMin   int           // per-resource request budget, requests/minute
	Burst        int
	HTTPClient   HTTPClient // optional transport override for tests
}

// Client performs authenticated requests against the CMS.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	tokens     *tokenSource

	ratePerMin int
	burst      int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter // resource -> limiter
}

// New creates a CMS client from the given options.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultHTTPTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	ratePerMin := opts.RatePerMin
	if ratePerMin <= 0 {
		ratePerMin = defaultRatePerMinute
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     newTokenSource(baseURL, opts.ClientID, opts.ClientSecret, opts.AuthMethod, httpClient),
		ratePerMin: ratePerMin,
		burst:      burst,
		limiters:   make(map[string]*rate.Limiter),
	}
}

// InvalidateToken drops the cached access token so the next request
// re-authenticates.
func (c *Client) InvalidateToken() {
	c.tokens.Invalidate()
}

// request describes one outbound CMS call.
type request struct {
	method      string
	path        string // resource path under the base URL, e.g. "/api/tag"
	query       url.Values
	body        io.Reader
	contentType string // overrides the default application/json when set
}

// do performs one authenticated request and decodes the response into dest.
// A nil dest and HTTP 204 both mean the body is discarded. resource keys the
// per-resource rate limiter.
func (c *Client) do(ctx context.Context, resource string, req request, dest any) error {
	if c.baseURL == "" {
		return &ConfigError{Missing: "cms.url"}
	}

	auth, err := c.tokens.AuthorizationValue(ctx)
	if err != nil {
		return err
	}

	if err := c.limiter(resource).Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	u, err := url.Parse(c.baseURL + req.path)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", c.baseURL+req.path, err)
	}
	if req.query != nil {
		u.RawQuery = req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), req.body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Base header set for every call; form and multipart writers override
	// the content type below.
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", auth)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Op: req.method + " " + req.path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: req.method + " " + req.path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: DecodeErrorMessage(string(body)),
			Body:    string(body),
		}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 || dest == nil {
		return nil
	}

	return decode(body, dest)
}

// decode normalizes the payload envelope, unmarshals it into dest, and runs
// entity validation. Validation failures carry the raw payload.
func decode(body []byte, dest any) error {
	raw := normalize(body)
	if err := json.Unmarshal(raw, dest); err != nil {
		return &ValidationError{Reason: err.Error(), Raw: body}
	}
	if err := checkValid(dest); err != nil {
		return &ValidationError{Reason: err.Error(), Raw: body}
	}
	return nil
}

// validatable is implemented by entity types that declare required fields.
type validatable interface {
	Validate() error
}

func checkValid(dest any) error {
	if v, ok := dest.(validatable); ok {
		return v.Validate()
	}
	rv := reflect.ValueOf(dest)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return nil
	}
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i)
		if !item.CanAddr() {
			continue
		}
		if v, ok := item.Addr().Interface().(validatable); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}
	return nil
}

func (c *Client) limiter(resource string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.limiters[resource]; ok {
		return l
	}
	l := rate.NewLimiter(rate.Limit(float64(c.ratePerMin)/60.0), c.burst)
	c.limiters[resource] = l
	return l
}

func (c *Client) get(ctx context.Context, resource, path string, query url.Values, dest any) error {
	return c.do(ctx, resource, request{method: "GET", path: path, query: query}, dest)
}

func (c *Client) postForm(ctx context.Context, resource, path string, form url.Values, dest any) error {
	return c.do(ctx, resource, request{
		method:      "POST",
		path:        path,
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, dest)
}

func (c *Client) putForm(ctx context.Context, resource, path string, form url.Values, dest any) error {
	return c.do(ctx, resource, request{
		method:      "PUT",
		path:        path,
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, dest)
}

func (c *Client) postJSON(ctx context.Context, resource, path string, body any, dest any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, resource, request{
		method: "POST",
		path:   path,
		body:   bytes.NewReader(encoded),
	}, dest)
}

func (c *Client) delete(ctx context.Context, resource, path string, form url.Values) error {
	var body io.Reader
	contentType := ""
	if len(form) > 0 {
		body = strings.NewReader(form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}
	return c.do(ctx, resource, request{
		method:      "DELETE",
		path:        path,
		body:        body,
		contentType: contentType,
	}, nil)
}

// upload sends a multipart form with one file part plus extra fields.
func (c *Client) upload(ctx context.Context, resource, path, field, filename string, content io.Reader, extra url.Values, dest any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to create multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("failed to buffer upload: %w", err)
	}
	for key, values := range extra {
		for _, value := range values {
			if err := w.WriteField(key, value); err != nil {
				return fmt.Errorf("failed to write form field %q: %w", key, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(ctx, resource, request{
		method:      "POST",
		path:        path,
		body:        &buf,
		contentType: w.FormDataContentType(),
	}, dest)
}

// download performs a GET and returns the raw body bytes without JSON
// decoding. Used for library file downloads.
func (c *Client) download(ctx context.Context, resource, path string, query url.Values) ([]byte, error) {
	if c.baseURL == "" {
		return nil, &ConfigError{Missing: "cms.url"}
	}

	auth, err := c.tokens.AuthorizationValue(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.limiter(resource).Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", c.baseURL+path, err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", auth)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "GET " + path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "GET " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: DecodeErrorMessage(string(body)),
			Body:    string(body),
		}
	}

	return body, nil
}
