package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lysyi3m/pubfront/app/blog"
	"golang.org/x/time/rate"
)

const (
	DefaultPublicationsURL = "https://serasa-test-back.onrender.com/api/publications"
	DefaultAuthorsURL      = "https://serasa-test-back.onrender.com/api/authors"
	DefaultTimeout         = 30 * time.Second
	DefaultUserAgent       = "PubFront/1.0"
)

// APIError is returned when the upstream answers with a non-200 status.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// Client fetches the publication and author collections. Each call is a
// single GET; failures are returned to the caller untouched by retries.
type Client struct {
	httpClient      *http.Client
	limiter         *rate.Limiter
	publicationsURL string
	authorsURL      string
	userAgent       string
	timeout         time.Duration
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithEndpoints overrides both collection URLs (used by tests).
func WithEndpoints(publicationsURL, authorsURL string) ClientOption {
	return func(c *Client) {
		c.publicationsURL = publicationsURL
		c.authorsURL = authorsURL
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRateLimit caps outgoing requests per second; 0 removes the cap.
func WithRateLimit(perSecond float64) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:      &http.Client{},
		limiter:         rate.NewLimiter(rate.Inf, 0),
		publicationsURL: DefaultPublicationsURL,
		authorsURL:      DefaultAuthorsURL,
		userAgent:       DefaultUserAgent,
		timeout:         DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) FetchPublications(ctx context.Context) ([]blog.Publication, error) {
	var publications []blog.Publication
	if err := c.getJSON(ctx, c.publicationsURL, &publications); err != nil {
		return nil, fmt.Errorf("failed to fetch publications: %w", err)
	}
	if publications == nil {
		publications = []blog.Publication{}
	}
	return publications, nil
}

func (c *Client) FetchAuthors(ctx context.Context) ([]blog.Author, error) {
	var authors []blog.Author
	if err := c.getJSON(ctx, c.authorsURL, &authors); err != nil {
		return nil, fmt.Errorf("failed to fetch authors: %w", err)
	}
	if authors == nil {
		authors = []blog.Author{}
	}
	return authors, nil
}

func (c *Client) getJSON(ctx context.Context, url string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &APIError{StatusCode: resp.StatusCode, URL: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
