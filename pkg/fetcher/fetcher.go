package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xhad/headlines/internal/models"
	"golang.org/x/net/html/charset"
)

const (
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent identifies as desktop Chrome 120 on Windows.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"
)

// FetcherConfig holds the request settings. Zero values fall back to
// DefaultUserAgent and DefaultTimeout.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
	OnFetched func(page *models.Page) // called after every successful fetch
}

// Fetcher downloads a single page per call.
type Fetcher struct {
	config FetcherConfig
	client *http.Client
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received status code %d for URL: %s", e.StatusCode, e.URL)
}

// IsHTTPError reports whether err carries a non-2xx response status.
func IsHTTPError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// NewWithConfig applies defaults and rejects a negative timeout.
func NewWithConfig(config FetcherConfig) (*Fetcher, error) {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", config.Timeout)
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	return &Fetcher{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// New returns a Fetcher with the default User-Agent and timeout.
func New() *Fetcher {
	f, _ := NewWithConfig(FetcherConfig{})
	return f
}

// Fetch downloads urlStr and returns the body decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (*models.Page, error) {
	if err := validateURL(urlStr); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	start := time.Now()
	log.Debug().Str("url", urlStr).Dur("timeout", f.config.Timeout).Msg("fetching page")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: urlStr, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode body of %s: %w", urlStr, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", urlStr, err)
	}

	page := &models.Page{
		URL:         urlStr,
		HTML:        string(data),
		ContentType: contentType,
		StatusCode:  resp.StatusCode,
		FetchedAt:   time.Now(),
	}

	log.Debug().
		Str("url", urlStr).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched page")

	if f.config.OnFetched != nil {
		f.config.OnFetched(page)
	}

	return page, nil
}

func validateURL(urlStr string) error {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", urlStr, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %q", urlStr)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL has no host: %q", urlStr)
	}
	return nil
}
