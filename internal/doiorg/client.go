// Package doiorg fetches BibTeX records from doi.org via content
// negotiation. It retrieves citation data only; nothing here validates the
// DOIs carried on existing entries.
package doiorg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the DOI resolver endpoint.
	BaseURL = "https://doi.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps us well inside doi.org's polite-pool expectations.
	RateLimit = 2.0

	// bibtexMIME is the content-negotiation type for BibTeX records.
	bibtexMIME = "application/x-bibtex"
)

// ErrNotFound indicates the DOI does not resolve to a known record.
var ErrNotFound = errors.New("DOI not found")

// Client is a rate-limited HTTP client for the doi.org resolver.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	contact    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom resolver URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithContact adds a mailto to the User-Agent, which doi.org uses to route
// requests to its polite pool.
func WithContact(email string) Option {
	return func(c *Client) {
		c.contact = email
	}
}

// NewClient creates a doi.org resolver client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchBibTeX resolves a DOI to its BibTeX record. Returns ErrNotFound for
// unknown DOIs; the raw record text is returned unparsed.
func (c *Client) FetchBibTeX(ctx context.Context, doi string) (string, error) {
	doi = NormalizeDOI(doi)
	if doi == "" {
		return "", fmt.Errorf("empty DOI")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+doi, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", bibtexMIME)
	req.Header.Set("User-Agent", userAgent(c.contact))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", doi, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%s: %w", doi, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("fetching %s: unexpected status %d", doi, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return string(body), nil
}

func userAgent(contact string) string {
	if contact == "" {
		return "cbib/1.0"
	}
	return fmt.Sprintf("cbib/1.0 (mailto:%s)", contact)
}

// NormalizeDOI strips resolver-URL and label prefixes so "10.xxxx/yyyy"
// remains.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return strings.TrimSpace(doi)
}
