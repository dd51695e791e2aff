package ldoce

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/f3rmion/autoanki/internal/entry"
	"github.com/f3rmion/autoanki/internal/httpx"
	"go.uber.org/zap"
)

// DefaultBaseURL is the LDOCE dictionary page prefix; the word slug is appended.
const DefaultBaseURL = "https://www.ldoceonline.com/dictionary/"

// StatusError is returned when the dictionary answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Client fetches and extracts LDOCE entries. It holds no per-request state
// and may be shared between goroutines.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpx.Doer
	log        *zap.Logger
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, userAgent string, httpClient httpx.Doer, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if userAgent == "" {
		userAgent = httpx.DefaultUserAgent
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		log:        logger.With(zap.String("component", "ldoce")),
	}
}

// URL returns the page address for word.
func (c *Client) URL(word string) string {
	return c.baseURL + url.PathEscape(Slug(word))
}

// Slug turns a word into its LDOCE path segment ("give up" -> "give-up").
func Slug(word string) string {
	return strings.Join(strings.Fields(word), "-")
}

// Fetch downloads the dictionary page for word.
func (c *Client) Fetch(ctx context.Context, word string) ([]byte, error) {
	pageURL := c.URL(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("fetching page", zap.String("word", word), zap.String("url", pageURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &httpx.NetworkError{Op: "fetch", URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &httpx.NetworkError{Op: "fetch", URL: pageURL, Err: err}
	}

	c.log.Debug("fetched page", zap.String("word", word), zap.Int("bytes", len(body)))
	return body, nil
}

// Lookup fetches the page for word and extracts its entry.
func (c *Client) Lookup(ctx context.Context, word string) (entry.Entry, error) {
	body, err := c.Fetch(ctx, word)
	if err != nil {
		return entry.Entry{}, err
	}

	e, err := Parse(word, bytes.NewReader(body))
	if err != nil {
		return entry.Entry{}, err
	}

	c.log.Debug("extracted entry", zap.String("word", word), zap.Int("details", len(e.Details)))
	return e, nil
}

// Parse reads an LDOCE page and extracts the entry for word.
func Parse(word string, r io.Reader) (entry.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("parsing page: %w", err)
	}
	return Extract(word, doc), nil
}
