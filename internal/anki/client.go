package anki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/f3rmion/autoanki/internal/httpx"
	"go.uber.org/zap"
)

// DefaultEndpoint is AnkiWeb's note editor save URL.
const DefaultEndpoint = "https://ankiuser.net/edit/save"

const contentType = "application/x-www-form-urlencoded; charset=UTF-8"

// maxErrorBody caps how much of a rejection body is kept.
const maxErrorBody = 64 << 10

// Session is the pre-built AnkiWeb session the notes are saved with.
type Session struct {
	CSRFToken string
	ModelID   string // "mid", the note type
	DeckID    string // "deck"
	Cookies   []*http.Cookie
	UserAgent string
}

// CookieHeader renders the session cookies as a Cookie header value.
func (s Session) CookieHeader() string {
	parts := make([]string, 0, len(s.Cookies))
	for _, c := range s.Cookies {
		if v := c.String(); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "; ")
}

// RejectionError is returned when AnkiWeb answers a save with a non-2xx status.
type RejectionError struct {
	StatusCode int
	Body       string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("anki rejected note (status %d): %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// Client saves notes to AnkiWeb. The session is never modified, so a Client
// can be shared between goroutines.
type Client struct {
	endpoint   string
	session    Session
	httpClient httpx.Doer
	log        *zap.Logger
}

// NewClient creates a Client. An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint string, session Session, httpClient httpx.Doer, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if session.UserAgent == "" {
		session.UserAgent = httpx.DefaultUserAgent
	}
	return &Client{
		endpoint:   endpoint,
		session:    session,
		httpClient: httpClient,
		log:        logger.With(zap.String("component", "anki")),
	}
}

// Form builds the save request form for an encoded note.
func (c *Client) Form(payload string) url.Values {
	return url.Values{
		"nid":        {""},
		"data":       {payload},
		"csrf_token": {c.session.CSRFToken},
		"mid":        {c.session.ModelID},
		"deck":       {c.session.DeckID},
	}
}

// Save submits one encoded note. It makes exactly one attempt.
func (c *Client) Save(ctx context.Context, payload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(c.Form(payload).Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cookie", c.session.CookieHeader())
	req.Header.Set("User-Agent", c.session.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &httpx.NetworkError{Op: "submit", URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		c.log.Debug("note saved", zap.Int("status", resp.StatusCode))
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &httpx.NetworkError{Op: "submit", URL: c.endpoint, Err: err}
	}

	c.log.Debug("note rejected", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(body)))
	return &RejectionError{StatusCode: resp.StatusCode, Body: string(body)}
}
