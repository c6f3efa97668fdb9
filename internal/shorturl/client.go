package shorturl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "http://localhost:3000"

// ErrNotFound is returned by Resolve when the slug does not exist. Callers
// treat it as a soft redirect-home case, not a failure banner.
var ErrNotFound = errors.New("short url not found")

// targetPattern mirrors the dashboard's pre-flight check: the target must
// carry an explicit http or https scheme.
var targetPattern = regexp.MustCompile(`(?i)^https?://.+`)

// ValidateTarget rejects malformed target URLs before any network call.
func ValidateTarget(raw string) error {
	if !targetPattern.MatchString(raw) {
		return errors.New("enter a valid URL starting with http:// or https://")
	}
	return nil
}

// Client talks to the short-link API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	log     *logrus.Logger
}

func NewClient(baseURL string, log *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// ShortLink builds the public short URL for a slug.
func (c *Client) ShortLink(slug string) string {
	return c.BaseURL + "/" + slug
}

type envelope struct {
	Success bool            `json:"success"`
	Token   string          `json:"token,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// do issues one request and decodes the response envelope. A non-2xx status
// with a parseable envelope still yields the server's message so it can be
// shown inline.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return envelope{}, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return envelope{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, fmt.Errorf("%s %s: status %d: invalid response", method, path, resp.StatusCode)
	}

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"method":  method,
			"path":    path,
			"status":  resp.StatusCode,
			"success": env.Success,
		}).Debug("short-url api call")
	}

	return env, nil
}

// failure turns an unsuccessful envelope into an inline-renderable error.
func failure(env envelope, fallback string) error {
	if env.Message != "" {
		return errors.New(env.Message)
	}
	return errors.New(fallback)
}

// Login exchanges the access code and caller IP for a bearer token.
func (c *Client) Login(ctx context.Context, code, ip string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{
		"code": code,
		"ip":   ip,
	})
	if err != nil {
		return "", err
	}
	if !env.Success || env.Token == "" {
		return "", failure(env, "invalid code")
	}
	return env.Token, nil
}

// Create registers a new short URL. The target is validated locally first.
func (c *Client) Create(ctx context.Context, token string, payload CreatePayload) (Created, error) {
	if err := ValidateTarget(payload.Content); err != nil {
		return Created{}, err
	}
	if payload.ContentType == "" {
		payload.ContentType = "url"
	}
	payload.Slug = strings.TrimSpace(payload.Slug)

	env, err := c.do(ctx, http.MethodPost, "/api/short-url/generate", token, payload)
	if err != nil {
		return Created{}, err
	}
	if !env.Success {
		return Created{}, failure(env, "failed to create short URL")
	}
	var created Created
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return Created{}, fmt.Errorf("decode created link: %w", err)
	}
	return created, nil
}

// List returns every link owned by the authenticated user.
func (c *Client) List(ctx context.Context, token string) ([]Link, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/short-url/list", token, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, failure(env, "failed to load links")
	}
	var links []Link
	if err := json.Unmarshal(env.Data, &links); err != nil {
		return nil, fmt.Errorf("decode link list: %w", err)
	}
	return links, nil
}

// Delete removes a link by slug.
func (c *Client) Delete(ctx context.Context, token, slug string) error {
	env, err := c.do(ctx, http.MethodDelete, "/api/short-url/"+slug, token, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return failure(env, "failed to delete short URL")
	}
	return nil
}

// Resolve looks up a slug on the public endpoint. Missing slugs come back as
// ErrNotFound.
func (c *Client) Resolve(ctx context.Context, slug string) (Link, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/short-url/"+slug, "", nil)
	if err != nil {
		return Link{}, err
	}
	if !env.Success {
		return Link{}, ErrNotFound
	}
	var link Link
	if err := json.Unmarshal(env.Data, &link); err != nil {
		return Link{}, fmt.Errorf("decode link: %w", err)
	}
	return link, nil
}

// Summary fetches the account-wide analytics snapshot.
func (c *Client) Summary(ctx context.Context, token string) (Summary, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/analytics/summary", token, nil)
	if err != nil {
		return Summary{}, err
	}
	if !env.Success {
		return Summary{}, failure(env, "failed to load analytics")
	}
	var summary Summary
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		return Summary{}, fmt.Errorf("decode summary: %w", err)
	}
	return summary, nil
}

// LinkAnalytics fetches the per-link visit breakdown.
func (c *Client) LinkAnalytics(ctx context.Context, token, slug string) (LinkAnalytics, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/analytics/"+slug, token, nil)
	if err != nil {
		return LinkAnalytics{}, err
	}
	if !env.Success {
		return LinkAnalytics{}, failure(env, "failed to load link analytics")
	}
	var la LinkAnalytics
	if err := json.Unmarshal(env.Data, &la); err != nil {
		return LinkAnalytics{}, fmt.Errorf("decode link analytics: %w", err)
	}
	return la, nil
}
