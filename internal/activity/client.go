package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://github-contributions-api.jogruber.de"

// Report is the last-year slice of the contributions feed.
type Report struct {
	TotalLastYear int
	Contributions []Day
}

// Client fetches contribution data for one GitHub user from the public
// contributions proxy.
type Client struct {
	BaseURL string
	User    string
	HTTP    *http.Client
	log     *logrus.Logger
}

func NewClient(baseURL, user string, log *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		User:    user,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

type contributionsResponse struct {
	Total struct {
		LastYear int `json:"lastYear"`
	} `json:"total"`
	Contributions []Day `json:"contributions"`
}

// Fetch retrieves the last year of daily contributions.
func (c *Client) Fetch(ctx context.Context) (Report, error) {
	url := fmt.Sprintf("%s/v4/%s?y=last", c.BaseURL, c.User)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Report{}, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("fetch contributions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("fetch contributions: status %d", resp.StatusCode)
	}

	var payload contributionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("decode contributions: %w", err)
	}

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"user": c.User,
			"days": len(payload.Contributions),
		}).Debug("contributions fetched")
	}

	return Report{
		TotalLastYear: payload.Total.LastYear,
		Contributions: payload.Contributions,
	}, nil
}
