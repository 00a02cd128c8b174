// Package github fetches public user profiles from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/julianstephens/ghpulse/internal/constants"
	"github.com/julianstephens/ghpulse/internal/logger"
	"github.com/julianstephens/ghpulse/internal/models"
)

// LookupError is returned for any non-2xx profile response
type LookupError struct {
	Username   string
	StatusCode int
}

func (e *LookupError) Error() string {
	return constants.LookupFailedReason
}

type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
}

// NewClient returns a client for baseURL whose requests give up after timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = constants.DefaultTimeout
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: constants.UserAgent,
		HTTP:      &http.Client{Timeout: timeout},
	}
}

// FetchProfile retrieves the public profile record for username
func (c *Client) FetchProfile(ctx context.Context, username string) (models.Profile, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.BaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Profile{}, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.UserAgent)

	start := time.Now()
	res, err := c.HTTP.Do(req)
	if err != nil {
		return models.Profile{}, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	logger.Debug("Profile response", "username", username, "status", res.StatusCode, "duration", time.Since(start))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, res.Body)
		return models.Profile{}, &LookupError{Username: username, StatusCode: res.StatusCode}
	}

	var profile models.Profile
	if err := json.NewDecoder(res.Body).Decode(&profile); err != nil {
		return models.Profile{}, fmt.Errorf("invalid profile response: %w", err)
	}
	if profile.Login == "" {
		profile.Login = username
	}
	return profile, nil
}
