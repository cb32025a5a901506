package client

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/robobadge/robobadge/pkg/domain"
)

const maxBadgeSize = 1 << 20 // 1 MB

// Client probes the badge endpoint of a deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the deployment at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchBadge requests the badge image for username.
func (c *Client) FetchBadge(ctx context.Context, username string) (*domain.Badge, error) {
	params := url.Values{}
	params.Set("username", username)

	endpoint := c.baseURL + "/api/badge?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("client.FetchBadge: create request: %w", err)
	}
	req.Header.Set("Accept", "image/svg+xml, image/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.FetchBadge: do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBadgeSize))
	if err != nil {
		return nil, fmt.Errorf("client.FetchBadge: read body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("client.FetchBadge: %w", &HTTPError{
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		})
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("client.FetchBadge: %w: got %q", ErrNotImage, contentType)
	}

	return &domain.Badge{
		Username:     username,
		ContentType:  mediaType,
		CacheControl: resp.Header.Get("Cache-Control"),
		Body:         body,
	}, nil
}
