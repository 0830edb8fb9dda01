package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultUserAgent identifies outbound provider requests.
const DefaultUserAgent = "Oriona-AI-Bot/1.0"

// Fetcher performs provider GET requests and decodes JSON bodies.
type Fetcher interface {
	GetJSON(ctx context.Context, rawURL string, header http.Header, out any) error
}

// HTTPFetcher is a rate limited JSON client shared by all providers.
type HTTPFetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewHTTPFetcher returns a fetcher allowing rps requests per second with the
// given burst. A non-positive rps disables limiting.
func NewHTTPFetcher(timeout time.Duration, rps float64, burst int, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(limit, max(1, burst)),
		userAgent: userAgent,
	}
}

func (f *HTTPFetcher) GetJSON(ctx context.Context, rawURL string, header http.Header, out any) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("returned status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
