package health

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// HTTPChecker probes URLs with lightweight HEAD requests
type HTTPChecker struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// NewHTTPChecker creates a new link prober. Redirects are followed, the final
// URL is compared against the requested one to detect moved pages.
func NewHTTPChecker(timeout time.Duration, userAgent string) *HTTPChecker {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = "Nestmind/1.0"
	}
	return &HTTPChecker{
		client:    &http.Client{Timeout: timeout},
		timeout:   timeout,
		userAgent: userAgent,
	}
}

// Check probes a single URL and maps the outcome to a link status:
// 2xx at the requested URL is healthy, a different final URL is redirected,
// 4xx is dead, 5xx and transport failures are unreachable. A failed probe
// never surfaces as an error, it degrades to the captured error string.
func (c *HTTPChecker) Check(ctx context.Context, itemID, rawURL string) domain.LinkCheckResult {
	result := domain.LinkCheckResult{ItemID: itemID, URL: rawURL}

	if _, err := url.ParseRequestURI(rawURL); err != nil {
		result.Status = domain.LinkUnreachable
		result.Error = "invalid URL"
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, http.NoBody)
	if err != nil {
		result.Status = domain.LinkUnreachable
		result.Error = err.Error()
		return result
	}
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.client.Do(req)
	result.ResponseTimeMs = time.Since(started).Milliseconds()

	if err != nil {
		result.Status = domain.LinkUnreachable
		result.Error = probeError(err)
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	finalURL := resp.Request.URL.String()

	switch {
	case resp.StatusCode >= 500:
		result.Status = domain.LinkUnreachable
		result.Error = resp.Status
	case resp.StatusCode >= 400:
		result.Status = domain.LinkDead
		result.Error = resp.Status
	case finalURL != rawURL:
		result.Success = true
		result.Status = domain.LinkRedirected
		result.RedirectURL = finalURL
	default:
		result.Success = true
		result.Status = domain.LinkHealthy
	}
	return result
}

// probeError normalizes transport errors, timeouts get a stable message
func probeError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return "Request timeout"
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return "Request timeout"
	}
	if strings.Contains(err.Error(), "Client.Timeout") {
		return "Request timeout"
	}
	return err.Error()
}
