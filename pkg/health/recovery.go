package health

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/maveryjr/nestmind/pkg/domain"
)

//go:generate moq -out mocks/recovery_provider.go -pkg mocks -skip-ensure -fmt goimports . RecoveryProvider

// RecoveryProvider looks up an archived copy of a dead URL
type RecoveryProvider interface {
	Method() domain.RecoveryMethod
	Recover(ctx context.Context, rawURL string) domain.RecoveryResult
}

// RunRecoveryChain tries providers strictly in order and stops at the first
// success. A failing provider is logged and the chain proceeds, exhaustion is
// a normal outcome reported as an unsuccessful result.
func RunRecoveryChain(ctx context.Context, providers []RecoveryProvider, rawURL string) domain.RecoveryResult {
	for _, p := range providers {
		result := p.Recover(ctx, rawURL)
		if result.Success {
			return result
		}
		lgr.Printf("[DEBUG] recovery via %s failed for %s: %s", p.Method(), rawURL, result.Error)
	}
	return domain.RecoveryResult{Success: false, Error: "no archive provider has a snapshot"}
}

// DefaultProviders returns the standard chain: Wayback Machine, Google Cache,
// Archive.today
func DefaultProviders(timeout time.Duration, userAgent string) []RecoveryProvider {
	client := &http.Client{Timeout: timeout}
	return []RecoveryProvider{
		&WaybackProvider{client: client, userAgent: userAgent},
		&GoogleCacheProvider{client: client, userAgent: userAgent},
		&ArchiveTodayProvider{client: client, userAgent: userAgent},
	}
}

// WaybackProvider queries the Internet Archive availability API for the most
// recent snapshot
type WaybackProvider struct {
	client    *http.Client
	userAgent string
	baseURL   string // test override
}

// Method identifies the provider
func (p *WaybackProvider) Method() domain.RecoveryMethod { return domain.RecoveryWayback }

// Recover looks up the closest archived snapshot
func (p *WaybackProvider) Recover(ctx context.Context, rawURL string) domain.RecoveryResult {
	result := domain.RecoveryResult{Method: domain.RecoveryWayback}

	base := p.baseURL
	if base == "" {
		base = "https://archive.org/wayback/available"
	}
	endpoint := fmt.Sprintf("%s?url=%s&timestamp=%s", base, url.QueryEscape(rawURL), time.Now().Format("20060102"))

	body, err := p.get(ctx, endpoint)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	var payload struct {
		ArchivedSnapshots struct {
			Closest struct {
				Available bool   `json:"available"`
				URL       string `json:"url"`
				Timestamp string `json:"timestamp"`
			} `json:"closest"`
		} `json:"archived_snapshots"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		result.Error = fmt.Sprintf("decode wayback response: %v", err)
		return result
	}

	closest := payload.ArchivedSnapshots.Closest
	if !closest.Available || closest.URL == "" {
		result.Error = "no wayback snapshot available"
		return result
	}

	result.Success = true
	result.RecoveredURL = closest.URL
	if ts, err := time.Parse("20060102150405", closest.Timestamp); err == nil {
		result.Timestamp = ts
	}
	return result
}

func (p *WaybackProvider) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wayback lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wayback lookup status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 64*1024))
}

// GoogleCacheProvider checks whether Google still serves a cached copy
type GoogleCacheProvider struct {
	client    *http.Client
	userAgent string
	baseURL   string // test override
}

// Method identifies the provider
func (p *GoogleCacheProvider) Method() domain.RecoveryMethod { return domain.RecoveryGoogleCache }

// Recover probes the cache URL, a 200 means the cached page exists
func (p *GoogleCacheProvider) Recover(ctx context.Context, rawURL string) domain.RecoveryResult {
	result := domain.RecoveryResult{Method: domain.RecoveryGoogleCache}

	base := p.baseURL
	if base == "" {
		base = "https://webcache.googleusercontent.com/search"
	}
	cacheURL := fmt.Sprintf("%s?q=cache:%s", base, url.QueryEscape(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, cacheURL, http.NoBody)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Sprintf("google cache status %d", resp.StatusCode)
		return result
	}

	result.Success = true
	result.RecoveredURL = cacheURL
	result.Timestamp = time.Now()
	return result
}

// ArchiveTodayProvider walks the Archive.today time map for the newest memento
type ArchiveTodayProvider struct {
	client    *http.Client
	userAgent string
	baseURL   string // test override
}

// Method identifies the provider
func (p *ArchiveTodayProvider) Method() domain.RecoveryMethod { return domain.RecoveryArchiveToday }

// Recover fetches the time map and takes the last memento link
func (p *ArchiveTodayProvider) Recover(ctx context.Context, rawURL string) domain.RecoveryResult {
	result := domain.RecoveryResult{Method: domain.RecoveryArchiveToday}

	base := p.baseURL
	if base == "" {
		base = "https://archive.ph/timemap/link"
	}
	endpoint := fmt.Sprintf("%s/%s", base, rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Sprintf("archive.today status %d", resp.StatusCode)
		return result
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		result.Error = err.Error()
		return result
	}

	memento := lastMemento(string(body))
	if memento == "" {
		result.Error = "no memento in time map"
		return result
	}

	result.Success = true
	result.RecoveredURL = memento
	result.Timestamp = time.Now()
	return result
}

// lastMemento extracts the URL of the last memento entry from a link-format
// time map
func lastMemento(timemap string) string {
	lines := strings.Split(timemap, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || !strings.Contains(line, `rel="memento"`) && !strings.Contains(line, `rel="last memento"`) {
			continue
		}
		start := strings.IndexByte(line, '<')
		end := strings.IndexByte(line, '>')
		if start == -1 || end <= start+1 {
			continue
		}
		return line[start+1 : end]
	}
	return ""
}
