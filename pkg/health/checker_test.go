package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maveryjr/nestmind/pkg/domain"
)

func TestHTTPChecker_Healthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	checker := NewHTTPChecker(5*time.Second, "test-agent")
	result := checker.Check(context.Background(), "item-1", srv.URL)

	assert.True(t, result.Success)
	assert.Equal(t, domain.LinkHealthy, result.Status)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "item-1", result.ItemID)
	assert.Empty(t, result.Error)
	assert.Empty(t, result.RedirectURL)
}

func TestHTTPChecker_Dead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	checker := NewHTTPChecker(5*time.Second, "")
	result := checker.Check(context.Background(), "item-1", srv.URL)

	assert.False(t, result.Success)
	assert.Equal(t, domain.LinkDead, result.Status)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.NotEmpty(t, result.Error)
}

func TestHTTPChecker_ServerErrorUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	checker := NewHTTPChecker(5*time.Second, "")
	result := checker.Check(context.Background(), "item-1", srv.URL)

	assert.False(t, result.Success)
	assert.Equal(t, domain.LinkUnreachable, result.Status)
	assert.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
}

func TestHTTPChecker_Redirected(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusMovedPermanently)
	}))
	defer srv.Close()

	checker := NewHTTPChecker(5*time.Second, "")
	result := checker.Check(context.Background(), "item-1", srv.URL)

	assert.True(t, result.Success)
	assert.Equal(t, domain.LinkRedirected, result.Status)
	assert.Equal(t, target.URL, result.RedirectURL)
}

func TestHTTPChecker_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	checker := NewHTTPChecker(50*time.Millisecond, "")
	result := checker.Check(context.Background(), "item-1", srv.URL)

	assert.False(t, result.Success)
	assert.Equal(t, domain.LinkUnreachable, result.Status)
	assert.Equal(t, "Request timeout", result.Error)
}

func TestHTTPChecker_InvalidURL(t *testing.T) {
	checker := NewHTTPChecker(time.Second, "")
	result := checker.Check(context.Background(), "item-1", "not a url")

	assert.False(t, result.Success)
	assert.Equal(t, domain.LinkUnreachable, result.Status)
	assert.Equal(t, "invalid URL", result.Error)
}

func TestHTTPChecker_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listening anymore

	checker := NewHTTPChecker(time.Second, "")
	result := checker.Check(context.Background(), "item-1", url)

	assert.False(t, result.Success)
	assert.Equal(t, domain.LinkUnreachable, result.Status)
	assert.NotEmpty(t, result.Error)
}
