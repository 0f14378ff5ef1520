package gsc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"

	"github.com/seoscope/gsc-mcp/internal/common"
)

func testAPIConfig(baseURL string) common.APIConfig {
	return common.APIConfig{
		BaseURL: baseURL,
		Timeout: "5s",
	}
}

func TestClient_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	client := NewClient(testAPIConfig(mockServer.URL), tokens, common.NewSilentLogger())

	req, _ := http.NewRequest(http.MethodGet, mockServer.URL+"/webmasters/v3/sites", nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bearer test-token" {
		t.Errorf("Expected bearer token header, got %q", gotAuth)
	}
}

func TestClient_NoTokenSource(t *testing.T) {
	var gotAuth string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer mockServer.Close()

	client := NewClient(testAPIConfig(mockServer.URL), nil, common.NewSilentLogger())

	req, _ := http.NewRequest(http.MethodGet, mockServer.URL+"/webmasters/v3/sites", nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "" {
		t.Errorf("Expected no Authorization header, got %q", gotAuth)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected upstream status to pass through, got %d", resp.StatusCode)
	}
}

func TestClient_RateLimiterPacesBurst(t *testing.T) {
	count := 0
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count++
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	cfg := testAPIConfig(mockServer.URL)
	cfg.RateLimit = 100 // fast enough not to slow the test
	client := NewClient(cfg, nil, common.NewSilentLogger())

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, mockServer.URL+"/", nil)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Request %d failed: %v", i, err)
		}
		resp.Body.Close()
	}
	if count != 3 {
		t.Errorf("Expected 3 requests, got %d", count)
	}
}
