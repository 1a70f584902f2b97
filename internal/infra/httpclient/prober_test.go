package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

func TestProbe_SendsCredentialsToModelsEndpoint(t *testing.T) {
	var gotPath, gotAuth, gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("anthropic-version")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	res, err := NewProber().Probe(context.Background(), server.URL+"/proxy/", "tok")
	if err != nil {
		t.Fatalf("Probe error: %v", err)
	}
	if gotPath != "/proxy/v1/models" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotVersion != anthropicVersion {
		t.Fatalf("unexpected version header %q", gotVersion)
	}
	if !res.Reachable || !res.Authorized || res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestProbe_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	res, err := NewProber().Probe(context.Background(), server.URL, "bad")
	if err != nil {
		t.Fatalf("Probe error: %v", err)
	}
	if !res.Reachable || res.Authorized {
		t.Fatalf("expected reachable but unauthorized, got %+v", res)
	}
}

func TestProbe_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	res, err := NewProber(WithTimeout(20*time.Millisecond)).Probe(context.Background(), server.URL, "tok")
	if err != nil {
		t.Fatalf("Probe error: %v", err)
	}
	if res.Reachable {
		t.Fatalf("expected unreachable on timeout")
	}
	if res.Message == "" {
		t.Fatalf("expected a message")
	}
}

func TestProbe_InvalidBaseURL(t *testing.T) {
	_, err := NewProber().Probe(context.Background(), "ftp://example.com", "tok")
	if !domain.IsKind(err, domain.KindInvalidPreset) {
		t.Fatalf("expected KindInvalidPreset, got %v", err)
	}
}

func TestModelsURL_DefaultsToOfficialAPI(t *testing.T) {
	got, err := modelsURL("")
	if err != nil {
		t.Fatalf("modelsURL error: %v", err)
	}
	if got != "https://api.anthropic.com/v1/models" {
		t.Fatalf("unexpected url %q", got)
	}
}
