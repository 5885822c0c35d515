package cartes

import (
	"net/http"
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	c, err := New("", WithHTTPTimeout(3*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 3*time.Second {
		t.Fatalf("timeout not applied: %v", c.http.Timeout)
	}
	if _, err := New("", WithHTTPTimeout(0)); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithAPIKey(t *testing.T) {
	c, err := New("", WithAPIKey("key-1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.apiKey != "key-1" {
		t.Fatalf("api key not applied")
	}
	if _, err := New("", WithAPIKey("")); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Minute}
	c, err := New("", WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http != hc {
		t.Fatalf("http client not replaced")
	}
	if _, err := New("", WithHTTPClient(nil)); err == nil {
		t.Fatal("expected error for nil http client")
	}
}

func TestWithDebugLogging_InstallsTransport(t *testing.T) {
	c, err := New("", WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Metrics wrapper is outermost, debug sits beneath it.
	mt, ok := c.http.Transport.(*metricsTransport)
	if !ok {
		t.Fatalf("expected metricsTransport outermost, got %T", c.http.Transport)
	}
	if _, ok := mt.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport beneath metrics, got %T", mt.base)
	}
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("CARTES_DEBUG", "true")
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mt, ok := c.http.Transport.(*metricsTransport)
	if !ok {
		t.Fatalf("expected metricsTransport outermost, got %T", c.http.Transport)
	}
	if _, ok := mt.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport when CARTES_DEBUG=true, got %T", mt.base)
	}
}
