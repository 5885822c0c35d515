package cartes

import (
	"testing"
	"time"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("CARTES_BASE_URL", "https://staging.example.org/api")
	t.Setenv("CARTES_API_KEY", "key-env")
	t.Setenv("CARTES_TIMEOUT", "5s")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.BaseURL() != "https://staging.example.org/api" {
		t.Fatalf("base URL not taken from env: %q", c.BaseURL())
	}
	if c.apiKey != "key-env" {
		t.Fatalf("api key not taken from env")
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("timeout not taken from env: %v", c.http.Timeout)
	}
}

func TestFromEnv_OptionsWin(t *testing.T) {
	t.Setenv("CARTES_API_KEY", "key-env")

	c, err := FromEnv(WithAPIKey("key-flag"))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.apiKey != "key-flag" {
		t.Fatalf("explicit option should override env, got %q", c.apiKey)
	}
}

func TestFromEnv_EmptyEnvironment(t *testing.T) {
	t.Setenv("CARTES_BASE_URL", "")
	t.Setenv("CARTES_API_KEY", "")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("expected default base URL, got %q", c.BaseURL())
	}
}
