package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/simple-maps/cartes-go/internal/types"
)

func TestUserList(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"username":"ada"},{"username":"grace"}]`))
	}))
	defer srv.Close()

	users, err := UserList(context.Background(), srv.Client(), srv.URL, "")
	if err != nil || len(users) != 2 {
		t.Fatalf("UserList unexpected: users=%+v err=%v", users, err)
	}
}

func TestUserGet_WithRelations(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/ada" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query()["with[]"]; len(got) != 1 || got[0] != "maps" {
			t.Errorf("unexpected with[]: %v", got)
		}
		_, _ = w.Write([]byte(`{"username":"ada","maps":[{"uuid":"m1"}]}`))
	}))
	defer srv.Close()

	u, err := UserGet(context.Background(), srv.Client(), srv.URL, "ada", []string{"maps"}, "")
	if err != nil || u.Username != "ada" || len(u.Maps) != 1 {
		t.Fatalf("UserGet unexpected: u=%+v err=%v", u, err)
	}
	if _, err := UserGet(context.Background(), srv.Client(), srv.URL, "", nil, ""); err == nil {
		t.Fatal("expected validation error for empty username")
	}
}

func TestMe_RequiresAPIKey(t *testing.T) {
	srv := failIfCalled(t)
	defer srv.Close()

	_, err := MeGet(context.Background(), srv.Client(), srv.URL, "")
	var ve *types.ValidationError
	if !errors.As(err, &ve) || !ve.Has("api_key", types.MissingRequired) {
		t.Fatalf("expected missing_required on api_key, got %v", err)
	}
	if _, err := MeUpdate(context.Background(), srv.Client(), srv.URL, types.MeUpdatePayload{}, ""); err == nil {
		t.Fatal("expected validation error for MeUpdate without key")
	}
}

func TestMeGet_BearerHeader(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key-1" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		_, _ = w.Write([]byte(`{"username":"ada","is_public":true}`))
	}))
	defer srv.Close()

	u, err := MeGet(context.Background(), srv.Client(), srv.URL, "key-1")
	if err != nil || u.Username != "ada" || !u.IsPublic {
		t.Fatalf("MeGet unexpected: u=%+v err=%v", u, err)
	}
}

func TestMeUpdate(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/user" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if string(raw) != `{"username":"ada2"}` {
			t.Errorf("unexpected body: %s", raw)
		}
		_, _ = w.Write([]byte(`{"username":"ada2"}`))
	}))
	defer srv.Close()

	u, err := MeUpdate(context.Background(), srv.Client(), srv.URL, types.MeUpdatePayload{Username: "ada2"}, "key-1")
	if err != nil || u.Username != "ada2" {
		t.Fatalf("MeUpdate unexpected: u=%+v err=%v", u, err)
	}
}
