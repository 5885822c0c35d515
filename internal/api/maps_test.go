package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/simple-maps/cartes-go/internal/types"
)

const testMapID = "0b9f2c84-5a3d-4a21-9c91-2f2f6e1a7d10"

// failIfCalled returns a server that fails the test if any request
// reaches it, for asserting that validation rejects before the wire.
func failIfCalled(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL)
	}))
}

func TestMapCreate_Success(t *testing.T) {
	t.Parallel()
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/maps" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"uuid":"abc-123","token":"tok-xyz"}`))
	}))
	defer srv.Close()

	m, err := MapCreate(context.Background(), srv.Client(), srv.URL, &types.MapCreatePayload{
		Title:   "Coffee Shops",
		Privacy: types.PrivacyPublic,
	}, "")
	if err != nil {
		t.Fatalf("MapCreate: %v", err)
	}
	if m.UUID != "abc-123" || m.Token != "tok-xyz" {
		t.Fatalf("unexpected map: %+v", m)
	}
	// The body carries exactly the set fields under their wire names.
	if len(gotBody) != 2 || gotBody["title"] != "Coffee Shops" || gotBody["privacy"] != "public" {
		t.Fatalf("unexpected request body: %v", gotBody)
	}
}

func TestMapCreate_APIError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no such map"}`))
	}))
	defer srv.Close()

	_, err := MapCreate(context.Background(), srv.Client(), srv.URL, nil, "")
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != 404 || apiErr.Body != `{"message":"no such map"}` {
		t.Fatalf("status/body not preserved: %+v", apiErr)
	}
}

func TestMapCreate_MissingIdentifier(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"title":"Coffee Shops"}`))
	}))
	defer srv.Close()

	_, err := MapCreate(context.Background(), srv.Client(), srv.URL, &types.MapCreatePayload{Title: "Coffee Shops"}, "")
	var mr *types.MalformedResponseError
	if !errors.As(err, &mr) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func TestMapCreate_MissingTokenAnonymous(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"uuid":"abc-123"}`))
	}))
	defer srv.Close()

	// Anonymous create must return an edit token.
	_, err := MapCreate(context.Background(), srv.Client(), srv.URL, nil, "")
	var mr *types.MalformedResponseError
	if !errors.As(err, &mr) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}

	// With an API key the token is optional: the map is account-owned.
	if _, err := MapCreate(context.Background(), srv.Client(), srv.URL, nil, "key-1"); err != nil {
		t.Fatalf("authenticated create should tolerate missing token: %v", err)
	}
}

func TestMapCreate_InvalidPrivacyRejectedBeforeWire(t *testing.T) {
	srv := failIfCalled(t)
	defer srv.Close()

	_, err := MapCreate(context.Background(), srv.Client(), srv.URL, &types.MapCreatePayload{Privacy: "everyone"}, "")
	var ve *types.ValidationError
	if !errors.As(err, &ve) || !ve.Has("privacy", types.InvalidEnum) {
		t.Fatalf("expected invalid_enum on privacy, got %v", err)
	}
}

func TestMapList_QueryEncoding(t *testing.T) {
	t.Parallel()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"uuid":"m1"},{"uuid":"m2"}]`))
	}))
	defer srv.Close()

	mine := true
	maps, err := MapList(context.Background(), srv.Client(), srv.URL, &types.MapListParams{
		CategoryIDs:   []int64{3, 7},
		WithMine:      &mine,
		WithRelations: []string{"markers"},
		OrderBy:       "created_at",
	}, "")
	if err != nil {
		t.Fatalf("MapList: %v", err)
	}
	if len(maps) != 2 || maps[0].UUID != "m1" {
		t.Fatalf("unexpected maps: %+v", maps)
	}
	want := "category_ids%5B%5D=3&category_ids%5B%5D=7&orderBy=created_at&withMine=true&with%5B%5D=markers"
	if gotQuery != want {
		t.Fatalf("query mismatch:\n got  %s\n want %s", gotQuery, want)
	}
}

func TestMapList_NoParamsSendsBareRequest(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected empty query, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := MapList(context.Background(), srv.Client(), srv.URL, nil, ""); err != nil {
		t.Fatalf("MapList: %v", err)
	}
}

func TestMapSearch(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/search" || r.URL.Query().Get("q") != "coffee" {
			t.Errorf("unexpected request: %s", r.URL)
		}
		_, _ = w.Write([]byte(`[{"uuid":"m1","title":"Coffee Shops"}]`))
	}))
	defer srv.Close()

	maps, err := MapSearch(context.Background(), srv.Client(), srv.URL, "coffee", "")
	if err != nil || len(maps) != 1 {
		t.Fatalf("MapSearch unexpected: maps=%+v err=%v", maps, err)
	}
	if _, err := MapSearch(context.Background(), srv.Client(), srv.URL, "", ""); err == nil {
		t.Fatal("expected validation error for empty query")
	}
}

func TestMapGet_InvalidUUID(t *testing.T) {
	srv := failIfCalled(t)
	defer srv.Close()

	_, err := MapGet(context.Background(), srv.Client(), srv.URL, "not-a-uuid", "")
	var ve *types.ValidationError
	if !errors.As(err, &ve) || !ve.Has("map_id", types.WrongType) {
		t.Fatalf("expected wrong_type on map_id, got %v", err)
	}
}

func TestMapEdit_TokenInBody(t *testing.T) {
	t.Parallel()
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"uuid":"` + testMapID + `","privacy":"unlisted"}`))
	}))
	defer srv.Close()

	m, err := MapEdit(context.Background(), srv.Client(), srv.URL, testMapID, "tok-xyz",
		&types.MapCreatePayload{Privacy: types.PrivacyUnlisted}, "")
	if err != nil {
		t.Fatalf("MapEdit: %v", err)
	}
	if m.Privacy != types.PrivacyUnlisted {
		t.Fatalf("unexpected map: %+v", m)
	}
	if gotBody["map_token"] != "tok-xyz" || gotBody["privacy"] != "unlisted" {
		t.Fatalf("unexpected body: %v", gotBody)
	}
}

func TestMapEdit_RequiresTokenOrKey(t *testing.T) {
	srv := failIfCalled(t)
	defer srv.Close()

	_, err := MapEdit(context.Background(), srv.Client(), srv.URL, testMapID, "", nil, "")
	var ve *types.ValidationError
	if !errors.As(err, &ve) || !ve.Has("map_token", types.MissingRequired) {
		t.Fatalf("expected missing_required on map_token, got %v", err)
	}
}

func TestMapDelete(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := MapDelete(context.Background(), srv.Client(), srv.URL, testMapID, "tok-xyz", ""); err != nil {
		t.Fatalf("MapDelete: %v", err)
	}
	if err := MapDelete(context.Background(), srv.Client(), srv.URL, testMapID, "", ""); err == nil {
		t.Fatal("expected validation error without token")
	}
}

func TestMapStaticImage_ZoomBounds(t *testing.T) {
	srv := failIfCalled(t)
	defer srv.Close()

	zoom := 25
	_, err := MapStaticImage(context.Background(), srv.Client(), srv.URL, testMapID, &zoom, "")
	var ve *types.ValidationError
	if !errors.As(err, &ve) || !ve.Has("zoom", types.OutOfRange) {
		t.Fatalf("expected out_of_range on zoom, got %v", err)
	}
}

func TestMapClaimUnclaim(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"uuid":"` + testMapID + `"}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	if _, err := MapClaim(context.Background(), srv.Client(), srv.URL, testMapID, "tok-xyz", "key-1"); err != nil {
		t.Fatalf("MapClaim: %v", err)
	}
	if _, err := MapClaim(context.Background(), srv.Client(), srv.URL, testMapID, "tok-xyz", ""); err == nil {
		t.Fatal("expected validation error without api key")
	}
	if err := MapUnclaim(context.Background(), srv.Client(), srv.URL, testMapID, "key-1"); err != nil {
		t.Fatalf("MapUnclaim: %v", err)
	}
}

func TestMapUsers(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"username":"ada"}]`))
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"username":"ada","can_create_markers":true}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	users, err := MapUserList(context.Background(), srv.Client(), srv.URL, testMapID, "key-1")
	if err != nil || len(users) != 1 || users[0].Username != "ada" {
		t.Fatalf("MapUserList unexpected: users=%+v err=%v", users, err)
	}
	can := true
	mu, err := MapUserAdd(context.Background(), srv.Client(), srv.URL, testMapID, "ada", &can, "key-1")
	if err != nil || !mu.CanCreateMarkers {
		t.Fatalf("MapUserAdd unexpected: mu=%+v err=%v", mu, err)
	}
	if err := MapUserDelete(context.Background(), srv.Client(), srv.URL, testMapID, "ada", "key-1"); err != nil {
		t.Fatalf("MapUserDelete: %v", err)
	}
	if _, err := MapUserAdd(context.Background(), srv.Client(), srv.URL, testMapID, "", &can, "key-1"); err == nil {
		t.Fatal("expected validation error for empty username")
	}
}
