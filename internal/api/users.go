package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/simple-maps/cartes-go/internal/types"
)

// UserList retrieves all public user profiles.
func UserList(ctx context.Context, hc HTTPClient, baseURL, apiKey string) ([]types.User, error) {
	const op = "list users"
	raw, err := do(ctx, hc, baseURL, request{op: op, method: http.MethodGet, path: "/users", apiKey: apiKey})
	if err != nil {
		return nil, err
	}
	var users []types.User
	if err := decode(op, raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserGet retrieves a public profile, optionally with related data such
// as the user's maps.
func UserGet(ctx context.Context, hc HTTPClient, baseURL, username string, withRelations []string, apiKey string) (*types.User, error) {
	const op = "get user"
	if username == "" {
		return nil, types.MissingField("username", "a username is required")
	}
	r := request{op: op, method: http.MethodGet, path: "/users/" + url.PathEscape(username), apiKey: apiKey}
	if len(withRelations) > 0 {
		r.query = struct {
			With []string `url:"with[]"`
		}{withRelations}
	}
	raw, err := do(ctx, hc, baseURL, r)
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := decode(op, raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// MeGet retrieves the authenticated user's profile.
func MeGet(ctx context.Context, hc HTTPClient, baseURL, apiKey string) (*types.User, error) {
	const op = "get own profile"
	if err := requireAPIKey(apiKey); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{op: op, method: http.MethodGet, path: "/user", apiKey: apiKey})
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := decode(op, raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// MeUpdate updates the authenticated user's profile.
func MeUpdate(ctx context.Context, hc HTTPClient, baseURL string, payload types.MeUpdatePayload, apiKey string) (*types.User, error) {
	const op = "update own profile"
	if err := requireAPIKey(apiKey); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{op: op, method: http.MethodPut, path: "/user", body: payload, apiKey: apiKey})
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := decode(op, raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
