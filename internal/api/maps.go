package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/simple-maps/cartes-go/internal/types"
)

// MapList retrieves public maps. Params are optional filters encoded as
// query parameters with the service's documented names.
func MapList(ctx context.Context, hc HTTPClient, baseURL string, params *types.MapListParams, apiKey string) ([]types.Map, error) {
	const op = "list maps"
	r := request{op: op, method: http.MethodGet, path: "/maps", apiKey: apiKey}
	if params != nil {
		r.query = params
	}
	raw, err := do(ctx, hc, baseURL, r)
	if err != nil {
		return nil, err
	}
	var maps []types.Map
	if err := decode(op, raw, &maps); err != nil {
		return nil, err
	}
	return maps, nil
}

// MapSearch matches public maps against a query string.
func MapSearch(ctx context.Context, hc HTTPClient, baseURL, q, apiKey string) ([]types.Map, error) {
	const op = "search maps"
	if q == "" {
		return nil, types.MissingField("q", "a search query is required")
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodGet,
		path:   "/maps/search",
		query:  struct {
			Q string `url:"q"`
		}{q},
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var maps []types.Map
	if err := decode(op, raw, &maps); err != nil {
		return nil, err
	}
	return maps, nil
}

// MapGet retrieves a single map by UUID.
func MapGet(ctx context.Context, hc HTTPClient, baseURL, mapID, apiKey string) (*types.Map, error) {
	const op = "get map"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{op: op, method: http.MethodGet, path: "/maps/" + mapID, apiKey: apiKey})
	if err != nil {
		return nil, err
	}
	var m types.Map
	if err := decode(op, raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MapCreate creates a map. The response must carry a UUID, and for
// anonymous creates an edit token, or the call fails despite a 2xx.
func MapCreate(ctx context.Context, hc HTTPClient, baseURL string, payload *types.MapCreatePayload, apiKey string) (*types.Map, error) {
	const op = "create map"
	body := payload
	if body == nil {
		body = &types.MapCreatePayload{}
	}
	if err := types.Validate(body); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{op: op, method: http.MethodPost, path: "/maps", body: body, apiKey: apiKey})
	if err != nil {
		return nil, err
	}
	var m types.Map
	if err := decode(op, raw, &m); err != nil {
		return nil, err
	}
	if m.UUID == "" {
		return nil, &types.MalformedResponseError{Endpoint: op, Reason: "response lacks the map uuid"}
	}
	if apiKey == "" && m.Token == "" {
		return nil, &types.MalformedResponseError{Endpoint: op, Reason: "response lacks the edit token"}
	}
	return &m, nil
}

// mapEditBody merges the map edit token with the payload fields into a
// single JSON body, matching the service's expectations.
type mapEditBody struct {
	MapToken string `json:"map_token,omitempty"`
	types.MapCreatePayload
}

// MapEdit updates a map. The caller supplies the edit token obtained at
// creation, or authenticates with an API key.
func MapEdit(ctx context.Context, hc HTTPClient, baseURL, mapID, mapToken string, payload *types.MapCreatePayload, apiKey string) (*types.Map, error) {
	const op = "edit map"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	if err := requireToken("map_token", mapToken, apiKey); err != nil {
		return nil, err
	}
	p := payload
	if p == nil {
		p = &types.MapCreatePayload{}
	}
	if err := types.Validate(p); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodPut,
		path:   "/maps/" + mapID,
		body:   mapEditBody{MapToken: mapToken, MapCreatePayload: *p},
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var m types.Map
	if err := decode(op, raw, &m); err != nil {
		return nil, err
	}
	if m.UUID == "" {
		return nil, &types.MalformedResponseError{Endpoint: op, Reason: "response lacks the map uuid"}
	}
	return &m, nil
}

// MapDelete removes a map. The success body, if any, is discarded.
func MapDelete(ctx context.Context, hc HTTPClient, baseURL, mapID, mapToken, apiKey string) error {
	const op = "delete map"
	if err := validMapID(mapID); err != nil {
		return err
	}
	if err := requireToken("map_token", mapToken, apiKey); err != nil {
		return err
	}
	_, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodDelete,
		path:   "/maps/" + mapID,
		body: struct {
			MapToken string `json:"map_token,omitempty"`
		}{mapToken},
		apiKey: apiKey,
	})
	return err
}

// MapStaticImage returns the static image descriptor for a map. Zoom is
// optional; the service accepts levels 2-19.
func MapStaticImage(ctx context.Context, hc HTTPClient, baseURL, mapID string, zoom *int, apiKey string) (*types.StaticImage, error) {
	const op = "map static image"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	if zoom != nil && (*zoom < 2 || *zoom > 19) {
		return nil, types.NewValidationError(types.FieldViolation{
			Field: "zoom", Kind: types.OutOfRange, Message: "zoom must be between 2 and 19",
		})
	}
	r := request{op: op, method: http.MethodGet, path: "/maps/" + mapID + "/images/static", apiKey: apiKey}
	if zoom != nil {
		r.query = struct {
			Zoom int `url:"zoom"`
		}{*zoom}
	}
	raw, err := do(ctx, hc, baseURL, r)
	if err != nil {
		return nil, err
	}
	var img types.StaticImage
	if err := decode(op, raw, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

// MapClaim associates an anonymous map with the authenticated account.
func MapClaim(ctx context.Context, hc HTTPClient, baseURL, mapID, mapToken, apiKey string) (*types.Map, error) {
	const op = "claim map"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	if mapToken == "" {
		return nil, types.MissingField("map_token", "the map edit token is required to claim a map")
	}
	if err := requireAPIKey(apiKey); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodPost,
		path:   "/maps/" + mapID + "/claim",
		body: struct {
			MapToken string `json:"map_token"`
		}{mapToken},
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var m types.Map
	if err := decode(op, raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MapUnclaim detaches a map from the authenticated account, making it
// anonymous again.
func MapUnclaim(ctx context.Context, hc HTTPClient, baseURL, mapID, apiKey string) error {
	const op = "unclaim map"
	if err := validMapID(mapID); err != nil {
		return err
	}
	if err := requireAPIKey(apiKey); err != nil {
		return err
	}
	_, err := do(ctx, hc, baseURL, request{op: op, method: http.MethodDelete, path: "/maps/" + mapID + "/claim", apiKey: apiKey})
	return err
}

// MapUserList lists the collaborators of a map. Owner only.
func MapUserList(ctx context.Context, hc HTTPClient, baseURL, mapID, apiKey string) ([]types.MapUser, error) {
	const op = "list map users"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	if err := requireAPIKey(apiKey); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{op: op, method: http.MethodGet, path: "/maps/" + mapID + "/users", apiKey: apiKey})
	if err != nil {
		return nil, err
	}
	var users []types.MapUser
	if err := decode(op, raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// MapUserAdd grants a user access to a map. Owner only.
func MapUserAdd(ctx context.Context, hc HTTPClient, baseURL, mapID, username string, canCreateMarkers *bool, apiKey string) (*types.MapUser, error) {
	const op = "add map user"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, types.MissingField("username", "a username is required")
	}
	if err := requireAPIKey(apiKey); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodPost,
		path:   "/maps/" + mapID + "/users",
		body: struct {
			Username         string `json:"username"`
			CanCreateMarkers *bool  `json:"can_create_markers,omitempty"`
		}{username, canCreateMarkers},
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var mu types.MapUser
	if err := decode(op, raw, &mu); err != nil {
		return nil, err
	}
	return &mu, nil
}

// MapUserDelete revokes a user's access to a map. Owner only.
func MapUserDelete(ctx context.Context, hc HTTPClient, baseURL, mapID, username, apiKey string) error {
	const op = "remove map user"
	if err := validMapID(mapID); err != nil {
		return err
	}
	if username == "" {
		return types.MissingField("username", "a username is required")
	}
	if err := requireAPIKey(apiKey); err != nil {
		return err
	}
	_, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodDelete,
		path:   "/maps/" + mapID + "/users/" + url.PathEscape(username),
		apiKey: apiKey,
	})
	return err
}
