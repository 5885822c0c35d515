package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/simple-maps/cartes-go/internal/types"
)

func markerPath(mapID string, markerID int64) string {
	return "/maps/" + mapID + "/markers/" + strconv.FormatInt(markerID, 10)
}

// MarkerList retrieves the markers of a map.
func MarkerList(ctx context.Context, hc HTTPClient, baseURL, mapID string, params *types.MarkerListParams, apiKey string) ([]types.Marker, error) {
	const op = "list markers"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	r := request{op: op, method: http.MethodGet, path: "/maps/" + mapID + "/markers", apiKey: apiKey}
	if params != nil {
		r.query = params
	}
	raw, err := do(ctx, hc, baseURL, r)
	if err != nil {
		return nil, err
	}
	var markers []types.Marker
	if err := decode(op, raw, &markers); err != nil {
		return nil, err
	}
	return markers, nil
}

// MarkerCreate places a marker on a map. The payload is validated
// before the wire; the response must carry the marker id, and for
// anonymous creates an edit token.
func MarkerCreate(ctx context.Context, hc HTTPClient, baseURL, mapID string, payload types.MarkerCreatePayload, apiKey string) (*types.Marker, error) {
	const op = "create marker"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	if err := types.Validate(payload); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodPost,
		path:   "/maps/" + mapID + "/markers",
		body:   payload,
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var m types.Marker
	if err := decode(op, raw, &m); err != nil {
		return nil, err
	}
	if m.ID == 0 {
		return nil, &types.MalformedResponseError{Endpoint: op, Reason: "response lacks the marker id"}
	}
	if apiKey == "" && m.Token == "" {
		return nil, &types.MalformedResponseError{Endpoint: op, Reason: "response lacks the edit token"}
	}
	return &m, nil
}

// MarkerEdit updates a marker's description using its edit token.
func MarkerEdit(ctx context.Context, hc HTTPClient, baseURL, mapID string, markerID int64, markerToken, description, apiKey string) (*types.Marker, error) {
	const op = "edit marker"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	if err := requireToken("token", markerToken, apiKey); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodPut,
		path:   markerPath(mapID, markerID),
		body: struct {
			Token       string `json:"token,omitempty"`
			Description string `json:"description,omitempty"`
		}{markerToken, description},
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var m types.Marker
	if err := decode(op, raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkerDelete removes a marker using its edit token.
func MarkerDelete(ctx context.Context, hc HTTPClient, baseURL, mapID string, markerID int64, markerToken, apiKey string) error {
	const op = "delete marker"
	if err := validMapID(mapID); err != nil {
		return err
	}
	if err := requireToken("token", markerToken, apiKey); err != nil {
		return err
	}
	_, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodDelete,
		path:   markerPath(mapID, markerID),
		body: struct {
			Token string `json:"token,omitempty"`
		}{markerToken},
		apiKey: apiKey,
	})
	return err
}

// MarkerSpam flags or unflags a marker as spam. The map token and API
// key are both optional; the service decides who may flag.
func MarkerSpam(ctx context.Context, hc HTTPClient, baseURL, mapID string, markerID int64, mapToken string, isSpam bool, apiKey string) (*types.Marker, error) {
	const op = "flag marker spam"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodPut,
		path:   markerPath(mapID, markerID),
		body: struct {
			MapToken string `json:"map_token,omitempty"`
			IsSpam   bool   `json:"is_spam"`
		}{mapToken, isSpam},
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var m types.Marker
	if err := decode(op, raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkerLocationList retrieves a marker's location history.
func MarkerLocationList(ctx context.Context, hc HTTPClient, baseURL, mapID string, markerID int64, apiKey string) ([]types.MarkerLocation, error) {
	const op = "list marker locations"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodGet,
		path:   markerPath(mapID, markerID) + "/locations",
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var locs []types.MarkerLocation
	if err := decode(op, raw, &locs); err != nil {
		return nil, err
	}
	return locs, nil
}

// markerLocationBody rides the marker token alongside the validated
// location fields in one JSON body.
type markerLocationBody struct {
	Token string `json:"token,omitempty"`
	types.MarkerLocationPayload
}

// MarkerLocationCreate appends a point to a marker's location history.
func MarkerLocationCreate(ctx context.Context, hc HTTPClient, baseURL, mapID string, markerID int64, markerToken string, payload types.MarkerLocationPayload, apiKey string) (*types.MarkerLocation, error) {
	const op = "create marker location"
	if err := validMapID(mapID); err != nil {
		return nil, err
	}
	if err := requireToken("token", markerToken, apiKey); err != nil {
		return nil, err
	}
	if err := types.Validate(payload); err != nil {
		return nil, err
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodPost,
		path:   markerPath(mapID, markerID) + "/locations",
		body:   markerLocationBody{Token: markerToken, MarkerLocationPayload: payload},
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var loc types.MarkerLocation
	if err := decode(op, raw, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}
