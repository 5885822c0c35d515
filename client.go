// Package cartes is a typed Go client for the Cartes.io mapping
// platform API. Each method issues exactly one HTTP request; payloads
// are validated before anything touches the wire, and failures surface
// as one of four error kinds (see errors.go). A Client holds no mutable
// state beyond its configuration, so a single value may be shared
// across goroutines.
package cartes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/simple-maps/cartes-go/internal/api"
)

// DefaultBaseURL is the public Cartes.io API endpoint.
const DefaultBaseURL = "https://cartes.io/api"

// Client talks to one Cartes.io deployment. Construct it once with New
// and share it; configuration is immutable after construction.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New constructs a Client for baseURL. An empty baseURL selects the
// public Cartes.io endpoint. Additional behaviour is configured via
// functional options.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.instrumentTransport()
	return c, nil
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Map operations - delegated to internal/api
// --------------------------------------------------------------------

// MapList retrieves public maps, optionally filtered by params.
func (c *Client) MapList(ctx context.Context, params *MapListParams) ([]Map, error) {
	return api.MapList(ctx, c.http, c.baseURL, params, c.apiKey)
}

// MapSearch matches public maps against a query string.
func (c *Client) MapSearch(ctx context.Context, query string) ([]Map, error) {
	return api.MapSearch(ctx, c.http, c.baseURL, query, c.apiKey)
}

// MapGet retrieves a single map by UUID.
func (c *Client) MapGet(ctx context.Context, mapID string) (*Map, error) {
	return api.MapGet(ctx, c.http, c.baseURL, mapID, c.apiKey)
}

// MapCreate creates a map. The returned Map carries the edit token the
// caller must persist to edit or delete the map later; the client never
// stores it.
func (c *Client) MapCreate(ctx context.Context, payload *MapCreatePayload) (*Map, error) {
	return api.MapCreate(ctx, c.http, c.baseURL, payload, c.apiKey)
}

// MapEdit updates a map using the edit token from MapCreate, or the
// client's API key for account-owned maps.
func (c *Client) MapEdit(ctx context.Context, mapID, mapToken string, payload *MapCreatePayload) (*Map, error) {
	return api.MapEdit(ctx, c.http, c.baseURL, mapID, mapToken, payload, c.apiKey)
}

// MapDelete removes a map.
func (c *Client) MapDelete(ctx context.Context, mapID, mapToken string) error {
	return api.MapDelete(ctx, c.http, c.baseURL, mapID, mapToken, c.apiKey)
}

// MapStaticImage returns the static image descriptor for a map. Zoom is
// optional (nil for the service default, otherwise 2-19).
func (c *Client) MapStaticImage(ctx context.Context, mapID string, zoom *int) (*StaticImage, error) {
	return api.MapStaticImage(ctx, c.http, c.baseURL, mapID, zoom, c.apiKey)
}

// MapClaim associates an anonymous map with the authenticated account.
func (c *Client) MapClaim(ctx context.Context, mapID, mapToken string) (*Map, error) {
	return api.MapClaim(ctx, c.http, c.baseURL, mapID, mapToken, c.apiKey)
}

// MapUnclaim detaches a map from the authenticated account.
func (c *Client) MapUnclaim(ctx context.Context, mapID string) error {
	return api.MapUnclaim(ctx, c.http, c.baseURL, mapID, c.apiKey)
}

// MapUserList lists the collaborators of a map.
func (c *Client) MapUserList(ctx context.Context, mapID string) ([]MapUser, error) {
	return api.MapUserList(ctx, c.http, c.baseURL, mapID, c.apiKey)
}

// MapUserAdd grants a user access to a map.
func (c *Client) MapUserAdd(ctx context.Context, mapID, username string, canCreateMarkers *bool) (*MapUser, error) {
	return api.MapUserAdd(ctx, c.http, c.baseURL, mapID, username, canCreateMarkers, c.apiKey)
}

// MapUserDelete revokes a user's access to a map.
func (c *Client) MapUserDelete(ctx context.Context, mapID, username string) error {
	return api.MapUserDelete(ctx, c.http, c.baseURL, mapID, username, c.apiKey)
}

// --------------------------------------------------------------------
// Marker operations - delegated to internal/api
// --------------------------------------------------------------------

// MarkerList retrieves the markers of a map.
func (c *Client) MarkerList(ctx context.Context, mapID string, params *MarkerListParams) ([]Marker, error) {
	return api.MarkerList(ctx, c.http, c.baseURL, mapID, params, c.apiKey)
}

// MarkerCreate places a marker on a map. The returned Marker carries
// the edit token for later edits and deletes.
func (c *Client) MarkerCreate(ctx context.Context, mapID string, payload MarkerCreatePayload) (*Marker, error) {
	return api.MarkerCreate(ctx, c.http, c.baseURL, mapID, payload, c.apiKey)
}

// MarkerEdit updates a marker's description.
func (c *Client) MarkerEdit(ctx context.Context, mapID string, markerID int64, markerToken, description string) (*Marker, error) {
	return api.MarkerEdit(ctx, c.http, c.baseURL, mapID, markerID, markerToken, description, c.apiKey)
}

// MarkerDelete removes a marker.
func (c *Client) MarkerDelete(ctx context.Context, mapID string, markerID int64, markerToken string) error {
	return api.MarkerDelete(ctx, c.http, c.baseURL, mapID, markerID, markerToken, c.apiKey)
}

// MarkerSpam flags or unflags a marker as spam.
func (c *Client) MarkerSpam(ctx context.Context, mapID string, markerID int64, mapToken string, isSpam bool) (*Marker, error) {
	return api.MarkerSpam(ctx, c.http, c.baseURL, mapID, markerID, mapToken, isSpam, c.apiKey)
}

// MarkerLocationList retrieves a marker's location history.
func (c *Client) MarkerLocationList(ctx context.Context, mapID string, markerID int64) ([]MarkerLocation, error) {
	return api.MarkerLocationList(ctx, c.http, c.baseURL, mapID, markerID, c.apiKey)
}

// MarkerLocationCreate appends a point to a marker's location history.
func (c *Client) MarkerLocationCreate(ctx context.Context, mapID string, markerID int64, markerToken string, payload MarkerLocationPayload) (*MarkerLocation, error) {
	return api.MarkerLocationCreate(ctx, c.http, c.baseURL, mapID, markerID, markerToken, payload, c.apiKey)
}

// --------------------------------------------------------------------
// Category operations - delegated to internal/api
// --------------------------------------------------------------------

// CategoryList retrieves all available categories.
func (c *Client) CategoryList(ctx context.Context) ([]Category, error) {
	return api.CategoryList(ctx, c.http, c.baseURL, c.apiKey)
}

// CategorySearch matches categories by name.
func (c *Client) CategorySearch(ctx context.Context, query string) ([]Category, error) {
	return api.CategorySearch(ctx, c.http, c.baseURL, query, c.apiKey)
}

// CategoryRelated retrieves categories related to the given category.
func (c *Client) CategoryRelated(ctx context.Context, categoryID int64) ([]Category, error) {
	return api.CategoryRelated(ctx, c.http, c.baseURL, categoryID, c.apiKey)
}

// --------------------------------------------------------------------
// User operations - delegated to internal/api
// --------------------------------------------------------------------

// UserList retrieves all public user profiles.
func (c *Client) UserList(ctx context.Context) ([]User, error) {
	return api.UserList(ctx, c.http, c.baseURL, c.apiKey)
}

// UserGet retrieves a public profile, optionally with relations such as
// "maps".
func (c *Client) UserGet(ctx context.Context, username string, withRelations ...string) (*User, error) {
	return api.UserGet(ctx, c.http, c.baseURL, username, withRelations, c.apiKey)
}

// MeGet retrieves the authenticated user's profile. Requires an API key.
func (c *Client) MeGet(ctx context.Context) (*User, error) {
	return api.MeGet(ctx, c.http, c.baseURL, c.apiKey)
}

// MeUpdate updates the authenticated user's profile. Requires an API key.
func (c *Client) MeUpdate(ctx context.Context, payload MeUpdatePayload) (*User, error) {
	return api.MeUpdate(ctx, c.http, c.baseURL, payload, c.apiKey)
}
