package types

// ------------------------------
// Request Types
// ------------------------------
//
// Structs with json tags are serialized as request bodies; structs with
// url tags are encoded as query strings via go-querystring. Optional
// fields carry omitempty so absent values are left out of the wire form
// entirely rather than sent as null, letting the service apply its own
// defaults.

// MapCreatePayload holds the attributes of a new or edited map.
// Every field is optional.
type MapCreatePayload struct {
	Title                 string     `json:"title,omitempty"`
	Slug                  string     `json:"slug,omitempty"`
	Description           string     `json:"description,omitempty"`
	Privacy               Privacy    `json:"privacy,omitempty" validate:"omitempty,oneof=public unlisted private"`
	UsersCanCreateMarkers Permission `json:"users_can_create_markers,omitempty" validate:"omitempty,oneof=yes no only_logged_in"`
}

// MapListParams filters the public map listing. All fields are optional.
type MapListParams struct {
	IDs           []string `url:"ids[],omitempty"`
	CategoryIDs   []int64  `url:"category_ids[],omitempty"`
	WithMine      *bool    `url:"withMine,omitempty"`
	WithRelations []string `url:"with[],omitempty"`
	OrderBy       string   `url:"orderBy,omitempty"`
	Query         string   `url:"query,omitempty"`
	Format        string   `url:"format,omitempty"`
}

// MarkerListParams filters the marker listing of one map.
type MarkerListParams struct {
	ShowExpired *bool  `url:"show_expired,omitempty"`
	Format      string `url:"format,omitempty"`
}

// MarkerCreatePayload holds the attributes of a new marker. At least one
// of Category and CategoryName must be set; when both are set they are
// passed through verbatim and the service resolves precedence.
type MarkerCreatePayload struct {
	MapToken     string  `json:"map_token" validate:"required"`
	Lat          float64 `json:"lat" validate:"latitude"`
	Lng          float64 `json:"lng" validate:"longitude"`
	Category     *int64  `json:"category,omitempty" validate:"required_without=CategoryName"`
	CategoryName string  `json:"category_name,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// MarkerLocationPayload appends a point to a marker's location history.
// Telemetry fields are optional and omitted when unset.
type MarkerLocationPayload struct {
	Lat       float64  `json:"lat" validate:"latitude"`
	Lng       float64  `json:"lng" validate:"longitude"`
	Zoom      *float64 `json:"zoom,omitempty" validate:"omitempty,gte=0,lte=20"`
	Elevation *float64 `json:"elevation,omitempty"`
	Heading   *float64 `json:"heading,omitempty" validate:"omitempty,gte=0,lt=360"`
	Pitch     *float64 `json:"pitch,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Roll      *float64 `json:"roll,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Speed     *float64 `json:"speed,omitempty" validate:"omitempty,gte=0"`
}

// MeUpdatePayload updates the authenticated user's profile.
type MeUpdatePayload struct {
	Username string `json:"username,omitempty"`
	IsPublic *bool  `json:"is_public,omitempty"`
}
