package types

import "time"

// ------------------------------
// Enumerations
// ------------------------------

// Privacy is the visibility level of a map. Wire values are the
// lowercase strings the service documents.
type Privacy string

const (
	PrivacyPublic   Privacy = "public"
	PrivacyUnlisted Privacy = "unlisted"
	PrivacyPrivate  Privacy = "private"
)

// Permission controls who may create markers on a map.
type Permission string

const (
	PermissionYes    Permission = "yes"
	PermissionNo     Permission = "no"
	PermissionLogged Permission = "only_logged_in"
)

// ParsePrivacy converts a user-supplied string into a Privacy member.
func ParsePrivacy(s string) (Privacy, error) {
	switch p := Privacy(s); p {
	case PrivacyPublic, PrivacyUnlisted, PrivacyPrivate:
		return p, nil
	}
	return "", NewValidationError(FieldViolation{
		Field:   "privacy",
		Kind:    InvalidEnum,
		Message: "\"" + s + "\" is not one of public, unlisted, private",
	})
}

// ParsePermission converts a user-supplied string into a Permission member.
func ParsePermission(s string) (Permission, error) {
	switch p := Permission(s); p {
	case PermissionYes, PermissionNo, PermissionLogged:
		return p, nil
	}
	return "", NewValidationError(FieldViolation{
		Field:   "users_can_create_markers",
		Kind:    InvalidEnum,
		Message: "\"" + s + "\" is not one of yes, no, only_logged_in",
	})
}

// ------------------------------
// Core Domain Entities
// ------------------------------

// Map is a server-returned map. Token is the edit token and is only
// present in the response to an anonymous create; the caller must
// persist it to edit or delete the map later.
type Map struct {
	UUID                  string     `json:"uuid"`
	Title                 string     `json:"title,omitempty"`
	Slug                  string     `json:"slug,omitempty"`
	Description           string     `json:"description,omitempty"`
	Privacy               Privacy    `json:"privacy,omitempty"`
	UsersCanCreateMarkers Permission `json:"users_can_create_markers,omitempty"`
	Token                 string     `json:"token,omitempty"`
	CreatedAt             *time.Time `json:"created_at,omitempty"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
	Markers               []Marker   `json:"markers,omitempty"`
	Categories            []Category `json:"categories,omitempty"`
}

// Marker is a geolocated point on a map. Token is only present in the
// response to a create and authorizes later edits and deletes.
type Marker struct {
	ID          int64            `json:"id"`
	Lat         float64          `json:"lat"`
	Lng         float64          `json:"lng"`
	Description string           `json:"description,omitempty"`
	Category    *Category        `json:"category,omitempty"`
	Token       string           `json:"token,omitempty"`
	IsSpam      bool             `json:"is_spam,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	Locations   []MarkerLocation `json:"locations,omitempty"`
}

// MarkerLocation is one point in a marker's location history. The
// timestamp is assigned by the service.
type MarkerLocation struct {
	ID        int64      `json:"id,omitempty"`
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lng"`
	Zoom      *float64   `json:"zoom,omitempty"`
	Elevation *float64   `json:"elevation,omitempty"`
	Heading   *float64   `json:"heading,omitempty"`
	Pitch     *float64   `json:"pitch,omitempty"`
	Roll      *float64   `json:"roll,omitempty"`
	Speed     *float64   `json:"speed,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Category labels markers across maps.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// User is a public profile.
type User struct {
	Username  string     `json:"username"`
	IsPublic  bool       `json:"is_public,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Maps      []Map      `json:"maps,omitempty"`
}

// MapUser is a collaborator entry on a map.
type MapUser struct {
	Username         string `json:"username"`
	CanCreateMarkers bool   `json:"can_create_markers,omitempty"`
}

// StaticImage is the response of the static map image endpoint.
type StaticImage struct {
	URL string `json:"url"`
}
