package cartes

import "github.com/simple-maps/cartes-go/internal/types"

// Public type aliases so SDK consumers can import only the cartes
// package.

// Requests
type (
	MapCreatePayload      = types.MapCreatePayload
	MapListParams         = types.MapListParams
	MarkerListParams      = types.MarkerListParams
	MarkerCreatePayload   = types.MarkerCreatePayload
	MarkerLocationPayload = types.MarkerLocationPayload
	MeUpdatePayload       = types.MeUpdatePayload
)

// Domain entities
type (
	Map            = types.Map
	Marker         = types.Marker
	MarkerLocation = types.MarkerLocation
	Category       = types.Category
	User           = types.User
	MapUser        = types.MapUser
	StaticImage    = types.StaticImage
)

// Enumerations
type (
	Privacy    = types.Privacy
	Permission = types.Permission
)

const (
	PrivacyPublic   = types.PrivacyPublic
	PrivacyUnlisted = types.PrivacyUnlisted
	PrivacyPrivate  = types.PrivacyPrivate

	PermissionYes    = types.PermissionYes
	PermissionNo     = types.PermissionNo
	PermissionLogged = types.PermissionLogged
)

// ParsePrivacy converts a string into a Privacy member, failing with a
// ValidationError of kind InvalidEnum for anything outside the closed
// set.
func ParsePrivacy(s string) (Privacy, error) { return types.ParsePrivacy(s) }

// ParsePermission converts a string into a Permission member.
func ParsePermission(s string) (Permission, error) { return types.ParsePermission(s) }
