package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func validMarker() MarkerCreatePayload {
	return MarkerCreatePayload{MapToken: "tok-xyz", Lat: 40.7128, Lng: -74.0060, CategoryName: "coffee"}
}

func TestMarkerCreate_LatitudeBounds(t *testing.T) {
	for _, lat := range []float64{-90, -45.5, 0, 89.999, 90} {
		p := validMarker()
		p.Lat = lat
		if err := Validate(p); err != nil {
			t.Fatalf("lat %v should be valid: %v", lat, err)
		}
	}
	for _, lat := range []float64{-90.0001, 91, 1000} {
		p := validMarker()
		p.Lat = lat
		err := Validate(p)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("lat %v: expected ValidationError, got %v", lat, err)
		}
		if !ve.Has("lat", OutOfRange) {
			t.Fatalf("lat %v: expected out_of_range on lat, got %+v", lat, ve.Violations)
		}
	}
}

func TestMarkerCreate_LongitudeBounds(t *testing.T) {
	for _, lng := range []float64{-180, 0, 179.5, 180} {
		p := validMarker()
		p.Lng = lng
		if err := Validate(p); err != nil {
			t.Fatalf("lng %v should be valid: %v", lng, err)
		}
	}
	for _, lng := range []float64{-180.5, 180.0001} {
		p := validMarker()
		p.Lng = lng
		err := Validate(p)
		var ve *ValidationError
		if !errors.As(err, &ve) || !ve.Has("lng", OutOfRange) {
			t.Fatalf("lng %v: expected out_of_range on lng, got %v", lng, err)
		}
	}
}

func TestMarkerCreate_MissingToken(t *testing.T) {
	p := validMarker()
	p.MapToken = ""
	err := Validate(p)
	var ve *ValidationError
	if !errors.As(err, &ve) || !ve.Has("map_token", MissingRequired) {
		t.Fatalf("expected missing_required on map_token, got %v", err)
	}
}

func TestMarkerCreate_CategoryOrNameRequired(t *testing.T) {
	p := MarkerCreatePayload{MapToken: "tok", Lat: 1, Lng: 2}
	err := Validate(p)
	var ve *ValidationError
	if !errors.As(err, &ve) || !ve.Has("category", MissingRequired) {
		t.Fatalf("expected missing_required on category, got %v", err)
	}

	id := int64(7)
	p.Category = &id
	if err := Validate(p); err != nil {
		t.Fatalf("category by id should satisfy the requirement: %v", err)
	}

	// Both set: passed through, the service resolves precedence.
	p.CategoryName = "coffee"
	if err := Validate(p); err != nil {
		t.Fatalf("category and category_name together should validate: %v", err)
	}
}

func TestMarkerCreate_AllViolationsReported(t *testing.T) {
	p := MarkerCreatePayload{Lat: 95, Lng: -181}
	err := Validate(p)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// map_token, lat, lng, category must all be reported at once.
	if len(ve.Violations) != 4 {
		t.Fatalf("expected 4 violations, got %d: %+v", len(ve.Violations), ve.Violations)
	}
	for _, want := range []struct {
		field string
		kind  ViolationKind
	}{
		{"map_token", MissingRequired},
		{"lat", OutOfRange},
		{"lng", OutOfRange},
		{"category", MissingRequired},
	} {
		if !ve.Has(want.field, want.kind) {
			t.Fatalf("missing %s/%s in %+v", want.field, want.kind, ve.Violations)
		}
	}
}

func TestMapCreate_PrivacyEnum(t *testing.T) {
	for _, p := range []Privacy{PrivacyPublic, PrivacyUnlisted, PrivacyPrivate} {
		payload := MapCreatePayload{Privacy: p}
		if err := Validate(payload); err != nil {
			t.Fatalf("privacy %q should be valid: %v", p, err)
		}
		// Round-trip: the lowercase wire string survives serialize/deserialize.
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back MapCreatePayload
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if back.Privacy != p {
			t.Fatalf("privacy round-trip changed: %q != %q", back.Privacy, p)
		}
	}

	err := Validate(MapCreatePayload{Privacy: Privacy("everyone")})
	var ve *ValidationError
	if !errors.As(err, &ve) || !ve.Has("privacy", InvalidEnum) {
		t.Fatalf("expected invalid_enum on privacy, got %v", err)
	}
}

func TestMapCreate_PermissionEnum(t *testing.T) {
	for _, p := range []Permission{PermissionYes, PermissionNo, PermissionLogged} {
		if err := Validate(MapCreatePayload{UsersCanCreateMarkers: p}); err != nil {
			t.Fatalf("permission %q should be valid: %v", p, err)
		}
	}
	err := Validate(MapCreatePayload{UsersCanCreateMarkers: Permission("maybe")})
	var ve *ValidationError
	if !errors.As(err, &ve) || !ve.Has("users_can_create_markers", InvalidEnum) {
		t.Fatalf("expected invalid_enum on users_can_create_markers, got %v", err)
	}
}

func TestMapCreate_EmptyPayloadSerializesEmpty(t *testing.T) {
	p := MapCreatePayload{}
	if err := Validate(p); err != nil {
		t.Fatalf("empty payload should validate: %v", err)
	}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{}" {
		t.Fatalf("expected empty object, got %s", b)
	}
}

func TestMarkerLocation_TelemetryBounds(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	ok := MarkerLocationPayload{Lat: 10, Lng: 20, Zoom: f(20), Heading: f(359.9), Pitch: f(-90), Roll: f(180), Speed: f(0)}
	if err := Validate(ok); err != nil {
		t.Fatalf("boundary telemetry should validate: %v", err)
	}

	bad := MarkerLocationPayload{Lat: 10, Lng: 20, Zoom: f(21), Heading: f(360), Pitch: f(91), Roll: f(-181), Speed: f(-1)}
	err := Validate(bad)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"zoom", "heading", "pitch", "roll", "speed"} {
		if !ve.Has(field, OutOfRange) {
			t.Fatalf("expected out_of_range on %s, got %+v", field, ve.Violations)
		}
	}
}

func TestParsePrivacy(t *testing.T) {
	if p, err := ParsePrivacy("unlisted"); err != nil || p != PrivacyUnlisted {
		t.Fatalf("unexpected: %v %v", p, err)
	}
	_, err := ParsePrivacy("Public")
	var ve *ValidationError
	if !errors.As(err, &ve) || !ve.Has("privacy", InvalidEnum) {
		t.Fatalf("expected invalid_enum for non-canonical case, got %v", err)
	}
}

func TestParsePermission(t *testing.T) {
	if p, err := ParsePermission("only_logged_in"); err != nil || p != PermissionLogged {
		t.Fatalf("unexpected: %v %v", p, err)
	}
	if _, err := ParsePermission("logged"); err == nil {
		t.Fatal("expected error for unknown permission")
	}
}
