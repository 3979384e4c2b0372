// Package messages holds the neutral cross-platform message shapes carried
// by every channel transport. Every field a caller may omit is a pointer.
package messages

// LatLng is a coordinate as sent by a caller.
type LatLng struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// LatLngBounds is a bias or restriction region as sent by a caller.
type LatLngBounds struct {
	Southwest *LatLng `json:"southwest"`
	Northeast *LatLng `json:"northeast"`
}

// FindAutocompletePredictionsRequest is the single channel operation's input.
type FindAutocompletePredictionsRequest struct {
	Query               string        `json:"query"`
	LocationBias        *LatLngBounds `json:"locationBias"`
	LocationRestriction *LatLngBounds `json:"locationRestriction"`
	Origin              *LatLng       `json:"origin"`
	Countries           []*string     `json:"countries"`
	TypeFilter          []*int64      `json:"typeFilter"`
	RefreshToken        *bool         `json:"refreshToken"`
}

// AutocompletePrediction is one suggestion as returned to a caller.
type AutocompletePrediction struct {
	DistanceMeters *int64   `json:"distanceMeters"`
	FullText       string   `json:"fullText"`
	PlaceID        string   `json:"placeId"`
	PlaceTypes     []*int64 `json:"placeTypes"`
	PrimaryText    string   `json:"primaryText"`
	SecondaryText  string   `json:"secondaryText"`
}

// Error codes shared by every transport.
const (
	CodeInvalidArgument = "invalid_argument"
	CodeAPIError        = "api_error"
	CodeUnavailable     = "unavailable"
	CodeInternal        = "internal_error"
)

// Error is the failure half of a Reply.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Reply is the envelope sent back over request/reply channels.
// Exactly one of Result or Error is set.
type Reply struct {
	ID     string                    `json:"id,omitempty"`
	Result []*AutocompletePrediction `json:"result"`
	Error  *Error                    `json:"error,omitempty"`
}

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Point builds a fully populated LatLng.
func Point(lat, lng float64) *LatLng {
	return &LatLng{Latitude: Float64(lat), Longitude: Float64(lng)}
}
