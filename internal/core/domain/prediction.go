package domain

// AutocompleteRequest is the native request handed to a PlacesClient.
// Nil pointers mean the field is not sent.
type AutocompleteRequest struct {
	Query               string
	LocationBias        *RectangularBounds
	LocationRestriction *RectangularBounds
	Origin              *Coordinate
	Countries           []string
	TypeFilter          TypeFilter
	SessionToken        SessionToken
}

// Prediction is one native autocomplete suggestion as returned by the vendor.
// PlaceTypes holds raw vendor type strings.
type Prediction struct {
	PlaceID        string
	FullText       string
	PrimaryText    string
	SecondaryText  string
	DistanceMeters *int64
	PlaceTypes     []string
}

// AutocompleteResponse is the native response list, in vendor order.
type AutocompleteResponse struct {
	Predictions []Prediction
}
