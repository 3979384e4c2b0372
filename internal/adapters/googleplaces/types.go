package googleplaces

// autocompleteResponse is the Places Autocomplete web service response.
type autocompleteResponse struct {
	Predictions  []prediction `json:"predictions"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

type prediction struct {
	Description          string               `json:"description"`
	DistanceMeters       *int64               `json:"distance_meters,omitempty"`
	PlaceID              string               `json:"place_id"`
	StructuredFormatting structuredFormatting `json:"structured_formatting"`
	Types                []string             `json:"types"`
}

type structuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

// Vendor statuses that count as success.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)
