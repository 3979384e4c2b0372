package telemetry

// Span attribute keys shared by the autocomplete path.
const (
	AttrQueryLength  = "places.query_length"
	AttrTypeFilter   = "places.type_filter"
	AttrRefreshToken = "places.refresh_token"
	AttrResultCount  = "places.result_count"
	AttrVendorStatus = "places.vendor_status"
	AttrTransport    = "channel.transport"
)
