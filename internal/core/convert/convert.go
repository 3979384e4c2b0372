// Package convert maps between the neutral channel messages and the native
// Places model. Every function is pure: absent sub-fields degrade to "no
// value", unrecognized enumeration codes fail with domain.ErrInvalidArgument.
package convert

import (
	"strings"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
)

// ToCoordinate returns false unless both latitude and longitude are present.
func ToCoordinate(in *messages.LatLng) (domain.Coordinate, bool) {
	if in == nil || in.Latitude == nil || in.Longitude == nil {
		return domain.Coordinate{}, false
	}
	return domain.Coordinate{Lat: *in.Latitude, Lng: *in.Longitude}, true
}

// ToBounds returns false unless both corners convert.
func ToBounds(in *messages.LatLngBounds) (domain.RectangularBounds, bool) {
	if in == nil {
		return domain.RectangularBounds{}, false
	}
	sw, ok := ToCoordinate(in.Southwest)
	if !ok {
		return domain.RectangularBounds{}, false
	}
	ne, ok := ToCoordinate(in.Northeast)
	if !ok {
		return domain.RectangularBounds{}, false
	}
	return domain.RectangularBounds{Southwest: sw, Northeast: ne}, true
}

// ToCountryList stringifies every element; nil elements become "null".
func ToCountryList(in []*string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, c := range in {
		if c == nil {
			out[i] = "null"
			continue
		}
		out[i] = *c
	}
	return out
}

// ToTypeFilter maps a channel code to a filter selector.
func ToTypeFilter(code int64) (domain.TypeFilter, error) {
	f := domain.TypeFilter(code)
	if !f.Valid() {
		return domain.TypeFilterNone, domain.InvalidArgumentf("type filter %d", code)
	}
	return f, nil
}

// ToTypeFilterList converts every non-nil code. Nil in, nil out.
func ToTypeFilterList(in []*int64) ([]domain.TypeFilter, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]domain.TypeFilter, 0, len(in))
	for _, code := range in {
		if code == nil {
			continue
		}
		f, err := ToTypeFilter(*code)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ToSingleTypeFilter picks the first filter, since the vendor accepts one.
// Every code is still validated.
func ToSingleTypeFilter(in []*int64) (domain.TypeFilter, error) {
	filters, err := ToTypeFilterList(in)
	if err != nil {
		return domain.TypeFilterNone, err
	}
	if len(filters) == 0 {
		return domain.TypeFilterNone, nil
	}
	return filters[0], nil
}

// ToPlaceType maps a vendor type string to its channel code.
func ToPlaceType(native string) (domain.PlaceType, error) {
	t, ok := domain.PlaceTypeFromNative(native)
	if !ok {
		return 0, domain.InvalidArgumentf("place type %q", native)
	}
	return t, nil
}

// FromPlaceType maps a channel code back to the vendor type string.
func FromPlaceType(t domain.PlaceType) (string, error) {
	if !t.Valid() {
		return "", domain.InvalidArgumentf("place type code %d", int64(t))
	}
	return t.Native(), nil
}

// ToPlaceTypeList converts in order; one unknown type fails the list.
func ToPlaceTypeList(in []string) ([]*int64, error) {
	out := make([]*int64, len(in))
	for i, native := range in {
		t, err := ToPlaceType(native)
		if err != nil {
			return nil, err
		}
		out[i] = messages.Int64(int64(t))
	}
	return out, nil
}

// ToPrediction converts one native prediction.
func ToPrediction(p domain.Prediction) (*messages.AutocompletePrediction, error) {
	types, err := ToPlaceTypeList(p.PlaceTypes)
	if err != nil {
		return nil, err
	}
	out := &messages.AutocompletePrediction{
		FullText:      p.FullText,
		PlaceID:       p.PlaceID,
		PlaceTypes:    types,
		PrimaryText:   p.PrimaryText,
		SecondaryText: p.SecondaryText,
	}
	if p.DistanceMeters != nil {
		out.DistanceMeters = messages.Int64(*p.DistanceMeters)
	}
	return out, nil
}

// ToPredictionList maps the native response 1:1, preserving order.
func ToPredictionList(resp *domain.AutocompleteResponse) ([]*messages.AutocompletePrediction, error) {
	if resp == nil {
		return []*messages.AutocompletePrediction{}, nil
	}
	out := make([]*messages.AutocompletePrediction, len(resp.Predictions))
	for i, p := range resp.Predictions {
		converted, err := ToPrediction(p)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}

// ToAutocompleteRequest assembles the native request. Bias and restriction
// are mutually exclusive on the wire: when both convert, restriction wins.
func ToAutocompleteRequest(in messages.FindAutocompletePredictionsRequest, token domain.SessionToken) (domain.AutocompleteRequest, error) {
	filter, err := ToSingleTypeFilter(in.TypeFilter)
	if err != nil {
		return domain.AutocompleteRequest{}, err
	}

	req := domain.AutocompleteRequest{
		Query:        strings.TrimSpace(in.Query),
		Countries:    ToCountryList(in.Countries),
		TypeFilter:   filter,
		SessionToken: token,
	}
	if o, ok := ToCoordinate(in.Origin); ok {
		req.Origin = &o
	}
	if r, ok := ToBounds(in.LocationRestriction); ok {
		req.LocationRestriction = &r
	} else if b, ok := ToBounds(in.LocationBias); ok {
		req.LocationBias = &b
	}
	return req, nil
}
