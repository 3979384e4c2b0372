package messages

import (
	"fmt"
	"math"
)

// The list forms mirror how generated channel codecs flatten messages: each
// message is a positional list of its fields, nested messages recursively.

// ToList flattens the request into positional form.
func (r *FindAutocompletePredictionsRequest) ToList() []any {
	countries := []any(nil)
	if r.Countries != nil {
		countries = make([]any, len(r.Countries))
		for i, c := range r.Countries {
			if c != nil {
				countries[i] = *c
			}
		}
	}
	filters := []any(nil)
	if r.TypeFilter != nil {
		filters = make([]any, len(r.TypeFilter))
		for i, f := range r.TypeFilter {
			if f != nil {
				filters[i] = float64(*f)
			}
		}
	}
	var refresh any
	if r.RefreshToken != nil {
		refresh = *r.RefreshToken
	}
	return []any{
		r.Query,
		r.LocationBias.toList(),
		r.LocationRestriction.toList(),
		r.Origin.toList(),
		listOrNil(countries),
		listOrNil(filters),
		refresh,
	}
}

// FindAutocompletePredictionsRequestFromList is the inverse of ToList.
func FindAutocompletePredictionsRequestFromList(l []any) (*FindAutocompletePredictionsRequest, error) {
	if len(l) != 7 {
		return nil, fmt.Errorf("request list: want 7 fields, got %d", len(l))
	}
	r := &FindAutocompletePredictionsRequest{}
	var ok bool
	if r.Query, ok = l[0].(string); !ok {
		return nil, fmt.Errorf("request list: query must be a string")
	}
	var err error
	if r.LocationBias, err = boundsFromList(l[1]); err != nil {
		return nil, fmt.Errorf("locationBias: %w", err)
	}
	if r.LocationRestriction, err = boundsFromList(l[2]); err != nil {
		return nil, fmt.Errorf("locationRestriction: %w", err)
	}
	if r.Origin, err = latLngFromList(l[3]); err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	if l[4] != nil {
		items, ok := l[4].([]any)
		if !ok {
			return nil, fmt.Errorf("countries must be a list")
		}
		r.Countries = make([]*string, len(items))
		for i, it := range items {
			if it == nil {
				continue
			}
			s, ok := it.(string)
			if !ok {
				return nil, fmt.Errorf("countries[%d] must be a string", i)
			}
			r.Countries[i] = String(s)
		}
	}
	if l[5] != nil {
		items, ok := l[5].([]any)
		if !ok {
			return nil, fmt.Errorf("typeFilter must be a list")
		}
		r.TypeFilter = make([]*int64, len(items))
		for i, it := range items {
			if it == nil {
				continue
			}
			n, ok := integer(it)
			if !ok {
				return nil, fmt.Errorf("typeFilter[%d] must be an integer", i)
			}
			r.TypeFilter[i] = Int64(n)
		}
	}
	if l[6] != nil {
		b, ok := l[6].(bool)
		if !ok {
			return nil, fmt.Errorf("refreshToken must be a bool")
		}
		r.RefreshToken = Bool(b)
	}
	return r, nil
}

// ToList flattens the prediction into positional form.
func (p *AutocompletePrediction) ToList() []any {
	var distance any
	if p.DistanceMeters != nil {
		distance = float64(*p.DistanceMeters)
	}
	types := make([]any, len(p.PlaceTypes))
	for i, t := range p.PlaceTypes {
		if t != nil {
			types[i] = float64(*t)
		}
	}
	return []any{distance, p.FullText, p.PlaceID, types, p.PrimaryText, p.SecondaryText}
}

// AutocompletePredictionFromList is the inverse of ToList.
func AutocompletePredictionFromList(l []any) (*AutocompletePrediction, error) {
	if len(l) != 6 {
		return nil, fmt.Errorf("prediction list: want 6 fields, got %d", len(l))
	}
	p := &AutocompletePrediction{}
	if l[0] != nil {
		n, ok := integer(l[0])
		if !ok {
			return nil, fmt.Errorf("distanceMeters must be an integer")
		}
		p.DistanceMeters = Int64(n)
	}
	strs := []*string{&p.FullText, &p.PlaceID}
	for i, dst := range strs {
		s, ok := l[1+i].(string)
		if !ok {
			return nil, fmt.Errorf("prediction field %d must be a string", 1+i)
		}
		*dst = s
	}
	if l[3] != nil {
		items, ok := l[3].([]any)
		if !ok {
			return nil, fmt.Errorf("placeTypes must be a list")
		}
		p.PlaceTypes = make([]*int64, len(items))
		for i, it := range items {
			if it == nil {
				continue
			}
			n, ok := integer(it)
			if !ok {
				return nil, fmt.Errorf("placeTypes[%d] must be an integer", i)
			}
			p.PlaceTypes[i] = Int64(n)
		}
	}
	var ok bool
	if p.PrimaryText, ok = l[4].(string); !ok {
		return nil, fmt.Errorf("primaryText must be a string")
	}
	if p.SecondaryText, ok = l[5].(string); !ok {
		return nil, fmt.Errorf("secondaryText must be a string")
	}
	return p, nil
}

func (b *LatLngBounds) toList() any {
	if b == nil {
		return nil
	}
	return []any{b.Southwest.toList(), b.Northeast.toList()}
}

func (c *LatLng) toList() any {
	if c == nil {
		return nil
	}
	var lat, lng any
	if c.Latitude != nil {
		lat = *c.Latitude
	}
	if c.Longitude != nil {
		lng = *c.Longitude
	}
	return []any{lat, lng}
}

func boundsFromList(v any) (*LatLngBounds, error) {
	if v == nil {
		return nil, nil
	}
	l, ok := v.([]any)
	if !ok || len(l) != 2 {
		return nil, fmt.Errorf("bounds must be a list of 2")
	}
	sw, err := latLngFromList(l[0])
	if err != nil {
		return nil, err
	}
	ne, err := latLngFromList(l[1])
	if err != nil {
		return nil, err
	}
	return &LatLngBounds{Southwest: sw, Northeast: ne}, nil
}

func latLngFromList(v any) (*LatLng, error) {
	if v == nil {
		return nil, nil
	}
	l, ok := v.([]any)
	if !ok || len(l) != 2 {
		return nil, fmt.Errorf("latlng must be a list of 2")
	}
	c := &LatLng{}
	if f, ok := l[0].(float64); ok {
		c.Latitude = Float64(f)
	}
	if f, ok := l[1].(float64); ok {
		c.Longitude = Float64(f)
	}
	return c, nil
}

// integer accepts list numbers (always float64) that hold a whole int64 value.
func integer(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func listOrNil(l []any) any {
	if l == nil {
		return nil
	}
	return l
}
