package domain

// TypeFilter restricts predictions to one coarse category group.
// The native Places endpoint accepts at most one of these per request.
type TypeFilter int64

const (
	TypeFilterAddress TypeFilter = iota
	TypeFilterCities
	TypeFilterEstablishment
	TypeFilterGeocode
	TypeFilterRegions

	// TypeFilterNone means "no filter" and is never sent on the wire.
	TypeFilterNone TypeFilter = -1
)

var typeFilters = [...]struct {
	name   string
	native string
}{
	TypeFilterAddress:       {"ADDRESS", "address"},
	TypeFilterCities:        {"CITIES", "(cities)"},
	TypeFilterEstablishment: {"ESTABLISHMENT", "establishment"},
	TypeFilterGeocode:       {"GEOCODE", "geocode"},
	TypeFilterRegions:       {"REGIONS", "(regions)"},
}

// TypeFilters returns the selectable filters in code order.
func TypeFilters() []TypeFilter {
	return []TypeFilter{
		TypeFilterAddress,
		TypeFilterCities,
		TypeFilterEstablishment,
		TypeFilterGeocode,
		TypeFilterRegions,
	}
}

// Valid reports whether f is one of the selectable filters.
func (f TypeFilter) Valid() bool {
	return f >= 0 && int(f) < len(typeFilters)
}

// Name returns the symbolic name, or "NO_FILTER".
func (f TypeFilter) Name() string {
	if !f.Valid() {
		return "NO_FILTER"
	}
	return typeFilters[f].name
}

// Native returns the vendor "types" parameter value, or "" for no filter.
func (f TypeFilter) Native() string {
	if !f.Valid() {
		return ""
	}
	return typeFilters[f].native
}

func (f TypeFilter) String() string { return f.Name() }
