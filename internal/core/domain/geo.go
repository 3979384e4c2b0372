package domain

import "strconv"

// Coordinate is a WGS 84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the vendor's decimal "lat,lng" form in the shortest
// digits that parse back to the same floats.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// RectangularBounds is a bias or restriction region given by two opposite corners.
type RectangularBounds struct {
	Southwest Coordinate `json:"southwest"`
	Northeast Coordinate `json:"northeast"`
}

// Rectangle renders the vendor's "rectangle:south,west|north,east" form.
func (b RectangularBounds) Rectangle() string {
	return "rectangle:" + b.Southwest.String() + "|" + b.Northeast.String()
}
