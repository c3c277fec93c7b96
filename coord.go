// Package utmcoord represents geographic positions interchangeably as
// latitude/longitude pairs and Universal Transverse Mercator grid
// references, converting lazily between the two representations.
package utmcoord

// Coord is implemented by coordinate types that can report a position in
// both geographic and UTM terms.
type Coord interface {
	// LatLon returns the position as latitude and longitude in degrees.
	LatLon() (lat, lon float64)
	// UTM returns the position as a UTM grid reference.
	UTM() (zone int, letter byte, easting, northing float64)
}
