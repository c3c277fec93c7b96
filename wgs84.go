package utmcoord

import "fmt"

const wgs84SemiMajorAxis = 6378137.0
const wgs84Flattening = 1 / 298.257223563

// WGS84 is the package-level converter for the WGS84 reference ellipsoid.
var WGS84 *Converter

func init() {
	var err error
	WGS84, err = NewConverter(wgs84SemiMajorAxis, wgs84Flattening)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM converter: %s", err))
	}
}

// LatLonToUTM converts a geodetic position in degrees to a UTM grid
// reference on the WGS84 ellipsoid. See Converter.FromLatLon.
func LatLonToUTM(lat, lon float64) (zone int, letter byte, easting, northing float64) {
	return WGS84.FromLatLon(lat, lon)
}

// UTMToLatLon converts a UTM grid reference to a geodetic position in
// degrees on the WGS84 ellipsoid. See Converter.ToLatLon.
func UTMToLatLon(zone int, letter byte, easting, northing float64) (lat, lon float64) {
	return WGS84.ToLatLon(zone, letter, easting, northing)
}
