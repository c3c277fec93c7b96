package utmcoord

import (
	"errors"
	"math"

	"github.com/golang/geo/s2"
)

const scaleFactor = 0.9996
const falseEasting = 500000.0

// falseNorthingSouth is the false northing applied to southern-hemisphere
// coordinates so that northing stays positive across a zone.
const falseNorthingSouth = 10000000.0

// OutsideGridLetter is the band letter reported for latitudes strictly
// outside the range covered by the UTM grid (80S to 84N).
const OutsideGridLetter = byte('*')

// Hemisphere identifies the half of the grid a northing is measured in.
type Hemisphere byte

const (
	HemisphereNorth Hemisphere = 'N'
	HemisphereSouth Hemisphere = 'S'
)

type latitudeBand struct {
	letter byte
	south  float64 // lower latitude of the band in degrees, inclusive
	north  float64 // upper latitude of the band in degrees, exclusive
}

// The 8 degree latitude bands C through X, skipping I and O. The X band is
// stretched northward to 84 degrees.
var latitudeBands = [20]latitudeBand{
	{'C', -80, -72},
	{'D', -72, -64},
	{'E', -64, -56},
	{'F', -56, -48},
	{'G', -48, -40},
	{'H', -40, -32},
	{'J', -32, -24},
	{'K', -24, -16},
	{'L', -16, -8},
	{'M', -8, 0},
	{'N', 0, 8},
	{'P', 8, 16},
	{'Q', 16, 24},
	{'R', 24, 32},
	{'S', 32, 40},
	{'T', 40, 48},
	{'U', 48, 56},
	{'V', 56, 64},
	{'W', 64, 72},
	{'X', 72, 84},
}

// Converter converts between geodetic and UTM coordinates on a single
// reference ellipsoid. The per-zone projection engines are built once at
// construction, so a Converter may be shared by concurrent readers.
type Converter struct {
	semiMajorAxis float64
	flattening    float64
	zones         [61]*transverseMercator // indexed by zone number, entry 0 unused
}

// NewConverter constructs a Converter for the ellipsoid given by its
// semi-major axis in meters and its flattening.
func NewConverter(semiMajorAxis, flattening float64) (*Converter, error) {
	if semiMajorAxis <= 0 {
		return nil, errors.New("semi-major axis must be greater than zero")
	}
	invF := 1 / flattening
	if invF < 250 || invF > 350 {
		return nil, errors.New("inverse flattening must be between 250 and 350")
	}

	c := &Converter{
		semiMajorAxis: semiMajorAxis,
		flattening:    flattening,
	}
	for zone := 1; zone <= 60; zone++ {
		centralMeridian := float64(6*zone-183) * (math.Pi / 180)
		c.zones[zone] = newTransverseMercator(semiMajorAxis, flattening, centralMeridian)
	}
	return c, nil
}

// FromLatLon converts a geodetic position in degrees to a UTM grid
// reference. A latitude strictly outside [-80, 84] yields the
// OutsideGridLetter sentinel; easting and northing are still computed by
// continuing the projection series for best-effort continuity, but carry
// no accuracy guarantee there and must not be treated as a valid grid
// reference.
//
// Inputs are not validated: a latitude or longitude outside its nominal
// range degrades silently to whatever the projection series produces.
func (c *Converter) FromLatLon(lat, lon float64) (zone int, letter byte, easting, northing float64) {
	zone = ZoneNumber(lon)
	letter = LatBandLetter(lat)
	easting, northing = c.zones[zone].fromGeodetic(s2.LatLngFromDegrees(lat, lon))
	if lat < 0 {
		northing += falseNorthingSouth
	}
	return zone, letter, easting, northing
}

// ToLatLon converts a UTM grid reference back to a geodetic position in
// degrees. The hemisphere comes from the band letter when it is one of
// C through X; for any other letter, including OutsideGridLetter, a
// northing of 10,000,000 m or more is taken as a southern-hemisphere
// offset. Zone numbers outside [1, 60] are clamped. Easting and northing
// are not re-validated against the zone's nominal coverage, so any finite
// pair produces a result.
func (c *Converter) ToLatLon(zone int, letter byte, easting, northing float64) (lat, lon float64) {
	if zone < 1 {
		zone = 1
	} else if zone > 60 {
		zone = 60
	}
	if ImpliedHemisphere(letter, northing) == HemisphereSouth {
		northing -= falseNorthingSouth
	}
	ll := c.zones[zone].toGeodetic(easting, northing)
	return ll.Lat.Degrees(), ll.Lng.Degrees()
}

// ZoneNumber returns the UTM zone number for a longitude in degrees,
// clamped to [1, 60].
func ZoneNumber(lon float64) int {
	zone := int(math.Floor((lon+180)/6)) + 1
	if zone < 1 {
		zone = 1
	} else if zone > 60 {
		zone = 60
	}
	return zone
}

// LatBandLetter returns the UTM band letter for a latitude in degrees, or
// OutsideGridLetter for latitudes strictly outside [-80, 84].
func LatBandLetter(lat float64) byte {
	if lat < -80 || lat > 84 {
		return OutsideGridLetter
	}
	for _, b := range latitudeBands {
		if lat < b.north {
			return b.letter
		}
	}
	return 'X' // lat == 84
}

// ImpliedHemisphere resolves the hemisphere of a UTM tuple. Band letters N
// through X are northern and C through M southern; for any other letter
// the northing magnitude convention decides, treating values of at least
// 10,000,000 m as southern-hemisphere offsets.
func ImpliedHemisphere(letter byte, northing float64) Hemisphere {
	if isBandLetter(letter) {
		if letter < 'N' {
			return HemisphereSouth
		}
		return HemisphereNorth
	}
	if northing >= falseNorthingSouth {
		return HemisphereSouth
	}
	return HemisphereNorth
}

func isBandLetter(letter byte) bool {
	return letter >= 'C' && letter <= 'X' && letter != 'I' && letter != 'O'
}
