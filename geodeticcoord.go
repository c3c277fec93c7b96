package utmcoord

import "fmt"

// Byte offsets and widths of the fields written by CoordString. They are a
// frozen layout contract: parsers extract the fields positionally.
const (
	CoordStringZonePos     = 0
	CoordStringZoneLen     = 3
	CoordStringEastingPos  = 4
	CoordStringEastingLen  = 6
	CoordStringNorthingPos = 11
	CoordStringNorthingLen = 7
)

// GeodeticCoord is a single geographic position held in both geographic
// (latitude/longitude) and projected (UTM) form.
//
// Conversion between the two representations is deferred until one is
// actually read: writing one representation only marks the other stale,
// and the first read of a stale representation projects it from the
// authoritative one and caches the result. At least one representation is
// always current, and a read never recomputes more than once per write.
//
// Reads may mutate the cache, so a GeodeticCoord is not safe for
// concurrent use; callers sharing an instance across goroutines must
// serialize all access to it.
type GeodeticCoord struct {
	conv *Converter

	lat float64 // degrees
	lon float64 // degrees

	zone     int
	letter   byte
	easting  float64 // meters
	northing float64 // meters

	latLonStale bool
	utmStale    bool
}

// NewFromLatLon returns a coordinate whose geographic representation is
// authoritative, projected on the WGS84 ellipsoid when first read as UTM.
func NewFromLatLon(lat, lon float64) *GeodeticCoord {
	return NewFromLatLonOn(WGS84, lat, lon)
}

// NewFromLatLonOn is NewFromLatLon with an explicit converter.
func NewFromLatLonOn(conv *Converter, lat, lon float64) *GeodeticCoord {
	c := &GeodeticCoord{conv: conv}
	c.SetLatLon(lat, lon)
	return c
}

// NewFromUTM returns a coordinate whose UTM representation is
// authoritative, inverted on the WGS84 ellipsoid when first read
// geographically.
func NewFromUTM(zone int, letter byte, easting, northing float64) *GeodeticCoord {
	return NewFromUTMOn(WGS84, zone, letter, easting, northing)
}

// NewFromUTMOn is NewFromUTM with an explicit converter.
func NewFromUTMOn(conv *Converter, zone int, letter byte, easting, northing float64) *GeodeticCoord {
	c := &GeodeticCoord{conv: conv}
	c.SetUTM(zone, letter, easting, northing)
	return c
}

// NewFromCoord returns a coordinate assigned from src with CopyCoord
// semantics.
func NewFromCoord(src Coord) *GeodeticCoord {
	c := &GeodeticCoord{}
	c.CopyCoord(src)
	return c
}

func (c *GeodeticCoord) converter() *Converter {
	if c.conv == nil {
		return WGS84
	}
	return c.conv
}

// SetLatLon stores a geographic position and marks the UTM representation
// stale. No projection happens until the UTM side is read. The values are
// not validated; positions outside the nominal latitude/longitude ranges
// degrade silently when projected.
func (c *GeodeticCoord) SetLatLon(lat, lon float64) {
	c.lat = lat
	c.lon = lon
	c.latLonStale = false
	c.utmStale = true
}

// SetUTM stores a UTM grid reference and marks the geographic
// representation stale. No conversion happens until the geographic side is
// read.
func (c *GeodeticCoord) SetUTM(zone int, letter byte, easting, northing float64) {
	c.zone = zone
	c.letter = letter
	c.easting = easting
	c.northing = northing
	c.utmStale = false
	c.latLonStale = true
}

// LatLon returns the geographic representation, inverting the UTM
// representation first if it is stale. Repeated calls with no intervening
// write return the cached values.
func (c *GeodeticCoord) LatLon() (lat, lon float64) {
	if c.latLonStale {
		c.lat, c.lon = c.converter().ToLatLon(c.zone, c.letter, c.easting, c.northing)
		c.latLonStale = false
	}
	return c.lat, c.lon
}

// UTM returns the projected representation, projecting the geographic
// representation first if it is stale. Repeated calls with no intervening
// write return the cached values.
func (c *GeodeticCoord) UTM() (zone int, letter byte, easting, northing float64) {
	if c.utmStale {
		c.zone, c.letter, c.easting, c.northing = c.converter().FromLatLon(c.lat, c.lon)
		c.utmStale = false
	}
	return c.zone, c.letter, c.easting, c.northing
}

// Zone returns the UTM zone number and band letter.
func (c *GeodeticCoord) Zone() (zone int, letter byte) {
	zone, letter, _, _ = c.UTM()
	return zone, letter
}

// XY returns the projected position as a planar pair: easting as x,
// northing as y.
func (c *GeodeticCoord) XY() (x, y float64) {
	_, _, x, y = c.UTM()
	return x, y
}

// Hemisphere reports which hemisphere the UTM representation is measured
// in, forcing its evaluation if stale.
func (c *GeodeticCoord) Hemisphere() Hemisphere {
	_, letter, _, northing := c.UTM()
	return ImpliedHemisphere(letter, northing)
}

// IsOutsideGrid reports whether the position falls outside the latitude
// range covered by the UTM band letters, forcing UTM evaluation if stale.
func (c *GeodeticCoord) IsOutsideGrid() bool {
	_, letter, _, _ := c.UTM()
	return letter == OutsideGridLetter
}

// CopyFrom clones the exact state of other, including which representation
// is authoritative. No projection is forced.
func (c *GeodeticCoord) CopyFrom(other *GeodeticCoord) {
	*c = *other
}

// CopyCoord assigns from an arbitrary coordinate type. A *GeodeticCoord
// source is cloned verbatim, stale flags included; any other
// implementation contributes its geographic representation and leaves the
// UTM side to be projected on demand.
func (c *GeodeticCoord) CopyCoord(src Coord) {
	switch src := src.(type) {
	case *GeodeticCoord:
		c.CopyFrom(src)
	default:
		c.SetLatLon(src.LatLon())
	}
}

// Equal reports whether the two coordinates hold identical authoritative
// fields. Coordinates authoritative in different representations are
// compared geographically, which may force a projection; the comparison is
// exact, so values that merely round-trip to within projection error are
// not equal.
func (c *GeodeticCoord) Equal(other *GeodeticCoord) bool {
	if !c.latLonStale && !other.latLonStale {
		return c.lat == other.lat && c.lon == other.lon
	}
	if !c.utmStale && !other.utmStale {
		return c.zone == other.zone && c.letter == other.letter &&
			c.easting == other.easting && c.northing == other.northing
	}
	aLat, aLon := c.LatLon()
	bLat, bLon := other.LatLon()
	return aLat == bLat && aLon == bLon
}

// CoordString renders the UTM representation as a fixed-width record: zone
// number and band letter at offset 0 in 3 columns, whole-meter easting at
// offset 4 in 6 columns, and whole-meter northing at offset 11 in 7
// columns, each right-aligned. The layout constants above describe it.
// Forces UTM evaluation if stale.
func (c *GeodeticCoord) CoordString() string {
	zone, letter, easting, northing := c.UTM()
	return fmt.Sprintf("%2d%c %6.0f %7.0f", zone, letter, easting, northing)
}

// String implements fmt.Stringer as an alias for CoordString.
func (c *GeodeticCoord) String() string {
	return c.CoordString()
}
