package utmcoord

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// planarCoord is a foreign Coord implementation used to exercise
// mixed-type assignment.
type planarCoord struct {
	lat, lon float64
}

func (p planarCoord) LatLon() (float64, float64) {
	return p.lat, p.lon
}

func (p planarCoord) UTM() (int, byte, float64, float64) {
	return LatLonToUTM(p.lat, p.lon)
}

func TestLazyEvaluationAfterSetLatLon(t *testing.T) {
	c := NewFromLatLon(37.7749, -122.4194)
	assert.False(t, c.latLonStale)
	assert.True(t, c.utmStale)

	lat, lon := c.LatLon()
	assert.Equal(t, 37.7749, lat)
	assert.Equal(t, -122.4194, lon)
	assert.True(t, c.utmStale, "reading the current representation must not project")

	zone, letter, _, _ := c.UTM()
	assert.Equal(t, 10, zone)
	assert.Equal(t, byte('S'), letter)
	assert.False(t, c.utmStale)
	assert.False(t, c.latLonStale)
}

func TestLazyEvaluationAfterSetUTM(t *testing.T) {
	zone, letter, easting, northing := LatLonToUTM(37.7749, -122.4194)
	c := NewFromUTM(zone, letter, easting, northing)
	assert.False(t, c.utmStale)
	assert.True(t, c.latLonStale)

	lat, lon := c.LatLon()
	assert.False(t, c.latLonStale)
	assert.InDelta(t, 37.7749, lat, 1e-5)
	assert.InDelta(t, -122.4194, lon, 1e-5)
}

func TestStaleFlagsNeverBothSet(t *testing.T) {
	c := NewFromLatLon(10, 20)
	assert.False(t, c.latLonStale && c.utmStale)
	c.UTM()
	assert.False(t, c.latLonStale && c.utmStale)
	c.SetUTM(33, 'P', 400000, 1000000)
	assert.False(t, c.latLonStale && c.utmStale)
	c.LatLon()
	assert.False(t, c.latLonStale && c.utmStale)
	c.SetLatLon(-5, -5)
	assert.False(t, c.latLonStale && c.utmStale)
}

func TestUTMIdempotent(t *testing.T) {
	c := NewFromLatLon(48.8584, 2.2945)
	z1, l1, e1, n1 := c.UTM()
	z2, l2, e2, n2 := c.UTM()
	assert.Equal(t, z1, z2)
	assert.Equal(t, l1, l2)
	assert.Equal(t, e1, e2)
	assert.Equal(t, n1, n2)
	assert.False(t, c.utmStale)
	assert.False(t, c.latLonStale)
}

func TestSetLatLonDoesNotProject(t *testing.T) {
	c := NewFromUTM(1, 'N', math.NaN(), math.NaN())
	// Writing the geographic side must discard the poisoned UTM side
	// without ever converting it.
	c.SetLatLon(12.5, -33.25)
	lat, lon := c.LatLon()
	assert.Equal(t, 12.5, lat)
	assert.Equal(t, -33.25, lon)
	zone, letter, easting, northing := c.UTM()
	assert.Equal(t, 25, zone)
	assert.Equal(t, byte('P'), letter)
	assert.False(t, math.IsNaN(easting))
	assert.False(t, math.IsNaN(northing))
}

func TestRoundTripThroughFreshInstance(t *testing.T) {
	for _, tc := range []struct{ lat, lon float64 }{
		{-79.9, -179.9},
		{-33.918, 18.423},
		{0.05, 0.05},
		{40.7128, -74.006},
		{83.9, 179.9},
	} {
		a := NewFromLatLon(tc.lat, tc.lon)
		b := NewFromUTM(a.UTM())
		lat, lon := b.LatLon()
		assert.InDelta(t, tc.lat, lat, 1e-5)
		assert.InDelta(t, tc.lon, lon, 1e-5)
	}
}

func TestCopyFromClonesState(t *testing.T) {
	a := NewFromLatLon(51.5, -0.12)
	var b GeodeticCoord
	b.CopyFrom(a)
	assert.True(t, b.utmStale)
	assert.False(t, b.latLonStale)
	assert.Equal(t, *a, b)

	a.UTM() // both representations current now
	b.CopyFrom(a)
	assert.False(t, b.utmStale)
	assert.False(t, b.latLonStale)
	assert.Equal(t, *a, b)
}

func TestCopyCoordSameType(t *testing.T) {
	a := NewFromUTM(18, 'T', 583960, 4507523)
	var b GeodeticCoord
	b.CopyCoord(a)
	assert.Equal(t, *a, b)
	assert.True(t, b.latLonStale, "verbatim clone must not force a projection")
}

func TestCopyCoordForeignType(t *testing.T) {
	var c GeodeticCoord
	c.CopyCoord(planarCoord{lat: -12.5, lon: 130.8})
	assert.False(t, c.latLonStale)
	assert.True(t, c.utmStale, "a foreign coordinate contributes its geographic side only")
	lat, lon := c.LatLon()
	assert.Equal(t, -12.5, lat)
	assert.Equal(t, 130.8, lon)
}

func TestEqual(t *testing.T) {
	a := NewFromLatLon(10, 20)
	b := NewFromLatLon(10, 20)
	assert.True(t, a.Equal(b))

	b.SetLatLon(10, 20.0001)
	assert.False(t, a.Equal(b))

	u := NewFromUTM(31, 'N', 500000, 0)
	v := NewFromUTM(31, 'N', 500000, 0)
	assert.True(t, u.Equal(v))
	v.SetUTM(31, 'N', 500000, 1)
	assert.False(t, u.Equal(v))
}

func TestIsOutsideGrid(t *testing.T) {
	c := NewFromLatLon(84.5, 0)
	assert.True(t, c.IsOutsideGrid())
	_, letter := c.Zone()
	assert.Equal(t, OutsideGridLetter, letter)

	c.SetLatLon(83.9, 0)
	assert.False(t, c.IsOutsideGrid())
	_, letter = c.Zone()
	assert.Equal(t, byte('X'), letter)

	c.SetLatLon(-80.1, 0)
	assert.True(t, c.IsOutsideGrid())
}

func TestHemisphere(t *testing.T) {
	assert.Equal(t, HemisphereNorth, NewFromLatLon(45, 7).Hemisphere())
	assert.Equal(t, HemisphereSouth, NewFromLatLon(-45, 7).Hemisphere())
	assert.Equal(t, HemisphereSouth, NewFromUTM(31, '*', 500000, 10000000).Hemisphere())
}

func TestXYAndZoneAccessors(t *testing.T) {
	c := NewFromUTM(8, 'Q', 512345.6, 1234567.8)
	x, y := c.XY()
	assert.Equal(t, 512345.6, x)
	assert.Equal(t, 1234567.8, y)
	zone, letter := c.Zone()
	assert.Equal(t, 8, zone)
	assert.Equal(t, byte('Q'), letter)
}

func TestCoordStringLayout(t *testing.T) {
	c := NewFromUTM(8, 'Q', 512345.6, 1234567.8)
	s := c.CoordString()

	assert.Len(t, s, CoordStringNorthingPos+CoordStringNorthingLen)
	zone := s[CoordStringZonePos : CoordStringZonePos+CoordStringZoneLen]
	easting := s[CoordStringEastingPos : CoordStringEastingPos+CoordStringEastingLen]
	northing := s[CoordStringNorthingPos : CoordStringNorthingPos+CoordStringNorthingLen]

	assert.Equal(t, "8Q", strings.TrimSpace(zone))
	assert.Equal(t, "512346", strings.TrimSpace(easting))
	assert.Equal(t, "1234568", strings.TrimSpace(northing))
	assert.Equal(t, s, c.String())
}

func TestCoordStringOutsideGrid(t *testing.T) {
	c := NewFromLatLon(85, -123)
	s := c.CoordString()
	zone := strings.TrimSpace(s[CoordStringZonePos : CoordStringZonePos+CoordStringZoneLen])
	assert.Equal(t, "10*", zone)
}

func TestExplicitConverter(t *testing.T) {
	conv, err := NewConverter(6378388, 1/297.0)
	assert.NoError(t, err)

	a := NewFromLatLonOn(conv, 52.0, 13.4)
	b := NewFromLatLon(52.0, 13.4)
	_, _, _, nA := a.UTM()
	_, _, _, nB := b.UTM()
	assert.NotEqual(t, nA, nB, "different ellipsoids must project differently")

	zone, letter, easting, northing := a.UTM()
	back := NewFromUTMOn(conv, zone, letter, easting, northing)
	lat, lon := back.LatLon()
	assert.InDelta(t, 52.0, lat, 1e-5)
	assert.InDelta(t, 13.4, lon, 1e-5)
}
