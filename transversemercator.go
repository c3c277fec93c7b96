package utmcoord

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const nCoeffs = 8

// transverseMercator converts between geodetic coordinates and Transverse
// Mercator projection coordinates for a single central meridian. The
// Krüger-series coefficients depend only on the ellipsoid shape and are
// precomputed at construction.
type transverseMercator struct {
	eps        float64 // first eccentricity of the ellipsoid
	originLong float64 // central meridian in radians

	k0R4    float64 // scale factor times the meridional isoperimetric radius
	k0R4inv float64

	aCoeff [nCoeffs]float64 // rectifying to conformal series, forward
	bCoeff [nCoeffs]float64 // conformal to rectifying series, inverse
}

func newTransverseMercator(semiMajorAxis, flattening, centralMeridian float64) *transverseMercator {
	t := &transverseMercator{
		eps:        math.Sqrt(2*flattening - flattening*flattening),
		originLong: centralMeridian,
	}

	// Helmert's n, the third flattening (a - b)/(a + b).
	n := flattening / (2 - flattening)

	var r4oa float64
	t.aCoeff, t.bCoeff, r4oa = tmCoefficients(n)

	t.k0R4 = r4oa * scaleFactor * semiMajorAxis
	t.k0R4inv = 1 / t.k0R4
	return t
}

// fromGeodetic projects a geodetic position to easting and northing in
// meters. Northing is measured from the equator and is negative south of
// it; the caller applies the false northing convention.
func (t *transverseMercator) fromGeodetic(ll s2.LatLng) (easting, northing float64) {
	lat := ll.Lat.Radians()
	lambda := wrapRadians(ll.Lng.Radians() - t.originLong)

	sinPhi := math.Sin(lat)
	cosPhi := math.Cos(lat)
	sinLam := math.Sin(lambda)
	cosLam := math.Cos(lambda)

	// Geodetic latitude to conformal latitude. Only the sine and cosine
	// of the conformal latitude are needed.
	p := math.Exp(t.eps * math.Atanh(t.eps*sinPhi))
	part1 := (1 + sinPhi) / p
	part2 := (1 - sinPhi) * p
	cosChi := 2 * cosPhi / (part1 + part2)
	sinChi := (part1 - part2) / (part1 + part2)

	// Spherical transverse Mercator gives the first-plane coordinates.
	u := math.Atanh(cosChi * sinLam)
	v := math.Atan2(sinChi, cosChi*cosLam)

	x := u
	y := v
	for k := nCoeffs - 1; k >= 0; k-- {
		m := 2 * float64(k+1)
		x += t.aCoeff[k] * math.Sinh(m*u) * math.Cos(m*v)
		y += t.aCoeff[k] * math.Cosh(m*u) * math.Sin(m*v)
	}

	return t.k0R4*x + falseEasting, t.k0R4 * y
}

// toGeodetic inverts fromGeodetic. Northing must already have any false
// northing removed. The result is mathematically defined for all finite
// inputs, whether or not they correspond to a sensible grid position.
func (t *transverseMercator) toGeodetic(easting, northing float64) s2.LatLng {
	x := (easting - falseEasting) * t.k0R4inv
	y := northing * t.k0R4inv

	u := x
	v := y
	for k := nCoeffs - 1; k >= 0; k-- {
		m := 2 * float64(k+1)
		u += t.bCoeff[k] * math.Sinh(m*x) * math.Cos(m*y)
		v += t.bCoeff[k] * math.Cosh(m*x) * math.Sin(m*y)
	}

	lambda := math.Atan2(math.Sinh(u), math.Cos(v))
	sinChi := math.Sin(v) / math.Cosh(u)

	lat := geodeticLat(sinChi, t.eps)
	lon := wrapRadians(t.originLong + lambda)
	return s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lon)}
}

// geodeticLat recovers the geodetic latitude from the sine of the conformal
// latitude by fixed-point iteration.
func geodeticLat(sinChi, e float64) float64 {
	s := sinChi
	sOld := math.Inf(1)
	for i := 0; i < 30 && math.Abs(s-sOld) >= 1e-12; i++ {
		sOld = s
		p := math.Exp(e * math.Atanh(e*s))
		pSq := p * p
		s = ((1+sinChi)*pSq - (1 - sinChi)) /
			((1+sinChi)*pSq + (1 - sinChi))
	}
	return math.Asin(s)
}

// tmCoefficients generates the series coefficients for an ellipsoid with
// third flattening n: aCoeff carries rectifying latitude as a trig series
// in conformal latitude for the forward direction, bCoeff the reverse for
// the inverse, and r4oa is the ratio of the meridional isoperimetric
// radius R4 to the semi-major axis. Entry k of each array holds the series
// coefficient for the multiple 2(k+1).
func tmCoefficients(n float64) (aCoeff, bCoeff [nCoeffs]float64, r4oa float64) {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n
	n7 := n6 * n
	n8 := n7 * n
	n10 := n8 * n2

	aCoeff[0] = n/2 - 2*n2/3 + 5*n3/16 + 41*n4/180 - 127*n5/288 +
		7891*n6/37800 + 72161*n7/387072 - 18975107*n8/50803200
	aCoeff[1] = 13*n2/48 - 3*n3/5 + 557*n4/1440 + 281*n5/630 -
		1983433*n6/1935360 + 13769*n7/28800 + 148003883*n8/174182400
	aCoeff[2] = 61*n3/240 - 103*n4/140 + 15061*n5/26880 +
		167603*n6/181440 - 67102379*n7/29030400 + 79682431*n8/79833600
	aCoeff[3] = 49561*n4/161280 - 179*n5/168 + 6601661*n6/7257600 +
		97445*n7/49896 - 40176129013*n8/7664025600
	aCoeff[4] = 34729*n5/80640 - 3418889*n6/1995840 +
		14644087*n7/9123840 + 2605413599*n8/622702080
	aCoeff[5] = 212378941*n6/319334400 - 30705481*n7/10378368 +
		175214326799*n8/58118860800
	aCoeff[6] = 1522256789*n7/1383782400 - 16759934899*n8/3113510400
	aCoeff[7] = 1424729850961 * n8 / 743921418240

	bCoeff[0] = -n/2 + 2*n2/3 - 37*n3/96 + n4/360 + 81*n5/512 -
		96199*n6/604800 + 5406467*n7/38707200 - 7944359*n8/67737600
	bCoeff[1] = -n2/48 - n3/15 + 437*n4/1440 - 46*n5/105 +
		1118711*n6/3870720 - 51841*n7/1209600 - 24749483*n8/348364800
	bCoeff[2] = -17*n3/480 + 37*n4/840 + 209*n5/4480 - 5569*n6/90720 -
		9261899*n7/58060800 + 6457463*n8/17740800
	bCoeff[3] = -4397*n4/161280 + 11*n5/504 + 830251*n6/7257600 -
		466511*n7/2494800 - 324154477*n8/7664025600
	bCoeff[4] = -4583*n5/161280 + 108847*n6/3991680 +
		8005831*n7/63866880 - 22894433*n8/124540416
	bCoeff[5] = -20648693*n6/638668800 + 16363163*n7/518918400 +
		2204645983*n8/12915302400
	bCoeff[6] = -219941297*n7/5535129600 + 497323811*n8/12454041600
	bCoeff[7] = -191773887257 * n8 / 3719607091200

	r4oa = (1 + n2/4 + n4/64 + n6/256 + 25*n8/16384 + 49*n10/65536) / (1 + n)
	return aCoeff, bCoeff, r4oa
}

func wrapRadians(a float64) float64 {
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
