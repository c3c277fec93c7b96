package utmcoord_test

import (
	"fmt"

	"github.com/tlowell/utmcoord"
)

func ExampleLatLonToUTM() {
	zone, letter, easting, northing := utmcoord.LatLonToUTM(0, 3)
	fmt.Printf("%d%c %.0f %.0f\n", zone, letter, easting, northing)
	// Output: 31N 500000 0
}

func ExampleGeodeticCoord_CoordString() {
	c := utmcoord.NewFromUTM(8, 'Q', 512345.6, 1234567.8)
	fmt.Println(c.CoordString())
	// Output: 8Q 512346 1234568
}
