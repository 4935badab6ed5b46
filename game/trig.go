package game

import (
	"math"

	"github.com/chewxy/math32"
)

// sinTable holds 65536 precomputed sine samples. Lookups into a table built once from float64 math give the
// same answer on every platform, which the hardware or assembly backed trig functions do not guarantee.
var sinTable [65536]float32

// radToIndex scales radians to table steps.
const radToIndex = float32(10430.378)

func init() {
	for i := range sinTable {
		sinTable[i] = float32(math.Sin(float64(i) * math.Pi * 2 / 65536))
	}
}

// Sin returns the table sine of the given angle in radians.
func Sin(val float32) float32 {
	return sinTable[tableIndex(float32(val*radToIndex))]
}

// Cos returns the table cosine of the given angle in radians.
func Cos(val float32) float32 {
	return sinTable[tableIndex(float32(val*radToIndex)+16384.0)]
}

// tableIndex wraps a scaled angle into the table. The angle is reduced to less than one table turn before
// the integer conversion, which is implementation specific for values out of range. Angles that are not
// finite map to index zero.
func tableIndex(scaled float32) uint16 {
	if !Finite(scaled) {
		return 0
	}
	return uint16(int64(math32.Mod(scaled, 65536)) & 65535)
}

// DegToRad converts degrees to radians in single precision.
func DegToRad(deg float32) float32 {
	return float32(deg * (math.Pi / 180.0))
}
