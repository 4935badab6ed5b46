// Package quantize snaps positions to a fixed-point grid. Two replicas that compute the same motion may
// still disagree in the last bits of a float; snapping both results to the grid after every tick removes
// that drift before it can accumulate.
//
// The grid has Resolution steps per world unit. Resolution is a power of two, so scaling by it is exact in
// binary floating point and every grid value within ±ExactRange is exactly representable as a float32.
// Outside that range the snapped values are still deterministic, only coarser.
package quantize

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

const (
	// Resolution is the number of grid steps per world unit.
	Resolution = 1024
	// Step is the size of one grid step in world units.
	Step = float32(1.0 / Resolution)
	// Tolerance is the largest per-axis distance between a position and its snapped value inside
	// ExactRange.
	Tolerance = Step / 2
	// ExactRange is the largest absolute coordinate whose grid values are all exact float32 values.
	ExactRange = float32(1<<24) / Resolution
)

// Fixed is a position expressed in grid steps.
type Fixed [3]int32

// Quantize converts a position into grid steps, rounding half away from zero. Coordinates beyond the
// int32 range saturate, and NaN maps to zero.
func Quantize(v mgl32.Vec3) Fixed {
	return Fixed{quantizeAxis(v[0]), quantizeAxis(v[1]), quantizeAxis(v[2])}
}

func quantizeAxis(f float32) int32 {
	if math32.IsNaN(f) {
		return 0
	}
	scaled := math32.Round(float32(f * Resolution))
	switch {
	case scaled >= math.MaxInt32:
		return math.MaxInt32
	case scaled <= math.MinInt32:
		return math.MinInt32
	}
	return int32(scaled)
}

// Dequantize converts grid steps back into a world position.
func Dequantize(f Fixed) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(float32(f[0]) * Step),
		float32(float32(f[1]) * Step),
		float32(float32(f[2]) * Step),
	}
}

// Snap returns the grid position closest to v. Snap is idempotent: Snap(Snap(v)) == Snap(v).
func Snap(v mgl32.Vec3) mgl32.Vec3 {
	return Dequantize(Quantize(v))
}

// Add returns f + o in grid steps.
func (f Fixed) Add(o Fixed) Fixed {
	return Fixed{f[0] + o[0], f[1] + o[1], f[2] + o[2]}
}

// Sub returns f - o in grid steps.
func (f Fixed) Sub(o Fixed) Fixed {
	return Fixed{f[0] - o[0], f[1] - o[1], f[2] - o[2]}
}

// AppendBinary appends the little-endian encoding of f to b.
func (f Fixed) AppendBinary(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(f[0]))
	b = binary.LittleEndian.AppendUint32(b, uint32(f[1]))
	return binary.LittleEndian.AppendUint32(b, uint32(f[2]))
}

// Hash returns an xxh3 hash of the little-endian encoding of f.
func (f Fixed) Hash() uint64 {
	var buf [12]byte
	return xxh3.Hash(f.AppendBinary(buf[:0]))
}
