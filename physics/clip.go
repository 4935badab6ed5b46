package physics

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/tickmove/game"
)

// contactEpsilon is the distance under which two faces are considered touching.
const contactEpsilon = 1e-7

// ClipAxis clips the movement vel of the moving box along a single axis (0 = X, 1 = Y, 2 = Z) against a
// stationary box, returning the movement that is left and whether the stationary box was in the way.
//
// A moving box that already overlaps the stationary one is pushed out when axis is the axis of least
// penetration; any other axis is left to the call for that axis.
func ClipAxis(stationary, moving cube.BBox, axis int, vel float32) (float32, bool) {
	if game.BBHasZeroVolume(stationary) {
		return vel, false
	}

	var (
		depth, signed, normal [3]float32
		separating, sepAxis   int
	)
	for i := 0; i < 3; i++ {
		below := touching(moving.Max()[i] - stationary.Min()[i])
		above := touching(stationary.Max()[i] - moving.Min()[i])

		switch {
		case below <= 0:
			signed[i], normal[i] = below, -1
			separating, sepAxis = separating+1, i
		case above <= 0:
			signed[i], normal[i] = above, 1
			separating, sepAxis = separating+1, i
		case below < above:
			depth[i], signed[i], normal[i] = below, below, -1
		default:
			depth[i], signed[i], normal[i] = above, above, 1
		}
		if separating > 1 {
			// Apart on two axes: no movement along one axis can make them meet.
			return vel, false
		}
	}

	if separating == 0 {
		best := 0
		for i := 1; i < 3; i++ {
			if depth[i] < depth[best] {
				best = i
			}
		}
		if best != axis {
			return vel, false
		}
		push := float32(depth[best] * normal[best])
		if push > 0 {
			return math32.Max(push, vel), true
		}
		return math32.Min(push, vel), true
	}

	// Only movement along the separating axis can close the gap.
	if sepAxis != axis {
		return vel, false
	}
	if signed[axis]-float32(normal[axis]*vel) <= 0 {
		return vel, false
	}
	return float32(signed[axis] * normal[axis]), true
}

// touching snaps face distances within contactEpsilon to zero.
func touching(d float32) float32 {
	if math32.Abs(d) <= contactEpsilon {
		return 0
	}
	return d
}
