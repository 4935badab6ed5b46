package simulation

import (
	"github.com/oomph-ac/tickmove/oerror"
)

// ErrDesync is returned, wrapped, when two replicas disagree on the result of a tick.
var ErrDesync = oerror.New("replicas desynchronised")

var axisNames = [3]string{"x", "y", "z"}

// Compare returns nil if a and b describe the same tick and the same quantized position, and an error
// wrapping ErrDesync naming the first difference otherwise.
func Compare(a, b Result) error {
	if a.Tick != b.Tick {
		return oerror.Wrap(ErrDesync, "comparing tick %d with tick %d", a.Tick, b.Tick)
	}
	for axis := range a.Fixed {
		if a.Fixed[axis] != b.Fixed[axis] {
			return oerror.Wrap(ErrDesync, "tick %d: %s differs by %d steps (%d != %d)",
				a.Tick, axisNames[axis], a.Fixed[axis]-b.Fixed[axis], a.Fixed[axis], b.Fixed[axis])
		}
	}
	return nil
}
