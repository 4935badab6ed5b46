package movement

import "github.com/go-gl/mathgl/mgl32"

// Processor contributes one effect to the displacement of a single tick. Processors are chained by a
// Pipeline: each receives the accumulator produced by the processor before it and returns the next one.
//
// Contribute must only depend on its arguments, the shared Config and the processor's own state, and must
// return the same value if called twice for the same tick. It may stage state for the current tick, which
// is committed or discarded by the next call to Reset. Reset must be idempotent and is called exactly once
// per tick whether or not the controller moved.
//
// Processors never fail. Input that is out of range or not finite is clamped or ignored.
type Processor interface {
	Contribute(c Controller, in Input, tick int64, vel, prev mgl32.Vec3) mgl32.Vec3
	Reset(tick int64)
}

// Stateful is implemented by processors that stage state during a tick.
type Stateful interface {
	// Pending returns true if state staged during the current tick has not been retired by Reset yet.
	Pending() bool
}

// down is the unit vector pointing towards the ground.
var down = mgl32.Vec3{0, -1, 0}
