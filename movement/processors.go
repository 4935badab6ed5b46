package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/tickmove/game"
)

// Gravity accelerates the accumulator downwards by Config.Gravity.
type Gravity struct {
	conf *Config
}

// NewGravity returns a Gravity processor using the tuning passed.
func NewGravity(conf *Config) *Gravity {
	return &Gravity{conf: conf}
}

// Contribute ...
func (g *Gravity) Contribute(_ Controller, _ Input, _ int64, _, prev mgl32.Vec3) mgl32.Vec3 {
	return game.ScaleAdd(prev, down, float32(g.conf.Gravity*game.TickDuration))
}

// Reset ...
func (*Gravity) Reset(int64) {}

// TerminalVelocity clamps the length of the accumulator to Config.TerminalVelocity while keeping its
// direction. It has to be the last processor that changes velocity in a pipeline, otherwise anything
// after it can push the result past the limit.
type TerminalVelocity struct {
	conf *Config
}

// NewTerminalVelocity returns a TerminalVelocity processor using the tuning passed.
func NewTerminalVelocity(conf *Config) *TerminalVelocity {
	return &TerminalVelocity{conf: conf}
}

// Contribute ...
func (t *TerminalVelocity) Contribute(_ Controller, _ Input, _ int64, _, prev mgl32.Vec3) mgl32.Vec3 {
	return game.ClampMagnitude(prev, t.conf.TerminalVelocity)
}

// Reset ...
func (*TerminalVelocity) Reset(int64) {}

// Inertia carries the velocity of the previous tick into the accumulator. Without it every tick starts
// from rest.
type Inertia struct{}

// NewInertia returns an Inertia processor.
func NewInertia() *Inertia {
	return &Inertia{}
}

// Contribute ...
func (*Inertia) Contribute(_ Controller, _ Input, _ int64, vel, prev mgl32.Vec3) mgl32.Vec3 {
	if !game.FiniteVec3(vel) {
		return prev
	}
	return prev.Add(vel)
}

// Reset ...
func (*Inertia) Reset(int64) {}

// Grounding removes horizontal momentum while the controller stands on walkable geometry and replaces
// any downward speed with Config.GroundedFallSpeed, which keeps the controller pressed onto the ground.
type Grounding struct {
	conf  *Config
	probe *GroundProbe
}

// NewGrounding returns a Grounding processor that uses probe to find the ground.
func NewGrounding(conf *Config, probe *GroundProbe) *Grounding {
	return &Grounding{conf: conf, probe: probe}
}

// Contribute ...
func (g *Grounding) Contribute(c Controller, _ Input, _ int64, _, prev mgl32.Vec3) mgl32.Vec3 {
	if !g.probe.IsGrounded(c) {
		return prev
	}
	y := prev.Y()
	if y <= 0 {
		y = -g.conf.GroundedFallSpeed
	}
	return mgl32.Vec3{0, y, 0}
}

// Reset ...
func (*Grounding) Reset(int64) {}

// AirControl gives an airborne controller limited steering. The horizontal part of the accumulator
// decays by Config.InAirDamping every tick and is pulled towards the desired direction scaled by
// Config.AirControlModifier, so the steady air speed is the ground speed times the modifier.
type AirControl struct {
	conf  *Config
	probe *GroundProbe
}

// NewAirControl returns an AirControl processor that uses probe to find the ground.
func NewAirControl(conf *Config, probe *GroundProbe) *AirControl {
	return &AirControl{conf: conf, probe: probe}
}

// Contribute ...
func (a *AirControl) Contribute(c Controller, in Input, _ int64, _, prev mgl32.Vec3) mgl32.Vec3 {
	if a.probe.IsGrounded(c) {
		return prev
	}
	speed := a.conf.RunSpeed
	if in.Walk {
		speed = a.conf.WalkSpeed
	}
	desired := game.Scale(game.RotateYaw(in.Impulse(), in.yaw()), speed)

	damping := a.conf.InAirDamping
	pull := float32(a.conf.AirControlModifier * damping)
	return mgl32.Vec3{
		float32(prev[0]*(1-damping)) + float32(desired[0]*pull),
		prev[1],
		float32(prev[2]*(1-damping)) + float32(desired[2]*pull),
	}
}

// Reset ...
func (*AirControl) Reset(int64) {}
