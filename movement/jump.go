package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Jump launches a grounded controller upwards with Config.StartingJumpSpeed on the tick the jump flag is
// first pressed. Holding the flag does not jump again; it has to be released first.
type Jump struct {
	conf  *Config
	probe *GroundProbe

	held bool

	staged     bool
	stagedHeld bool
}

// NewJump returns a Jump processor that uses probe to find the ground.
func NewJump(conf *Config, probe *GroundProbe) *Jump {
	return &Jump{conf: conf, probe: probe}
}

// Contribute ...
func (j *Jump) Contribute(c Controller, in Input, _ int64, _, prev mgl32.Vec3) mgl32.Vec3 {
	j.staged, j.stagedHeld = true, in.Jump
	if !in.Jump || j.held || !j.probe.IsGrounded(c) {
		return prev
	}
	prev[1] = math32.Max(prev[1], j.conf.StartingJumpSpeed)
	return prev
}

// Reset commits the state of the jump flag staged for the tick.
func (j *Jump) Reset(int64) {
	if !j.staged {
		return
	}
	j.held = j.stagedHeld
	j.staged, j.stagedHeld = false, false
}

// Pending ...
func (j *Jump) Pending() bool {
	return j.staged
}
