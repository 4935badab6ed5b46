package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/tickmove/game"
)

// Locomotion adds the desired horizontal velocity of a grounded controller. The speed is picked from the
// input flags: Walk selects WalkSpeed, Sprint selects SprintSpeed and anything else runs at RunSpeed.
//
// Once a sprint ends, sprinting stays unavailable for Config.SprintCooldown. The sprint decision for a tick
// is staged by Contribute and only committed by Reset, so evaluating a tick twice gives the same result.
type Locomotion struct {
	conf     *Config
	probe    *GroundProbe
	cooldown int64

	sprinting   bool
	sprintEnded bool
	sprintEnd   int64

	staged       bool
	stagedSprint bool
}

// NewLocomotion returns a Locomotion processor that uses probe to find the ground.
func NewLocomotion(conf *Config, probe *GroundProbe) *Locomotion {
	return &Locomotion{conf: conf, probe: probe, cooldown: conf.sprintCooldownTicks()}
}

// Contribute ...
func (l *Locomotion) Contribute(c Controller, in Input, tick int64, _, prev mgl32.Vec3) mgl32.Vec3 {
	sprint := l.canSprint(tick) && in.Sprint && !in.Walk && in.Moving()
	l.staged, l.stagedSprint = true, sprint

	if !l.probe.IsGrounded(c) {
		return prev
	}
	speed := l.conf.RunSpeed
	switch {
	case sprint:
		speed = l.conf.SprintSpeed
	case in.Walk:
		speed = l.conf.WalkSpeed
	}
	return game.ScaleAdd(prev, game.RotateYaw(in.Impulse(), in.yaw()), speed)
}

// canSprint returns true if a sprint is already running or the cooldown of the last one has elapsed.
func (l *Locomotion) canSprint(tick int64) bool {
	return l.sprinting || !l.sprintEnded || tick-l.sprintEnd >= l.cooldown
}

// Reset commits the sprint decision staged for tick.
func (l *Locomotion) Reset(tick int64) {
	if !l.staged {
		return
	}
	if l.sprinting && !l.stagedSprint {
		l.sprintEnded, l.sprintEnd = true, tick
	}
	l.sprinting = l.stagedSprint
	l.staged, l.stagedSprint = false, false
}

// Pending ...
func (l *Locomotion) Pending() bool {
	return l.staged
}

// Sprinting returns true if the last committed tick was a sprinting tick.
func (l *Locomotion) Sprinting() bool {
	return l.sprinting
}
