package movement

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalVelocityClamp(t *testing.T) {
	conf := DefaultConfig()
	clamp := NewTerminalVelocity(&conf)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		dir := mgl32.Vec3{rng.Float32() - 0.5, rng.Float32() - 0.5, rng.Float32() - 0.5}
		if dir.Len() < 1e-3 {
			continue
		}
		dir = dir.Normalize()
		in := dir.Mul(conf.TerminalVelocity * (1.001 + rng.Float32()*100))

		out := clamp.Contribute(nil, Input{}, 0, mgl32.Vec3{}, in)
		assert.InDelta(t, conf.TerminalVelocity, out.Len(), 1e-3)
		got := out.Normalize()
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, dir[axis], got[axis], 1e-5)
		}
	}
}

func TestTerminalVelocityKeepsSlowVectors(t *testing.T) {
	conf := DefaultConfig()
	clamp := NewTerminalVelocity(&conf)
	in := mgl32.Vec3{3, -39, 1}
	if in.Len() < conf.TerminalVelocity {
		assert.Equal(t, in, clamp.Contribute(nil, Input{}, 0, mgl32.Vec3{}, in))
	}
	assert.Equal(t, mgl32.Vec3{}, clamp.Contribute(nil, Input{}, 0, mgl32.Vec3{}, mgl32.Vec3{math32.NaN(), 1, 1}))
}

func TestGravityIsAdditive(t *testing.T) {
	conf := DefaultConfig()
	g := NewGravity(&conf)
	out := g.Contribute(nil, Input{}, 0, mgl32.Vec3{}, mgl32.Vec3{1, 2, 3})
	assert.Equal(t, float32(1), out.X())
	assert.InDelta(t, 2-25.0/30.0, out.Y(), 1e-6)
	assert.Equal(t, float32(3), out.Z())
}

func TestInertiaIgnoresNonFiniteVelocity(t *testing.T) {
	i := NewInertia()
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, i.Contribute(nil, Input{}, 0, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}))
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, i.Contribute(nil, Input{}, 0, mgl32.Vec3{math32.Inf(-1), 0, 0}, mgl32.Vec3{1, 1, 1}))
}

func TestGrounding(t *testing.T) {
	conf := DefaultConfig()
	grounded := NewGrounding(&conf, NewGroundProbe(flatGround{}))
	airborne := NewGrounding(&conf, NewGroundProbe(noGround{}))
	c := &mockController{}

	assert.Equal(t, mgl32.Vec3{0, -conf.GroundedFallSpeed, 0}, grounded.Contribute(c, Input{}, 0, mgl32.Vec3{}, mgl32.Vec3{4, -10, 4}))
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, grounded.Contribute(c, Input{}, 0, mgl32.Vec3{}, mgl32.Vec3{4, 5, 4}))
	assert.Equal(t, mgl32.Vec3{4, -10, 4}, airborne.Contribute(c, Input{}, 0, mgl32.Vec3{}, mgl32.Vec3{4, -10, 4}))
}

func TestLocomotionSpeeds(t *testing.T) {
	conf := DefaultConfig()
	c := &mockController{}
	forward := mgl32.Vec2{0, 1}

	tests := []struct {
		in   Input
		want float32
	}{
		{Input{Move: forward}, conf.RunSpeed},
		{Input{Move: forward, Walk: true}, conf.WalkSpeed},
		{Input{Move: forward, Sprint: true}, conf.SprintSpeed},
		{Input{Move: forward, Sprint: true, Walk: true}, conf.WalkSpeed},
		{Input{Move: mgl32.Vec2{3, 4}}, conf.RunSpeed},
		{Input{}, 0},
	}
	for _, tt := range tests {
		l := NewLocomotion(&conf, NewGroundProbe(flatGround{}))
		out := l.Contribute(c, tt.in, 0, mgl32.Vec3{}, mgl32.Vec3{})
		assert.InDelta(t, tt.want, out.Len(), 1e-4, "input %+v", tt.in)
		assert.Zero(t, out.Y())
	}
}

func TestLocomotionFacesYaw(t *testing.T) {
	conf := DefaultConfig()
	l := NewLocomotion(&conf, NewGroundProbe(flatGround{}))
	c := &mockController{}

	out := l.Contribute(c, Input{Move: mgl32.Vec2{0, 1}}, 0, mgl32.Vec3{}, mgl32.Vec3{})
	assert.InDelta(t, 0, out.X(), 1e-4)
	assert.InDelta(t, conf.RunSpeed, out.Z(), 1e-4)

	out = l.Contribute(c, Input{Move: mgl32.Vec2{0, 1}, Yaw: 90}, 0, mgl32.Vec3{}, mgl32.Vec3{})
	assert.InDelta(t, -conf.RunSpeed, out.X(), 1e-3)
	assert.InDelta(t, 0, out.Z(), 1e-3)
}

func TestLocomotionAirborneAddsNothing(t *testing.T) {
	conf := DefaultConfig()
	l := NewLocomotion(&conf, NewGroundProbe(noGround{}))
	prev := mgl32.Vec3{1, 2, 3}
	assert.Equal(t, prev, l.Contribute(&mockController{}, Input{Move: mgl32.Vec2{0, 1}, Sprint: true}, 0, mgl32.Vec3{}, prev))
}

func TestLocomotionSprintCooldown(t *testing.T) {
	conf := DefaultConfig()
	l := NewLocomotion(&conf, NewGroundProbe(flatGround{}))
	c := &mockController{}
	sprint := Input{Move: mgl32.Vec2{0, 1}, Sprint: true}
	cooldown := conf.sprintCooldownTicks()
	require.Equal(t, int64(6), cooldown)

	step := func(tick int64, in Input) float32 {
		out := l.Contribute(c, in, tick, mgl32.Vec3{}, mgl32.Vec3{})
		l.Reset(tick)
		return out.Len()
	}

	assert.InDelta(t, conf.SprintSpeed, step(0, sprint), 1e-4)
	assert.True(t, l.Sprinting())
	assert.InDelta(t, conf.RunSpeed, step(1, Input{Move: mgl32.Vec2{0, 1}}), 1e-4)
	assert.False(t, l.Sprinting())

	for tick := int64(2); tick < 1+cooldown; tick++ {
		assert.InDelta(t, conf.RunSpeed, step(tick, sprint), 1e-4, "tick %d is still cooling down", tick)
	}
	assert.InDelta(t, conf.SprintSpeed, step(1+cooldown, sprint), 1e-4)
	assert.True(t, l.Sprinting())
}

func TestLocomotionContributeIsRepeatable(t *testing.T) {
	conf := DefaultConfig()
	l := NewLocomotion(&conf, NewGroundProbe(flatGround{}))
	c := &mockController{}
	in := Input{Move: mgl32.Vec2{0.2, 1}, Sprint: true, Yaw: 33}

	first := l.Contribute(c, in, 5, mgl32.Vec3{}, mgl32.Vec3{})
	second := l.Contribute(c, in, 5, mgl32.Vec3{}, mgl32.Vec3{})
	assert.Equal(t, first, second)
	assert.True(t, l.Pending())
	assert.False(t, l.Sprinting(), "sprint is only committed by Reset")

	l.Reset(5)
	l.Reset(5)
	assert.False(t, l.Pending())
	assert.True(t, l.Sprinting())
}

func TestJumpOnRisingEdge(t *testing.T) {
	conf := DefaultConfig()
	j := NewJump(&conf, NewGroundProbe(flatGround{}))
	c := &mockController{}

	step := func(tick int64, jump bool) float32 {
		out := j.Contribute(c, Input{Jump: jump}, tick, mgl32.Vec3{}, mgl32.Vec3{0, -3.5, 0})
		j.Reset(tick)
		return out.Y()
	}

	assert.Equal(t, conf.StartingJumpSpeed, step(0, true))
	assert.Equal(t, float32(-3.5), step(1, true), "holding jump must not jump again")
	assert.Equal(t, float32(-3.5), step(2, false))
	assert.Equal(t, conf.StartingJumpSpeed, step(3, true))
}

func TestJumpNeedsGround(t *testing.T) {
	conf := DefaultConfig()
	j := NewJump(&conf, NewGroundProbe(noGround{}))
	out := j.Contribute(&mockController{}, Input{Jump: true}, 0, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, float32(1), out.Y())
	j.Reset(0)
	assert.False(t, j.Pending())
}

func TestAirControl(t *testing.T) {
	conf := DefaultConfig()
	a := NewAirControl(&conf, NewGroundProbe(noGround{}))
	c := &mockController{}

	out := a.Contribute(c, Input{}, 0, mgl32.Vec3{}, mgl32.Vec3{10, -5, 0})
	assert.InDelta(t, 10*(1-conf.InAirDamping), out.X(), 1e-5)
	assert.Equal(t, float32(-5), out.Y())

	// Steering converges towards the ground speed scaled by the air control modifier.
	var acc mgl32.Vec3
	for i := 0; i < 2000; i++ {
		acc = a.Contribute(c, Input{Move: mgl32.Vec2{0, 1}}, int64(i), mgl32.Vec3{}, acc)
	}
	assert.InDelta(t, conf.RunSpeed*conf.AirControlModifier, acc.Z(), 1e-3)

	grounded := NewAirControl(&conf, NewGroundProbe(flatGround{}))
	assert.Equal(t, mgl32.Vec3{10, -5, 0}, grounded.Contribute(c, Input{Move: mgl32.Vec2{0, 1}}, 0, mgl32.Vec3{}, mgl32.Vec3{10, -5, 0}))
}

func TestGroundProbe(t *testing.T) {
	c := &mockController{pos: mgl32.Vec3{0, 0.05, 0}}
	assert.True(t, NewGroundProbe(flatGround{}).IsGrounded(c))
	assert.False(t, NewGroundProbe(flatGround{y: -1}).IsGrounded(c))
	assert.False(t, NewGroundProbe(noGround{}).IsGrounded(c))
	assert.False(t, NewGroundProbe(nil).IsGrounded(c))
	assert.False(t, (*GroundProbe)(nil).IsGrounded(c))
	assert.False(t, NewGroundProbe(flatGround{}).IsGrounded(nil))

	other := NewGroundProbe(flatGround{})
	other.Layer = "water"
	assert.False(t, other.IsGrounded(c))
}

func TestInputImpulse(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{0.5, 0}, Input{Move: mgl32.Vec2{0.5, 0}}.Impulse())
	long := Input{Move: mgl32.Vec2{3, 4}}.Impulse()
	assert.InDelta(t, 1, long.Len(), 1e-6)
	assert.InDelta(t, 0.6, long.X(), 1e-6)
	assert.Equal(t, mgl32.Vec2{0, 1}, Input{Move: mgl32.Vec2{math32.NaN(), 1}}.Impulse())
	assert.False(t, Input{}.Moving())
	assert.True(t, Input{Move: mgl32.Vec2{0, 0.2}}.Moving())
}

func TestInputYawIsReducedToOneTurn(t *testing.T) {
	assert.Equal(t, float32(90), Input{Yaw: 90}.yaw())
	assert.Equal(t, float32(90), Input{Yaw: 450}.yaw())
	assert.Equal(t, float32(-90), Input{Yaw: -450}.yaw())
	assert.Zero(t, Input{Yaw: math32.Inf(1)}.yaw())
	assert.Zero(t, Input{Yaw: math32.NaN()}.yaw())

	huge := Input{Yaw: 3.6e20}.yaw()
	assert.Greater(t, huge, float32(-360))
	assert.Less(t, huge, float32(360))

	conf := DefaultConfig()
	l := NewLocomotion(&conf, NewGroundProbe(flatGround{}))
	turned := l.Contribute(&mockController{}, Input{Move: mgl32.Vec2{0, 1}, Yaw: 90 + 360*4}, 0, mgl32.Vec3{}, mgl32.Vec3{})
	straight := l.Contribute(&mockController{}, Input{Move: mgl32.Vec2{0, 1}, Yaw: 90}, 0, mgl32.Vec3{}, mgl32.Vec3{})
	assert.Equal(t, straight, turned)
}
