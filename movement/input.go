package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/tickmove/game"
)

// Input is the immutable per-tick input snapshot produced by the input capture collaborator.
type Input struct {
	// Move is the desired movement, X being strafe and Y being forward. Its length is clamped to 1.
	Move mgl32.Vec2 `json:"move" yaml:"move"`
	// Yaw is the facing direction in degrees. A yaw of zero faces +Z.
	Yaw float32 `json:"yaw" yaml:"yaw"`

	Jump   bool `json:"jump,omitempty" yaml:"jump,omitempty"`
	Sprint bool `json:"sprint,omitempty" yaml:"sprint,omitempty"`
	Walk   bool `json:"walk,omitempty" yaml:"walk,omitempty"`
}

// Impulse returns Move with non-finite components zeroed and its length clamped to 1.
func (in Input) Impulse() mgl32.Vec2 {
	impulse := in.Move
	for i := range impulse {
		if !game.Finite(impulse[i]) {
			impulse[i] = 0
		}
	}
	lenSqr := float32(impulse[0]*impulse[0]) + float32(impulse[1]*impulse[1])
	if lenSqr > 1 {
		l := 1 / mgl32.Vec2{impulse[0], impulse[1]}.Len()
		impulse = mgl32.Vec2{float32(impulse[0] * l), float32(impulse[1] * l)}
	}
	return impulse
}

// Moving returns true if the input asks for any horizontal movement.
func (in Input) Moving() bool {
	impulse := in.Impulse()
	return float32(impulse[0]*impulse[0])+float32(impulse[1]*impulse[1]) >= 1e-4
}

// yaw returns the input yaw reduced to (-360, 360), or zero if it is not finite.
func (in Input) yaw() float32 {
	if !game.Finite(in.Yaw) {
		return 0
	}
	return math32.Mod(in.Yaw, 360)
}
