package movement

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/tickmove/game"
	"github.com/oomph-ac/tickmove/oerror"
)

// Config holds the movement tuning. A Config is built once at startup and never mutated afterwards, so a
// single *Config may be shared by every processor of every controller.
type Config struct {
	WalkSpeed   float32 `json:"walk_speed" yaml:"walk_speed" toml:"WalkSpeed"`
	RunSpeed    float32 `json:"run_speed" yaml:"run_speed" toml:"RunSpeed"`
	SprintSpeed float32 `json:"sprint_speed" yaml:"sprint_speed" toml:"SprintSpeed"`
	// SprintCooldown is the time in seconds after a sprint ends before another one may start.
	SprintCooldown float32 `json:"sprint_cooldown" yaml:"sprint_cooldown" toml:"SprintCooldown"`

	Gravity           float32 `json:"gravity" yaml:"gravity" toml:"Gravity"`
	StartingJumpSpeed float32 `json:"starting_jump_speed" yaml:"starting_jump_speed" toml:"StartingJumpSpeed"`
	TerminalVelocity  float32 `json:"terminal_velocity" yaml:"terminal_velocity" toml:"TerminalVelocity"`
	// GroundedFallSpeed is the downward speed applied while grounded to keep the controller pressed onto
	// the ground.
	GroundedFallSpeed float32 `json:"grounded_fall_speed" yaml:"grounded_fall_speed" toml:"GroundedFallSpeed"`

	AirControlModifier float32 `json:"air_control_modifier" yaml:"air_control_modifier" toml:"AirControlModifier"`
	InAirDamping       float32 `json:"in_air_damping" yaml:"in_air_damping" toml:"InAirDamping"`
}

// DefaultConfig returns the reference movement tuning.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:          game.DefaultWalkSpeed,
		RunSpeed:           game.DefaultRunSpeed,
		SprintSpeed:        game.DefaultSprintSpeed,
		SprintCooldown:     game.DefaultSprintCooldown,
		Gravity:            game.DefaultGravity,
		StartingJumpSpeed:  game.DefaultStartingJumpSpeed,
		TerminalVelocity:   game.DefaultTerminalVelocity,
		GroundedFallSpeed:  game.DefaultGroundedFallSpeed,
		AirControlModifier: game.DefaultAirControlModifier,
		InAirDamping:       game.DefaultInAirDamping,
	}
}

// Validate returns an error if any field is negative or not finite, if the speeds are not ordered
// walk <= run <= sprint, or if InAirDamping is above 1.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float32
	}{
		{"walk_speed", c.WalkSpeed},
		{"run_speed", c.RunSpeed},
		{"sprint_speed", c.SprintSpeed},
		{"sprint_cooldown", c.SprintCooldown},
		{"gravity", c.Gravity},
		{"starting_jump_speed", c.StartingJumpSpeed},
		{"terminal_velocity", c.TerminalVelocity},
		{"grounded_fall_speed", c.GroundedFallSpeed},
		{"air_control_modifier", c.AirControlModifier},
		{"in_air_damping", c.InAirDamping},
	}
	for _, f := range fields {
		if !game.Finite(f.v) {
			return oerror.New("movement config: %s is not finite", f.name)
		}
		if f.v < 0 {
			return oerror.New("movement config: %s must not be negative (got %v)", f.name, f.v)
		}
	}
	if c.RunSpeed < c.WalkSpeed {
		return oerror.New("movement config: run_speed (%v) is below walk_speed (%v)", c.RunSpeed, c.WalkSpeed)
	}
	if c.SprintSpeed < c.RunSpeed {
		return oerror.New("movement config: sprint_speed (%v) is below run_speed (%v)", c.SprintSpeed, c.RunSpeed)
	}
	if c.InAirDamping > 1 {
		return oerror.New("movement config: in_air_damping (%v) is above 1", c.InAirDamping)
	}
	return nil
}

// sprintCooldownTicks returns SprintCooldown expressed in whole ticks.
func (c *Config) sprintCooldownTicks() int64 {
	return int64(game.ClampFloat(math32.Round(float32(c.SprintCooldown*game.TicksPerSecond)), 0, 1<<30))
}
