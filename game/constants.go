package game

const (
	// TicksPerSecond is the fixed simulation rate. Every replica that must agree on a tick has to use the
	// same value, so changing it is a protocol change.
	TicksPerSecond = 30
	// TickDuration is the simulated length of a single tick in seconds.
	TickDuration = float32(1.0 / TicksPerSecond)
)

const (
	DefaultWalkSpeed          = float32(2)
	DefaultRunSpeed           = float32(3.5)
	DefaultSprintSpeed        = float32(6)
	DefaultSprintCooldown     = float32(0.2)
	DefaultGravity            = float32(25)
	DefaultStartingJumpSpeed  = float32(8)
	DefaultTerminalVelocity   = float32(40)
	DefaultGroundedFallSpeed  = float32(3.5)
	DefaultAirControlModifier = float32(0.5)
	DefaultInAirDamping       = float32(0.05)

	// DefaultGroundProbeRadius is the radius of the sphere used to look for walkable geometry under a
	// controller.
	DefaultGroundProbeRadius = float32(0.1)
)
