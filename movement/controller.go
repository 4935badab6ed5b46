package movement

import "github.com/go-gl/mathgl/mgl32"

// Controller is the physical character driven by the integrator. It is owned by the physics collaborator;
// the integrator only moves it by a delta and reads or overwrites its position.
type Controller interface {
	// Move attempts to translate the controller by delta. The implementation may clip the delta against
	// geometry.
	Move(delta mgl32.Vec3)
	// Position returns the current world position of the controller.
	Position() mgl32.Vec3
	// SetPosition overwrites the world position of the controller.
	SetPosition(pos mgl32.Vec3)
}

// CollisionReporter is implemented by controllers that can report which axes were clipped by their last
// call to Move.
type CollisionReporter interface {
	Collisions() (x, y, z bool)
}

// Layer names a collision layer of the spatial index.
type Layer string

// LayerDefault is the layer walkable geometry lives on unless configured otherwise.
const LayerDefault Layer = "default"

// GroundQuery is the read-only spatial index used by the GroundProbe.
type GroundQuery interface {
	// OverlapSphere returns true if a sphere at center with the given radius overlaps any geometry on layer.
	OverlapSphere(center mgl32.Vec3, radius float32, layer Layer) bool
}
