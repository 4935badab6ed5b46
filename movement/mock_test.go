package movement

import "github.com/go-gl/mathgl/mgl32"

// mockController moves freely but never sinks below floor when hasFloor is set.
type mockController struct {
	pos      mgl32.Vec3
	hasFloor bool
	floor    float32
	moves    int
}

func (m *mockController) Move(delta mgl32.Vec3) {
	m.moves++
	m.pos = m.pos.Add(delta)
	if m.hasFloor && m.pos[1] < m.floor {
		m.pos[1] = m.floor
	}
}

func (m *mockController) Position() mgl32.Vec3 {
	return m.pos
}

func (m *mockController) SetPosition(pos mgl32.Vec3) {
	m.pos = pos
}

// flatGround is an infinite floor at height y on LayerDefault.
type flatGround struct {
	y float32
}

func (g flatGround) OverlapSphere(center mgl32.Vec3, radius float32, layer Layer) bool {
	return layer == LayerDefault && center.Y()-radius <= g.y
}

// noGround has no geometry at all.
type noGround struct{}

func (noGround) OverlapSphere(mgl32.Vec3, float32, Layer) bool {
	return false
}
