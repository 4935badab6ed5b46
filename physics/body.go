package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/tickmove/game"
	"github.com/oomph-ac/tickmove/utils"
)

// Body is a box shaped kinematic controller. Its position is the centre of the bottom face of its box.
type Body struct {
	world *World
	pos   mgl32.Vec3

	width, height float32

	collideX, collideY, collideZ bool
}

// NewBody returns a Body of the given dimensions at pos. A nil world makes the body move freely.
func NewBody(world *World, pos mgl32.Vec3, width, height float32) *Body {
	return &Body{world: world, pos: pos, width: width, height: height}
}

// BoundingBox returns the box of the body at its current position.
func (b *Body) BoundingBox() cube.BBox {
	return game.AABBFromDimensions(b.width, b.height).Translate(b.pos)
}

// Move moves the body by delta, clipping it against the world one axis at a time: Y first, then X, then
// Z. The axes that were clipped are reported by Collisions until the next call to Move.
func (b *Body) Move(delta mgl32.Vec3) {
	if b.world == nil {
		b.pos = b.pos.Add(delta)
		b.collideX, b.collideY, b.collideZ = false, false, false
		return
	}

	bb := b.BoundingBox()
	list := utils.GetBBoxList()
	defer utils.PutBBoxList(list)
	*list = b.world.AppendNearbyBoxes(*list, bb.Extend(delta).Grow(1e-3))
	nearby := *list

	var clipped [3]bool
	for _, axis := range [3]int{1, 0, 2} {
		v := delta[axis]
		for i := len(nearby) - 1; i >= 0; i-- {
			var hit bool
			v, hit = ClipAxis(nearby[i], bb, axis, v)
			clipped[axis] = clipped[axis] || hit
		}
		var offset mgl32.Vec3
		offset[axis] = v
		bb = bb.Translate(offset)
	}

	b.collideX, b.collideY, b.collideZ = clipped[0], clipped[1], clipped[2]
	b.pos = mgl32.Vec3{
		(bb.Min().X() + bb.Max().X()) * 0.5,
		bb.Min().Y(),
		(bb.Min().Z() + bb.Max().Z()) * 0.5,
	}
}

// Position ...
func (b *Body) Position() mgl32.Vec3 {
	return b.pos
}

// SetPosition ...
func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.pos = pos
}

// Collisions returns the axes that were clipped by the last call to Move.
func (b *Body) Collisions() (x, y, z bool) {
	return b.collideX, b.collideY, b.collideZ
}
