// Package physics provides a kinematic reference implementation of the collaborators the movement
// integrator expects: a static world of axis aligned boxes that answers ground queries, and a box shaped
// body that moves through it. It is deliberately small; it resolves nothing but box against box.
package physics

import (
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/tickmove/game"
	"github.com/oomph-ac/tickmove/movement"
)

// World is a static set of collision boxes grouped by layer. Boxes are only added while the world is being
// built; queries may then run from any number of goroutines.
type World struct {
	mu     sync.RWMutex
	layers map[movement.Layer][]cube.BBox
	order  []movement.Layer
}

// NewWorld returns an empty World.
func NewWorld() *World {
	return &World{layers: make(map[movement.Layer][]cube.BBox)}
}

// AddBox adds a collision box to layer.
func (w *World) AddBox(layer movement.Layer, bb cube.BBox) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.layers[layer]; !ok {
		w.order = append(w.order, layer)
	}
	w.layers[layer] = append(w.layers[layer], bb)
}

// AddFloor adds a box spanning [min, max] on the X and Z axes whose top face is at height y.
func (w *World) AddFloor(layer movement.Layer, min, max mgl32.Vec2, y float32) {
	w.AddBox(layer, cube.Box(min.X(), y-1, min.Y(), max.X(), y, max.Y()))
}

// Boxes returns every box on layer.
func (w *World) Boxes(layer movement.Layer) []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]cube.BBox(nil), w.layers[layer]...)
}

// NearbyBoxes returns every box, on any layer, that intersects bb. Boxes are returned in a fixed order
// so collision resolution is reproducible.
func (w *World) NearbyBoxes(bb cube.BBox) []cube.BBox {
	return w.AppendNearbyBoxes(nil, bb)
}

// AppendNearbyBoxes appends the boxes NearbyBoxes would return to dst.
func (w *World) AppendNearbyBoxes(dst []cube.BBox, bb cube.BBox) []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, layer := range w.order {
		for _, box := range w.layers[layer] {
			if box.IntersectsWith(bb) {
				dst = append(dst, box)
			}
		}
	}
	return dst
}

// OverlapSphere returns true if a sphere at center with the given radius touches any box on layer.
func (w *World) OverlapSphere(center mgl32.Vec3, radius float32, layer movement.Layer) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, box := range w.layers[layer] {
		if game.AABBVectorDistance(box, center) <= radius {
			return true
		}
	}
	return false
}
