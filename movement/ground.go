package movement

import "github.com/oomph-ac/tickmove/game"

// GroundProbe reports whether a controller touches walkable geometry, by testing a small sphere centred
// on the controller's position against a layer of the spatial index. It holds no state of its own.
type GroundProbe struct {
	Query  GroundQuery
	Radius float32
	Layer  Layer
}

// NewGroundProbe returns a probe using the default radius on LayerDefault.
func NewGroundProbe(q GroundQuery) *GroundProbe {
	return &GroundProbe{Query: q, Radius: game.DefaultGroundProbeRadius, Layer: LayerDefault}
}

// IsGrounded returns true if the probe sphere at the controller's position overlaps geometry. A missing
// probe, query or controller simply yields false.
func (p *GroundProbe) IsGrounded(c Controller) bool {
	if p == nil || p.Query == nil || c == nil {
		return false
	}
	return p.Query.OverlapSphere(c.Position(), p.Radius, p.Layer)
}
