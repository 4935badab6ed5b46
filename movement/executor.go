package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/tickmove/game"
	"github.com/oomph-ac/tickmove/quantize"
)

// ApplyInput runs processors strictly in slice order, threading an accumulator that starts at zero, and
// applies the final accumulator to the controller with ApplyMovement. The final accumulator is returned.
// Nil processors are skipped. If no processor runs, the controller is left untouched.
func ApplyInput(c Controller, in Input, tick int64, vel mgl32.Vec3, processors []Processor) mgl32.Vec3 {
	return applyInput(c, in, tick, vel, processors, nil)
}

func applyInput(c Controller, in Input, tick int64, vel mgl32.Vec3, processors []Processor, trace func(i int, acc mgl32.Vec3)) mgl32.Vec3 {
	var (
		acc mgl32.Vec3
		ran bool
	)
	for i, p := range processors {
		if p == nil {
			continue
		}
		acc = p.Contribute(c, in, tick, vel, acc)
		ran = true
		if trace != nil {
			trace(i, acc)
		}
	}
	if ran && c != nil {
		ApplyMovement(c, acc)
	}
	return acc
}

// ApplyMovement moves the controller by displacement*TickDuration and snaps its resulting position to the
// quantization grid. The snap uses the position the controller actually ended up at, after any clipping
// done by its Move. A displacement that is not finite is treated as zero.
func ApplyMovement(c Controller, displacement mgl32.Vec3) {
	if !game.FiniteVec3(displacement) {
		displacement = mgl32.Vec3{}
	}
	c.Move(game.Scale(displacement, game.TickDuration))
	c.SetPosition(quantize.Snap(c.Position()))
}

// CleanProcessors calls Reset(tick) once on every non-nil processor.
func CleanProcessors(processors []Processor, tick int64) {
	for _, p := range processors {
		if p != nil {
			p.Reset(tick)
		}
	}
}

// Tick runs a full tick of the pipeline: the processors are evaluated and applied to the controller, then
// every processor is cleaned. Cleaning is deferred so that it still happens if a collaborator panics.
// A nil pipeline leaves the controller untouched.
func Tick(c Controller, in Input, tick int64, vel mgl32.Vec3, p *Pipeline) mgl32.Vec3 {
	if p == nil {
		return mgl32.Vec3{}
	}
	defer p.Clean(tick)
	if p.Debugf == nil {
		return applyInput(c, in, tick, vel, p.processors, nil)
	}

	p.debugf("BEGIN tick %d (vel=%v)", tick, vel)
	acc := applyInput(c, in, tick, vel, p.processors, func(i int, acc mgl32.Vec3) {
		p.debugf("  %s -> %v", p.names[i], acc)
	})
	if c != nil {
		p.debugf("END tick %d (acc=%v pos=%v)", tick, acc, c.Position())
	}
	return acc
}
