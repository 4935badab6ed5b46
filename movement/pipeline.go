package movement

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/tickmove/assert"
	"github.com/oomph-ac/tickmove/oerror"
	"github.com/zeebo/xxh3"
)

// Stage names used by DefaultPipeline.
const (
	StageInertia          = "inertia"
	StageGrounding        = "grounding"
	StageLocomotion       = "locomotion"
	StageAirControl       = "air_control"
	StageJump             = "jump"
	StageGravity          = "gravity"
	StageTerminalVelocity = "terminal_velocity"
)

// Builder assembles a Pipeline. Stages run in the order they were added; that order is part of the
// simulation and has to be identical on every replica computing the same controller.
type Builder struct {
	stages *orderedmap.OrderedMap[string, Processor]
	err    error
}

// NewPipeline returns an empty Builder.
func NewPipeline() *Builder {
	return &Builder{stages: orderedmap.NewOrderedMap[string, Processor]()}
}

// Then appends a named stage. Names must be unique and non-empty, and p must not be nil; the first
// violation is reported by Build.
func (b *Builder) Then(name string, p Processor) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case name == "":
		b.err = oerror.New("pipeline: stage %d has no name", b.stages.Len())
	case p == nil:
		b.err = oerror.New("pipeline: stage %q has a nil processor", name)
	case !b.stages.Set(name, p):
		b.err = oerror.New("pipeline: duplicate stage %q", name)
	}
	return b
}

// Build returns the Pipeline, or the first error recorded by Then.
func (b *Builder) Build() (*Pipeline, error) {
	if b.err != nil {
		return nil, b.err
	}
	p := &Pipeline{
		names:      make([]string, 0, b.stages.Len()),
		processors: make([]Processor, 0, b.stages.Len()),
	}
	h := xxh3.New()
	for el := b.stages.Front(); el != nil; el = el.Next() {
		p.names = append(p.names, el.Key)
		p.processors = append(p.processors, el.Value)
		_, _ = h.Write([]byte(el.Key))
		_, _ = h.Write([]byte{0})
	}
	p.signature = h.Sum64()
	return p, nil
}

// Pipeline is an ordered, immutable list of processors owned by a single controller.
type Pipeline struct {
	names      []string
	processors []Processor
	signature  uint64

	// Debugf receives a trace line per stage when set.
	Debugf func(format string, args ...any)
}

// DefaultPipeline returns the standard pipeline for a character controller. Each call creates new
// processor instances, so the result must not be shared between controllers.
func DefaultPipeline(conf *Config, probe *GroundProbe) *Pipeline {
	p, err := NewPipeline().
		Then(StageInertia, NewInertia()).
		Then(StageGrounding, NewGrounding(conf, probe)).
		Then(StageLocomotion, NewLocomotion(conf, probe)).
		Then(StageAirControl, NewAirControl(conf, probe)).
		Then(StageJump, NewJump(conf, probe)).
		Then(StageGravity, NewGravity(conf)).
		Then(StageTerminalVelocity, NewTerminalVelocity(conf)).
		Build()
	assert.IsTrue(err == nil, "default pipeline: %v", err)
	return p
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	return append([]string(nil), p.names...)
}

// Processors returns the processors in execution order.
func (p *Pipeline) Processors() []Processor {
	return append([]Processor(nil), p.processors...)
}

// Processor returns the processor registered under name.
func (p *Pipeline) Processor(name string) (Processor, bool) {
	for i, n := range p.names {
		if n == name {
			return p.processors[i], true
		}
	}
	return nil, false
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.processors)
}

// Signature returns a hash of the stage names in order. Replicas that must agree on a controller's
// movement can compare signatures to catch pipelines that were assembled differently.
func (p *Pipeline) Signature() uint64 {
	return p.signature
}

// Clean resets every processor of the pipeline for tick.
func (p *Pipeline) Clean(tick int64) {
	CleanProcessors(p.processors, tick)
}

func (p *Pipeline) debugf(format string, args ...any) {
	if p.Debugf != nil {
		p.Debugf(format, args...)
	}
}
