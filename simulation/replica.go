package simulation

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/tickmove/assert"
	"github.com/oomph-ac/tickmove/movement"
	"github.com/oomph-ac/tickmove/quantize"
	"github.com/oomph-ac/tickmove/utils"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// DefaultHistorySize is the number of results a Replica keeps when Options.HistorySize is zero.
const DefaultHistorySize = 128

// Options configure a Replica.
type Options struct {
	// Name identifies the replica in log output, e.g. "client" or "server".
	Name string
	// HistorySize is the number of past results kept for lookups and digests.
	HistorySize int
	// Debug enables a per-stage trace of every tick through Log.
	Debug bool
	Log   *logrus.Logger
}

// Result is the outcome of a single tick.
type Result struct {
	Tick int64 `json:"tick"`

	Position mgl32.Vec3     `json:"position"`
	Fixed    quantize.Fixed `json:"fixed"`
	// Velocity is the velocity that will be fed to the next tick: the final accumulator with every axis
	// the controller was clipped on zeroed.
	Velocity    mgl32.Vec3 `json:"velocity"`
	Accumulator mgl32.Vec3 `json:"accumulator"`
	OnGround    bool       `json:"on_ground"`
}

// Replica runs the ticks of one controller. It owns the controller's pipeline and velocity and is not
// safe for concurrent use: the ticks of a single controller must run strictly one after another.
// Different replicas share nothing mutable and may be stepped in parallel.
type Replica struct {
	controller movement.Controller
	pipeline   *movement.Pipeline
	probe      *movement.GroundProbe

	vel  mgl32.Vec3
	tick int64

	history *utils.CircularQueue[Result]
	log     *logrus.Entry
}

// NewReplica returns a Replica driving controller c with pipeline p. The probe is only used to report
// OnGround in results and may be nil.
func NewReplica(c movement.Controller, p *movement.Pipeline, probe *movement.GroundProbe, opts Options) *Replica {
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	r := &Replica{
		controller: c,
		pipeline:   p,
		probe:      probe,
		history:    utils.NewCircularQueue[Result](opts.HistorySize),
		log:        opts.Log.WithField("replica", opts.Name),
	}
	if opts.Debug && p != nil {
		p.Debugf = r.log.Debugf
	}
	return r
}

// Step runs the next tick with the input passed.
func (r *Replica) Step(in movement.Input) Result {
	return r.StepAt(r.tick, in)
}

// StepAt runs tick with the input passed. Ticks may be skipped but never go backwards.
func (r *Replica) StepAt(tick int64, in movement.Input) Result {
	assert.IsTrue(tick >= r.tick, "replica %v: tick %d is before the next expected tick %d", r.log.Data["replica"], tick, r.tick)

	acc := movement.Tick(r.controller, in, tick, r.vel, r.pipeline)
	vel := acc
	if reporter, ok := r.controller.(movement.CollisionReporter); ok {
		x, y, z := reporter.Collisions()
		if x {
			vel[0] = 0
		}
		if y {
			vel[1] = 0
		}
		if z {
			vel[2] = 0
		}
	}
	r.vel, r.tick = vel, tick+1

	pos := r.controller.Position()
	res := Result{
		Tick:        tick,
		Position:    pos,
		Fixed:       quantize.Quantize(pos),
		Velocity:    vel,
		Accumulator: acc,
		OnGround:    r.probe.IsGrounded(r.controller),
	}
	_ = r.history.Append(res)
	return res
}

// NextTick returns the index of the tick Step will run next.
func (r *Replica) NextTick() int64 {
	return r.tick
}

// Velocity returns the velocity that will be fed to the next tick.
func (r *Replica) Velocity() mgl32.Vec3 {
	return r.vel
}

// Position returns the controller's current position.
func (r *Replica) Position() mgl32.Vec3 {
	return r.controller.Position()
}

// Signature returns the signature of the replica's pipeline, or zero without a pipeline.
func (r *Replica) Signature() uint64 {
	if r.pipeline == nil {
		return 0
	}
	return r.pipeline.Signature()
}

// History returns the result of tick if it is still held in the history.
func (r *Replica) History(tick int64) (Result, bool) {
	for res := range r.history.All() {
		if res.Tick == tick {
			return res, true
		}
	}
	return Result{}, false
}

// Last returns the result of the most recent tick.
func (r *Replica) Last() (Result, bool) {
	return r.history.Last()
}

// Digest returns an xxh3 hash over the tick indices and quantized positions held in the history. Two
// replicas with equal histories have equal digests, which makes it cheap to compare them.
func (r *Replica) Digest() uint64 {
	h := xxh3.New()
	buf := make([]byte, 0, 20)
	for res := range r.history.All() {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(res.Tick))
		buf = res.Fixed.AppendBinary(buf)
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}
