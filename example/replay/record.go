package main

import (
	"flag"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/tickmove/movement"
	"github.com/oomph-ac/tickmove/oerror"
	"github.com/oomph-ac/tickmove/recording"
	"github.com/sirupsen/logrus"
)

func runRecord(log *logrus.Logger, args []string) error {
	set := flag.NewFlagSet("record", flag.ContinueOnError)
	var (
		out    = set.String("out", "", "path of the recording to write")
		ticks  = set.Int64("ticks", 900, "number of ticks to record")
		seed   = set.Uint64("seed", 1, "seed of the scripted inputs")
		config = set.String("config", "", "settings file (toml or yaml, optional)")
	)
	if err := parseFlags(set, args); err != nil {
		return err
	}
	if *out == "" {
		return oerror.New("missing -out")
	}
	if *ticks <= 0 {
		return oerror.New("-ticks must be positive")
	}

	s, err := loadSettings(*config)
	if err != nil {
		return err
	}

	w, err := recording.Create(*out, recording.Header{
		Signature: movement.DefaultPipeline(&s.Movement, nil).Signature(),
		Config:    s.Movement,
		Start:     spawn,
	})
	if err != nil {
		return err
	}

	script := newScript(*seed)
	for tick := range *ticks {
		if err := w.Write(recording.Frame{Tick: tick, Input: script.next(tick)}); err != nil {
			_ = w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return oerror.Wrap(err, "unable to finish recording")
	}
	log.Infof("recorded %d ticks to %s", *ticks, *out)
	return nil
}

// script produces a reproducible stream of inputs that walks, sprints, turns and jumps around.
type script struct {
	rng *rand.Rand

	move   mgl32.Vec2
	yaw    float32
	sprint bool
	walk   bool
}

func newScript(seed uint64) *script {
	return &script{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *script) next(tick int64) movement.Input {
	// Change intent roughly twice a second.
	if tick%15 == 0 {
		s.move = mgl32.Vec2{float32(s.rng.IntN(3) - 1), float32(s.rng.IntN(3) - 1)}
		s.sprint = s.rng.IntN(3) == 0
		s.walk = !s.sprint && s.rng.IntN(4) == 0
	}
	s.yaw += float32(s.rng.IntN(21)-10) * 0.5
	return movement.Input{
		Move:   s.move,
		Yaw:    s.yaw,
		Jump:   s.rng.IntN(40) == 0,
		Sprint: s.sprint,
		Walk:   s.walk,
	}
}
