package main

import (
	"flag"
	"io"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/tickmove/movement"
	"github.com/oomph-ac/tickmove/oerror"
	"github.com/oomph-ac/tickmove/physics"
	"github.com/oomph-ac/tickmove/recording"
	"github.com/oomph-ac/tickmove/settings"
	"github.com/oomph-ac/tickmove/simulation"
	"github.com/oomph-ac/tickmove/worker"
	"github.com/sirupsen/logrus"
)

// spawn is where recorded controllers start.
var spawn = mgl32.Vec3{0, 2, 0}

func runVerify(log *logrus.Logger, args []string) error {
	set := flag.NewFlagSet("verify", flag.ContinueOnError)
	var (
		in        = set.String("in", "", "path of the recording to verify")
		parallel  = set.Bool("parallel", false, "step the replicas on a worker pool")
		config    = set.String("config", "", "settings file (toml or yaml, optional)")
		statsAddr = set.String("statsview", "", "serve runtime statistics on this address")
	)
	if err := parseFlags(set, args); err != nil {
		return err
	}
	if *in == "" {
		return oerror.New("missing -in")
	}
	if *statsAddr != "" {
		startStatsView(*statsAddr)
	}

	s, err := loadSettings(*config)
	if err != nil {
		return err
	}
	if s.Simulation.Debug {
		log.Level = logrus.DebugLevel
	}

	r, err := recording.Open(*in)
	if err != nil {
		return err
	}
	defer r.Close()

	header := r.Header()
	conf := header.Config
	if err := conf.Validate(); err != nil {
		return oerror.Wrap(err, "recording has an invalid movement config")
	}

	replicas := []*simulation.Replica{
		newReplica(log, s, &conf, header.Start, "first"),
		newReplica(log, s, &conf, header.Start, "second"),
	}
	if sig := replicas[0].Signature(); sig != header.Signature {
		log.Warnf("recording was made with pipeline %x, replaying with %x", header.Signature, sig)
	}

	var pool *worker.Pool
	if *parallel {
		pool = worker.New(s.Simulation.Workers)
		defer pool.Close()
	}

	var frames int
	for {
		frame, err := r.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		results, err := step(pool, frame, replicas)
		if err != nil {
			return err
		}
		if err := simulation.Compare(results[0], results[1]); err != nil {
			return err
		}
		frames++
	}

	digests := [2]uint64{replicas[0].Digest(), replicas[1].Digest()}
	log.WithFields(logrus.Fields{
		"frames":   frames,
		"position": replicas[0].Position(),
	}).Infof("replicas agree, digests %016x %016x", digests[0], digests[1])
	if digests[0] != digests[1] {
		return oerror.Wrap(simulation.ErrDesync, "digests differ")
	}
	return nil
}

func step(pool *worker.Pool, frame recording.Frame, replicas []*simulation.Replica) ([]simulation.Result, error) {
	inputs := make([]movement.Input, len(replicas))
	for i := range inputs {
		inputs[i] = frame.Input
	}
	if pool != nil {
		return pool.StepAllAt(frame.Tick, replicas, inputs)
	}
	results := make([]simulation.Result, len(replicas))
	for i, r := range replicas {
		results[i] = r.StepAt(frame.Tick, inputs[i])
	}
	return results, nil
}

// newReplica returns a replica with its own world, body and pipeline so replicas share nothing.
func newReplica(log *logrus.Logger, s settings.Settings, conf *movement.Config, start mgl32.Vec3, name string) *simulation.Replica {
	world := arena()
	probe := s.GroundProbe(world)
	return simulation.NewReplica(
		physics.NewBody(world, start, 0.6, 1.8),
		movement.DefaultPipeline(conf, probe),
		probe,
		simulation.Options{Name: name, HistorySize: s.Simulation.HistorySize, Debug: s.Simulation.Debug, Log: log},
	)
}

// arena returns a walled floor with a few steps and platforms to collide with.
func arena() *physics.World {
	w := physics.NewWorld()
	w.AddFloor(movement.LayerDefault, mgl32.Vec2{-32, -32}, mgl32.Vec2{32, 32}, 0)
	for i := range 4 {
		y := float32(i+1) * 0.5
		w.AddFloor(movement.LayerDefault, mgl32.Vec2{4 + float32(i)*2, -3}, mgl32.Vec2{6 + float32(i)*2, 3}, y)
	}
	w.AddFloor(movement.LayerDefault, mgl32.Vec2{-12, -12}, mgl32.Vec2{-6, -6}, 1.25)

	w.AddBox("walls", cube.Box(-32, 0, -33, 32, 4, -32))
	w.AddBox("walls", cube.Box(-32, 0, 32, 32, 4, 33))
	w.AddBox("walls", cube.Box(-33, 0, -32, -32, 4, 32))
	w.AddBox("walls", cube.Box(32, 0, -32, 33, 4, 32))
	return w
}

func loadSettings(path string) (settings.Settings, error) {
	if path == "" {
		return settings.DefaultSettings(), nil
	}
	return settings.Load(path)
}
