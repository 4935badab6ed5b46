package worker

import (
	"github.com/oomph-ac/tickmove/movement"
	"github.com/oomph-ac/tickmove/oerror"
	"github.com/oomph-ac/tickmove/simulation"
)

// StepAll steps every replica once with the input at the same index, each replica on its own job. A
// replica is only ever stepped by one job, so its ticks stay sequential while different replicas run in
// parallel.
func (p *Pool) StepAll(replicas []*simulation.Replica, inputs []movement.Input) ([]simulation.Result, error) {
	return p.stepAll(replicas, inputs, func(r *simulation.Replica, in movement.Input) simulation.Result {
		return r.Step(in)
	})
}

// StepAllAt is like StepAll but runs tick on every replica.
func (p *Pool) StepAllAt(tick int64, replicas []*simulation.Replica, inputs []movement.Input) ([]simulation.Result, error) {
	return p.stepAll(replicas, inputs, func(r *simulation.Replica, in movement.Input) simulation.Result {
		return r.StepAt(tick, in)
	})
}

func (p *Pool) stepAll(replicas []*simulation.Replica, inputs []movement.Input, step func(*simulation.Replica, movement.Input) simulation.Result) ([]simulation.Result, error) {
	if len(replicas) != len(inputs) {
		return nil, oerror.New("%d replicas but %d inputs", len(replicas), len(inputs))
	}

	results := make([]simulation.Result, len(replicas))
	for i, r := range replicas {
		p.Submit(func() {
			results[i] = step(r, inputs[i])
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
