// Package worker runs CPU bound jobs, such as stepping independent replicas, on a fixed number of
// goroutines.
package worker

import (
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/tickmove/oerror"
)

// Pool is a fixed set of goroutines consuming submitted jobs. A panicking job is reported to sentry and
// turned into an error returned by Wait; the goroutine that ran it keeps serving the queue.
type Pool struct {
	queue chan func()

	jobs    sync.WaitGroup
	workers sync.WaitGroup

	mu  sync.Mutex
	err error

	closeOnce sync.Once
}

// New starts a Pool with n goroutines. n <= 0 uses runtime.NumCPU().
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	p.workers.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.workers.Done()
	defer sentry.Recover()

	for {
		f, ok := <-p.queue
		if !ok {
			return
		}
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer p.jobs.Done()
	defer func() {
		if v := recover(); v != nil {
			err := oerror.New("worker job panicked: %v", v)
			hub := sentry.CurrentHub().Clone()
			hub.Recover(err)
			hub.Flush(time.Second * 5)

			p.mu.Lock()
			if p.err == nil {
				p.err = err
			}
			p.mu.Unlock()
		}
	}()
	f()
}

// Submit queues f, blocking while every goroutine is busy and the queue is full. Submit must not be
// called after Close.
func (p *Pool) Submit(f func()) {
	p.jobs.Add(1)
	p.queue <- f
}

// Wait blocks until every submitted job has finished and returns the error of the first job that
// panicked since the last call to Wait.
func (p *Pool) Wait() error {
	p.jobs.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.err
	p.err = nil
	return err
}

// Close stops the pool once the queued jobs have run.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.queue)
	})
	p.workers.Wait()
}
