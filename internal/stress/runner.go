// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stress

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrInvariant reports that at least one trial resolved outside the
// documented outcome space.
var ErrInvariant = errors.New("stress: invariant violated")

// ErrIncomplete reports that every worker finished cleanly but fewer
// results than trials reached the collector.
var ErrIncomplete = errors.New("stress: results missing")

// Options configures a Runner.
type Options struct {
	Trials        int
	Workers       int
	QueueCapacity int
	Seed          uint64
	Mix           Mix
	// Rate caps trials started per second across all workers.
	// Zero means unlimited.
	Rate float64
}

func (o Options) validate() error {
	switch {
	case o.Trials < 0:
		return fmt.Errorf("stress: trials must be >= 0, got %d", o.Trials)
	case o.Workers < 1:
		return fmt.Errorf("stress: workers must be >= 1, got %d", o.Workers)
	case o.QueueCapacity < 2:
		return fmt.Errorf("stress: queue capacity must be >= 2, got %d", o.QueueCapacity)
	case o.Mix.SendSend < 0 || o.Mix.SendDiscard < 0 || o.Mix.DiscardSend < 0 || o.Mix.DiscardDiscard < 0:
		return errors.New("stress: mix weights must be >= 0")
	case o.Mix.total() == 0:
		return errors.New("stress: mix has no positive weight")
	case o.Rate < 0:
		return fmt.Errorf("stress: rate must be >= 0, got %g", o.Rate)
	}
	return nil
}

// Runner distributes trials over workers and aggregates their results.
type Runner struct {
	opts Options
	log  *zap.Logger
	lim  *rate.Limiter
}

// NewRunner validates opts and returns a Runner that logs through log.
// A nil log discards output.
func NewRunner(opts Options, log *zap.Logger) (*Runner, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{opts: opts, log: log}
	if opts.Rate > 0 {
		r.lim = rate.NewLimiter(rate.Limit(opts.Rate), opts.Workers)
	}
	return r, nil
}

// worker owns one result queue. Only the worker enqueues and only the
// collector dequeues. done is published with release ordering after the
// worker's final Enqueue.
type worker struct {
	id    int
	queue lfq.SPSC[Result]
	done  atomix.Uint32
}

// Run executes the configured trials and returns the aggregated report.
// Cancelling ctx stops workers after their current trial; the partial
// report is returned together with the context error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	opts := r.opts
	rep := newReport(uuid.NewString(), opts)
	log := r.log.With(zap.String("run_id", rep.RunID))
	log.Info("stress run started",
		zap.Int("trials", opts.Trials),
		zap.Int("workers", opts.Workers),
		zap.Uint64("seed", opts.Seed),
		zap.Float64("rate", opts.Rate),
	)

	var next atomix.Uint64
	workers := make([]*worker, opts.Workers)
	for i := range workers {
		w := &worker{id: i}
		w.queue.Init(opts.QueueCapacity)
		workers[i] = w
	}

	stopped := make(chan error, len(workers))
	start := time.Now()
	for _, w := range workers {
		go func() {
			if err := r.work(ctx, w, &next); err != nil {
				stopped <- err
			}
			w.done.StoreRelease(1)
		}()
	}
	r.collect(workers, rep, log)
	rep.Elapsed = time.Since(start)

	log.Info("stress run finished",
		zap.Int("completed", rep.Completed),
		zap.Int("violations", rep.ViolationCount),
		zap.Duration("elapsed", rep.Elapsed),
	)
	if rep.Completed < opts.Trials {
		select {
		case err := <-stopped:
			return rep, err
		default:
		}
		return rep, fmt.Errorf("%w: %d of %d", ErrIncomplete, rep.Completed, opts.Trials)
	}
	return rep, nil
}

// work claims trial sequence numbers until none remain or ctx is done.
// It returns the reason it stopped early, if any.
func (r *Runner) work(ctx context.Context, w *worker, next *atomix.Uint64) error {
	rng := rand.New(rand.NewPCG(r.opts.Seed, uint64(w.id)))
	total := uint64(r.opts.Trials)
	var bo iox.Backoff
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		seq := next.Add(1) - 1
		if seq >= total {
			return nil
		}
		if r.lim != nil {
			if err := r.lim.Wait(ctx); err != nil {
				return fmt.Errorf("stress: rate limit: %w", err)
			}
		}
		res := RunTrial(r.opts.Mix.Pick(rng), seq)
		for {
			err := w.queue.Enqueue(&res)
			if err == nil {
				bo.Reset()
				break
			}
			bo.Wait()
		}
	}
}

// collect drains every worker queue until all workers have finished and
// their queues are empty.
func (r *Runner) collect(workers []*worker, rep *Report, log *zap.Logger) {
	var bo iox.Backoff
	live := len(workers)
	for live > 0 {
		progress := false
		live = 0
		for _, w := range workers {
			// Acquire done before draining: the worker's last Enqueue is
			// ordered before its release of done, so a finished worker's
			// queue is complete on this pass.
			finished := w.done.LoadAcquire() == 1
			for {
				res, err := w.queue.Dequeue()
				if err != nil {
					if !iox.IsWouldBlock(err) {
						log.Warn("result queue", zap.Int("worker", w.id), zap.Error(err))
					}
					break
				}
				progress = true
				rep.add(res)
				if res.Verdict == Invalid {
					log.Error("invariant violated",
						zap.Uint64("seq", res.Seq),
						zap.Stringer("mode", res.Mode),
						zap.String("detail", res.Detail),
					)
				}
			}
			if !finished {
				live++
			}
		}
		if progress {
			bo.Reset()
			continue
		}
		if live > 0 {
			bo.Wait()
		}
	}
}
