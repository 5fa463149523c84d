package bench

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gosulliv/sorted-collections/lib/hrtime"
	"github.com/gosulliv/sorted-collections/lib/list"
	"github.com/gosulliv/sorted-collections/lib/xlog"
)

type Runner struct {
	cfg    Config
	logger xlog.XLogger
	clock  hrtime.Clock
	// opsCounter is optional; it stays nil unless metrics were wired.
	opsCounter metric.Int64Counter
}

type RunnerOption func(*Runner)

func WithRunnerLogger(logger xlog.XLogger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

func WithRunnerClock(clock hrtime.Clock) RunnerOption {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithRunnerMeter counts completed operations per workload under
// "sortbench.ops".
func WithRunnerMeter(meter metric.Meter) RunnerOption {
	return func(r *Runner) {
		counter, err := meter.Int64Counter("sortbench.ops")
		if err != nil {
			r.logger.Error(err, "register ops counter")
			return
		}
		r.opsCounter = counter
	}
}

func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if cfg.N <= 0 || cfg.LoadFactor <= 0 {
		return nil, errBadConfig
	}
	if cfg.Readers <= 0 {
		cfg.Readers = 4
	}
	if len(cfg.Workloads) == 0 {
		cfg.Workloads = DefaultWorkloads()
	}
	r := &Runner{
		cfg:    cfg,
		logger: xlog.NewXLogger(),
		clock:  hrtime.GoMonotonicClock,
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// Run executes the configured workloads sequentially and returns one
// Result per workload. A context cancellation stops between
// workloads, not inside one.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(r.cfg.Workloads))
	var errs error
	for _, w := range r.cfg.Workloads {
		if err := ctx.Err(); err != nil {
			return results, multierr.Append(errs, err)
		}
		res, err := r.runOne(ctx, w)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", w, err))
			continue
		}
		r.logger.Info("workload done",
			zap.String("workload", string(w)),
			zap.Int64("ops", res.Ops),
			zap.Duration("elapsed", res.Elapsed),
			zap.Float64("ns/op", res.NsPerOp()),
		)
		if r.opsCounter != nil {
			r.opsCounter.Add(ctx, res.Ops,
				metric.WithAttributes(attribute.String("workload", string(w))))
		}
		results = append(results, res)
	}
	return results, errs
}

func (r *Runner) newList(opts ...list.XSeglOption) (list.SegmentedList[int64], error) {
	opts = append([]list.XSeglOption{list.WithXSeglLoadFactor(r.cfg.LoadFactor)}, opts...)
	return list.NewXSegl[int64](opts...)
}

// prefill loads n pseudo-random values and returns them in insertion
// order. Not timed.
func prefill(sl list.SegmentedList[int64], rng *rand.Rand, n int) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = rng.Int63n(int64(n) * 4)
		sl.Insert(values[i])
	}
	return values
}

func (r *Runner) runOne(ctx context.Context, w Workload) (Result, error) {
	rng := rand.New(rand.NewSource(r.cfg.Seed))
	n := r.cfg.N

	switch w {
	case WorkloadInsertSeq:
		sl, err := r.newList()
		if err != nil {
			return Result{}, err
		}
		begin := r.clock.MonotonicElapsed()
		for v := 0; v < n; v++ {
			sl.Insert(int64(v))
		}
		return r.collect(w, sl, int64(n), begin), nil

	case WorkloadInsertRand:
		sl, err := r.newList()
		if err != nil {
			return Result{}, err
		}
		values := rng.Perm(n)
		begin := r.clock.MonotonicElapsed()
		for _, v := range values {
			sl.Insert(int64(v))
		}
		return r.collect(w, sl, int64(n), begin), nil

	case WorkloadSearch:
		sl, err := r.newList()
		if err != nil {
			return Result{}, err
		}
		prefill(sl, rng, n)
		probes := make([]int64, n)
		for i := range probes {
			probes[i] = rng.Int63n(int64(n) * 4)
		}
		begin := r.clock.MonotonicElapsed()
		for _, p := range probes {
			sl.Search(p)
		}
		return r.collect(w, sl, int64(n), begin), nil

	case WorkloadGet:
		sl, err := r.newList()
		if err != nil {
			return Result{}, err
		}
		prefill(sl, rng, n)
		begin := r.clock.MonotonicElapsed()
		for i := 0; i < n; i++ {
			if _, err = sl.Get(int64(rng.Intn(n))); err != nil {
				return Result{}, err
			}
		}
		return r.collect(w, sl, int64(n), begin), nil

	case WorkloadRemove:
		sl, err := r.newList()
		if err != nil {
			return Result{}, err
		}
		values := prefill(sl, rng, n)
		rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		begin := r.clock.MonotonicElapsed()
		for _, v := range values {
			sl.Remove(v)
		}
		return r.collect(w, sl, int64(n), begin), nil

	case WorkloadRemoveAt:
		sl, err := r.newList()
		if err != nil {
			return Result{}, err
		}
		prefill(sl, rng, n)
		begin := r.clock.MonotonicElapsed()
		for sl.Len() > 0 {
			if _, err = sl.RemoveAt(rng.Int63n(sl.Len())); err != nil {
				return Result{}, err
			}
		}
		return r.collect(w, sl, int64(n), begin), nil

	case WorkloadMixed:
		sl, err := r.newList()
		if err != nil {
			return Result{}, err
		}
		prefill(sl, rng, n/2)
		begin := r.clock.MonotonicElapsed()
		for i := 0; i < n; i++ {
			v := rng.Int63n(int64(n) * 4)
			switch rng.Intn(4) {
			case 0, 1:
				sl.Insert(v)
			case 2:
				sl.Search(v)
			default:
				sl.Remove(v)
			}
		}
		return r.collect(w, sl, int64(n), begin), nil

	case WorkloadParallelSearch:
		return r.runParallelSearch(ctx, rng)
	}
	return Result{}, ErrUnknownWorkload
}

// runParallelSearch exercises the RWMutex delegator with concurrent
// readers scheduled on an ants pool.
func (r *Runner) runParallelSearch(ctx context.Context, rng *rand.Rand) (Result, error) {
	sl, err := r.newList(list.WithXSeglConcurrentSafe())
	if err != nil {
		return Result{}, err
	}
	prefill(sl, rng, r.cfg.N)

	pool, err := ants.NewPool(r.cfg.Readers, ants.WithLogger(xlog.NewAntsXLogger(r.logger)))
	if err != nil {
		return Result{}, err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		taskErrs error
	)
	perReader := r.cfg.N / r.cfg.Readers
	if perReader == 0 {
		perReader = 1
	}
	begin := r.clock.MonotonicElapsed()
	for i := 0; i < r.cfg.Readers; i++ {
		seed := r.cfg.Seed + int64(i) + 1
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			local := rand.New(rand.NewSource(seed))
			for j := 0; j < perReader; j++ {
				sl.Search(local.Int63n(int64(r.cfg.N) * 4))
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			taskErrs = multierr.Append(taskErrs, submitErr)
			mu.Unlock()
		}
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		taskErrs = multierr.Append(taskErrs, err)
	}
	res := r.collect(WorkloadParallelSearch, sl, int64(perReader*r.cfg.Readers), begin)
	return res, taskErrs
}

func (r *Runner) collect(w Workload, sl list.SegmentedList[int64], ops int64, begin time.Duration) Result {
	return Result{
		Workload: w,
		Ops:      ops,
		Elapsed:  r.clock.Since(begin),
		FinalLen: sl.Len(),
		Segments: sl.SegmentCount(),
	}
}
