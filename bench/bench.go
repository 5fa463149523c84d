// Package bench drives measured workloads against the segmented
// sorted list through its public contract only, the same way any
// external consumer would.
package bench

import (
	"errors"
	"time"
)

type Workload string

const (
	WorkloadInsertSeq      Workload = "insert-seq"
	WorkloadInsertRand     Workload = "insert-rand"
	WorkloadSearch         Workload = "search"
	WorkloadGet            Workload = "get"
	WorkloadRemove         Workload = "remove"
	WorkloadRemoveAt       Workload = "remove-at"
	WorkloadMixed          Workload = "mixed"
	WorkloadParallelSearch Workload = "parallel-search"
)

// DefaultWorkloads runs everything, in a stable report order.
func DefaultWorkloads() []Workload {
	return []Workload{
		WorkloadInsertSeq,
		WorkloadInsertRand,
		WorkloadSearch,
		WorkloadGet,
		WorkloadRemove,
		WorkloadRemoveAt,
		WorkloadMixed,
		WorkloadParallelSearch,
	}
}

var (
	ErrUnknownWorkload = errors.New("[bench] unknown workload")
	errBadConfig       = errors.New("[bench] n and load factor must be positive")
)

type Config struct {
	// N is the element count per workload.
	N int
	// LoadFactor is forwarded to the list under test.
	LoadFactor int
	// Seed makes runs reproducible.
	Seed int64
	// Readers is the pool size for the parallel-search workload.
	Readers int
	// Workloads selects what to run; empty means DefaultWorkloads.
	Workloads []Workload
}

type Result struct {
	Workload Workload
	// Ops is the number of timed operations.
	Ops int64
	// Elapsed covers the timed section only; setup is excluded.
	Elapsed time.Duration
	// FinalLen and Segments describe the list after the workload.
	FinalLen int64
	Segments int64
}

func (r Result) OpsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}
