package errkit

import "time"

// Clock supplies millisecond timestamps to RetryCollector. Tests supply a
// fake implementation instead of calling time.Now directly, the same
// testability seam wzprof's CPUProfiler gets from a replaceable time
// field rather than an inline time.Now call.
type Clock interface {
	NowMillis() int64
}

// systemClock is the default Clock, backed by the wall clock.
type systemClock struct{}

func (systemClock) NowMillis() int64 { return time.Now().UnixMilli() }

// SystemClock is the Clock RetryCollector uses when none is supplied.
var SystemClock Clock = systemClock{}
