package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// GraphQLStats counts executed GraphQL requests and how many of them produced
// at least one error in the response envelope.
type GraphQLStats struct {
	Requests Counter
	Errors   Counter
}

type Snapshot struct {
	Requests uint64 `json:"requests"`
	Errors   uint64 `json:"errors"`
}

func (s *GraphQLStats) Snapshot() Snapshot {
	return Snapshot{
		Requests: s.Requests.Load(),
		Errors:   s.Errors.Load(),
	}
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
