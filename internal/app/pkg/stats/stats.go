package stats

import "go.uber.org/atomic"

// RelayStats counts relay outcomes for the health endpoint.
type RelayStats struct {
	Received atomic.Int64
	Accepted atomic.Int64
	Skipped  atomic.Int64
	Failed   atomic.Int64
}

func New() *RelayStats {
	return &RelayStats{}
}

// Snapshot returns the current counter values.
func (s *RelayStats) Snapshot() map[string]int64 {
	return map[string]int64{
		"received": s.Received.Load(),
		"accepted": s.Accepted.Load(),
		"skipped":  s.Skipped.Load(),
		"failed":   s.Failed.Load(),
	}
}
