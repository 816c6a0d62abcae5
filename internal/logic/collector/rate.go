package collector

import (
	"maps"
	"sync"
)

// CPUPercent derives utilization from two consecutive counter samples.
// A missing previous sample, a counter reset or a zero system delta yield 0.
func CPUPercent(cur, prev Counters, hasPrev bool, cores int) float64 {
	if !hasPrev || cores <= 0 {
		return 0
	}

	if cur.Total < prev.Total || cur.System <= prev.System {
		return 0
	}

	totalDelta := float64(cur.Total - prev.Total)
	systemDelta := float64(cur.System - prev.System)

	return totalDelta / systemDelta * cpuPercentScale * float64(cores)
}

// CounterStore keeps the previous-cycle counters of every target.
// Each target namespace is replaced wholesale, never updated in place.
type CounterStore struct {
	mu      sync.RWMutex
	targets map[string]PreviousCounters
}

// NewCounterStore returns an empty store.
func NewCounterStore() *CounterStore {
	return &CounterStore{
		targets: make(map[string]PreviousCounters),
	}
}

// Snapshot returns a copy of the counters stored for target.
func (s *CounterStore) Snapshot(target string) PreviousCounters {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.targets[target])
}

// Replace swaps the counters of target for next.
func (s *CounterStore) Replace(target string, next PreviousCounters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.targets[target] = maps.Clone(next)
}

// applyRates fills CPUPercent of every sample from prev and returns the
// counters to store for the next cycle.
func applyRates(
	samples map[string]ContainerSample,
	prev PreviousCounters,
) PreviousCounters {
	next := make(PreviousCounters, len(samples))

	for id, sample := range samples {
		last, ok := prev[id]
		cur := sample.Counters()

		sample.CPUPercent = CPUPercent(cur, last, ok, sample.Cores())
		samples[id] = sample
		next[id] = cur
	}

	return next
}
