package pinger

import (
	"sync"
	"time"

	"github.com/VividCortex/ewma"
)

// ErrorSnapshot represents a snapshot of an error occurrence
type ErrorSnapshot struct {
	Timestamp time.Time
	Latency   time.Duration
	Error     error
}

// latencyTracker keeps a moving average of ping latencies.
type latencyTracker struct {
	count   int
	last    time.Duration
	max     time.Duration
	average ewma.MovingAverage
}

func newLatencyTracker() *latencyTracker {
	return &latencyTracker{average: ewma.NewMovingAverage()}
}

func (lt *latencyTracker) add(d time.Duration) {
	lt.count++
	lt.last = d
	lt.max = max(lt.max, d)
	lt.average.Add(float64(d))
}

func (lt *latencyTracker) metrics() LatencyMetrics {
	return LatencyMetrics{
		Count:   lt.count,
		Last:    lt.last,
		Max:     lt.max,
		Average: time.Duration(lt.average.Value()),
	}
}

// Stats tracks statistics for a single pinger
type Stats struct {
	mu                sync.RWMutex
	name              string
	lastRun           time.Time
	lastError         error
	lastErrorSnapshot *ErrorSnapshot
	success           *latencyTracker
	errors            *latencyTracker
}

// NewStats creates statistics for the pinger called name.
func NewStats(name string) *Stats {
	return &Stats{
		name:    name,
		success: newLatencyTracker(),
		errors:  newLatencyTracker(),
	}
}

// Observe records the outcome of one ping.
func (s *Stats) Observe(at time.Time, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRun = at

	if err != nil {
		s.lastError = err
		s.lastErrorSnapshot = &ErrorSnapshot{
			Timestamp: at,
			Latency:   latency,
			Error:     err,
		}
		s.errors.add(latency)

		return
	}

	s.lastError = nil
	s.success.add(latency)
}

// LatencyMetrics contains calculated latency statistics. Average is an
// exponentially weighted moving average.
type LatencyMetrics struct {
	Count   int
	Last    time.Duration
	Max     time.Duration
	Average time.Duration
}

// Statistics contains computed statistics for a pinger
type Statistics struct {
	IsReady           bool
	IsHealthy         bool
	LastRun           time.Time
	LastError         error
	LastErrorSnapshot *ErrorSnapshot
	SuccessCount      int
	ErrorCount        int
	SuccessLatencies  LatencyMetrics
	ErrorLatencies    LatencyMetrics
}

// snapshot computes statistics honoring the criticality flags of info.
func (s *Stats) snapshot(info *pingerInfo) *Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lastErrorSnapshot *ErrorSnapshot
	if s.lastErrorSnapshot != nil {
		snapshot := *s.lastErrorSnapshot
		lastErrorSnapshot = &snapshot
	}

	// Non-critical pingers never affect readiness or health.
	isReady := !info.readyCritical || s.lastError == nil
	isHealthy := !info.healthCritical || s.lastError == nil

	return &Statistics{
		IsReady:           isReady,
		IsHealthy:         isHealthy,
		LastRun:           s.lastRun,
		LastError:         s.lastError,
		LastErrorSnapshot: lastErrorSnapshot,
		SuccessCount:      s.success.count,
		ErrorCount:        s.errors.count,
		SuccessLatencies:  s.success.metrics(),
		ErrorLatencies:    s.errors.metrics(),
	}
}
