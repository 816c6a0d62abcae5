package collector_test

import (
	"context"
	"log/slog"
	"sync"

	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

var testLogger = slog.New(slog.DiscardHandler)

type recordingDispatcher struct {
	mu           sync.Mutex
	name         string
	err          error
	measurements []collector.Measurement
	flushed      []string
}

func newRecordingDispatcher(name string) *recordingDispatcher {
	return &recordingDispatcher{name: name}
}

func (d *recordingDispatcher) Name() string {
	return d.name
}

func (d *recordingDispatcher) DispatchCommand(_ context.Context, measurement collector.Measurement) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return d.err
	}

	d.measurements = append(d.measurements, measurement)

	return nil
}

func (d *recordingDispatcher) FlushCycle(_ context.Context, host string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.flushed = append(d.flushed, host)
}

func (d *recordingDispatcher) values() map[string]map[string]int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	values := make(map[string]map[string]int64)

	for _, m := range d.measurements {
		if values[m.PluginInstance] == nil {
			values[m.PluginInstance] = make(map[string]int64)
		}

		values[m.PluginInstance][m.TypeInstance] = m.Value
	}

	return values
}

func (d *recordingDispatcher) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.measurements = nil
}
