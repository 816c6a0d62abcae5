package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/metrics"
)

// Emitter turns merged records into scaled measurements and delivers them.
type Emitter struct {
	logger      *slog.Logger
	recognized  map[string]int64
	names       []string
	dispatchers []Dispatcher
	publisher   Publisher
	now         func() time.Time
}

// NewEmitter creates an emitter over the recognized-metric table.
// A nil publisher disables webhook delivery.
func NewEmitter(
	logger *slog.Logger,
	recognized map[string]int64,
	dispatchers []Dispatcher,
	publisher Publisher,
) *Emitter {
	return &Emitter{
		logger:      logger,
		recognized:  maps.Clone(recognized),
		names:       slices.Sorted(maps.Keys(recognized)),
		dispatchers: dispatchers,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Scale returns the recognized metrics of record, floored after scaling.
func (e *Emitter) Scale(record MergedRecord) map[string]int64 {
	scaled := make(map[string]int64, len(e.names))

	for _, name := range e.names {
		raw, ok := record.Metrics[name]
		if !ok {
			continue
		}

		scaled[name] = e.floorClamped(name, raw*float64(e.recognized[name]))
	}

	return scaled
}

// floorClamped floors v into the int64 range; NaN becomes 0.
func (e *Emitter) floorClamped(name string, v float64) int64 {
	switch {
	case math.IsNaN(v):
		e.logger.Debug("scaled metric is not a number", "metric", name)

		return 0
	case v >= math.MaxInt64:
		e.logger.Debug("scaled metric overflows, clamping", "metric", name, "value", v)

		return math.MaxInt64
	case v <= math.MinInt64:
		e.logger.Debug("scaled metric overflows, clamping", "metric", name, "value", v)

		return math.MinInt64
	default:
		return int64(math.Floor(v))
	}
}

// EmitCommand dispatches every recognized metric of record to the primary
// sinks, then publishes the aggregate report when the target has a webhook.
// It returns the number of measurements accepted by at least one sink.
func (e *Emitter) EmitCommand(
	ctx context.Context,
	target Target,
	record MergedRecord,
) (int, error) {
	logger := e.logger.With("controller", "EmitCommand", "target", target.Name(), "app", record.AppIdentifier)

	scaled := e.Scale(record)
	delivered := 0

	var errs error

	for _, name := range e.names {
		value, ok := scaled[name]
		if !ok {
			continue
		}

		measurement := Measurement{
			Host:           target.Name(),
			Plugin:         MeasurementPlugin,
			Type:           MeasurementType,
			PluginInstance: record.AppIdentifier,
			TypeInstance:   name,
			Value:          value,
		}

		accepted := false

		for _, dispatcher := range e.dispatchers {
			err := dispatcher.DispatchCommand(ctx, measurement)
			if err != nil {
				metrics.RecordSinkFailure(dispatcher.Name())
				logger.ErrorContext(ctx, "dispatch measurement error",
					"sink", dispatcher.Name(),
					"metric", name,
					"reason", err,
				)

				errs = errors.Join(errs, fmt.Errorf("%w: %s: %w", ErrSinkDeliveryFailed, dispatcher.Name(), err))

				continue
			}

			accepted = true
		}

		if accepted {
			delivered++
		}
	}

	if e.publisher == nil || target.PostEndpoint == "" {
		return delivered, errs
	}

	report := TaskReport{
		FrameworkName: record.Descriptor.FrameworkName,
		TaskName:      record.Descriptor.TaskName,
		Host:          target.Host,
		Timestamp:     e.now().UTC(),
		Metrics:       scaled,
	}

	err := e.publisher.PublishCommand(ctx, target.PostEndpoint, report)
	if err != nil {
		metrics.RecordSinkFailure("webhook")
		logger.ErrorContext(ctx, "publish task report error",
			"endpoint", target.PostEndpoint,
			"reason", err,
		)

		errs = errors.Join(errs, fmt.Errorf("%w: webhook: %w", ErrSinkDeliveryFailed, err))
	}

	return delivered, errs
}

// FlushCommand notifies sinks that a target cycle finished emitting.
func (e *Emitter) FlushCommand(ctx context.Context, target Target) {
	for _, dispatcher := range e.dispatchers {
		if flusher, ok := dispatcher.(cycleFlusher); ok {
			flusher.FlushCycle(ctx, target.Name())
		}
	}
}
