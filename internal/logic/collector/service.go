package collector

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/metrics"
)

const tracerName = "github.com/skillcoder/mesos-task-metrics/internal/logic/collector"

// ServiceConfig holds the static collection settings.
type ServiceConfig struct {
	Targets  []Target
	Interval time.Duration
	// Schedule overrides Interval when set.
	Schedule Scheduler
	// Concurrency bounds how many targets are collected at once.
	Concurrency int
}

type Service struct {
	logger            *slog.Logger
	agents            AgentRepository
	containers        ContainerRepository
	emitter           *Emitter
	counters          *CounterStore
	cfg               ServiceConfig
	tracer            trace.Tracer
	ready             chan struct{}
	doneCh            chan struct{}
	inShutdown        atomic.Bool
	mu                sync.RWMutex
	lastCollectEndAt  time.Time
	lastCycleByTarget map[string]CycleResult
}

// New creates a new collector service.
func New(
	logger *slog.Logger,
	agents AgentRepository,
	containers ContainerRepository,
	emitter *Emitter,
	cfg ServiceConfig,
) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	return &Service{
		logger:            logger,
		agents:            agents,
		containers:        containers,
		emitter:           emitter,
		counters:          NewCounterStore(),
		cfg:               cfg,
		tracer:            otel.Tracer(tracerName),
		ready:             make(chan struct{}),
		doneCh:            make(chan struct{}),
		lastCycleByTarget: make(map[string]CycleResult, len(cfg.Targets)),
	}
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "collector service is shutting down, skipping start")

		return nil
	}

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the collector component
func (s *Service) Name() string {
	return "task-metrics-collector"
}

func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		age := s.getLastCollectAge()
		if age > 2*s.period() {
			return fmt.Errorf("last collection was too long ago: %s", age.Round(time.Second).String())
		}

		return nil
	default:
		return fmt.Errorf("collector service is not ready")
	}
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "collector service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "collector service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down collector service")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before collector loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "collector loop exited")
	}

	return nil
}

// Counters exposes the previous-cycle counters of one target.
func (s *Service) Counters(target Target) PreviousCounters {
	return s.counters.Snapshot(target.Name())
}

// LastResults returns the latest cycle of every target, ordered by target.
func (s *Service) LastResults() []CycleResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]CycleResult, 0, len(s.lastCycleByTarget))
	for _, result := range s.lastCycleByTarget {
		results = append(results, result)
	}

	slices.SortFunc(results, func(a, b CycleResult) int {
		return strings.Compare(a.Target, b.Target)
	})

	return results
}

// CollectTargetCommand runs one observation cycle of target. A failure of the
// state or statistics source aborts the cycle and leaves the stored counters
// of target untouched; a container runtime failure only drops container data.
func (s *Service) CollectTargetCommand(ctx context.Context, target Target) (result CycleResult, err error) {
	name := target.Name()
	logger := s.logger.With("controller", "CollectTargetCommand", "target", name)

	ctx, span := s.tracer.Start(ctx, "collect target", trace.WithAttributes(
		attribute.String("mesos.agent", name),
	))
	defer span.End()

	result = CycleResult{Target: name, StartedAt: time.Now()}

	defer func() {
		result.FinishedAt = time.Now()
		s.storeResult(result)
		metrics.ObserveCycleDuration(name, result.FinishedAt.Sub(result.StartedAt))
	}()

	prev := s.counters.Snapshot(name)

	state, statistics, samples, err := s.fetchSources(ctx, logger, target)
	if err != nil {
		result.Error = err.Error()

		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch sources")
		metrics.RecordCycle(name, metrics.CycleAborted)

		return result, err
	}

	next := applyRates(samples, prev)

	records, unresolved := Resolve(BuildTaskIndex(state), statistics, samples)
	for _, unresolvedErr := range unresolved {
		metrics.RecordUnresolvedTask(name)
		logger.WarnContext(ctx, "dropping task statistics", "reason", unresolvedErr)

		result.Unresolved = append(result.Unresolved, unresolvedErr.Error())
	}

	result.Tasks = len(records)
	result.Containers = len(samples)

	for i := range records {
		delivered, emitErr := s.emitter.EmitCommand(ctx, target, records[i])
		if emitErr != nil {
			logger.DebugContext(ctx, "task emitted with sink errors",
				"app", records[i].AppIdentifier,
				"reason", emitErr,
			)
		}

		result.Measurements += delivered
	}

	s.emitter.FlushCommand(ctx, target)
	s.counters.Replace(name, next)

	metrics.RecordCycle(name, metrics.CycleCompleted)
	span.SetAttributes(
		attribute.Int("mesos.tasks", result.Tasks),
		attribute.Int("mesos.measurements", result.Measurements),
	)

	logger.DebugContext(ctx, "target collected",
		"tasks", result.Tasks,
		"unresolved", len(result.Unresolved),
		"containers", result.Containers,
		"measurements", result.Measurements,
	)

	return result, nil
}

func (s *Service) fetchSources(
	ctx context.Context,
	logger *slog.Logger,
	target Target,
) (*State, []TaskStatistics, map[string]ContainerSample, error) {
	var (
		state      *State
		statistics []TaskStatistics
		samples    map[string]ContainerSample
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error

		state, err = s.agents.GetStateQuery(groupCtx, target)
		if err != nil {
			return fmt.Errorf("get state: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		var err error

		statistics, err = s.agents.GetStatisticsQuery(groupCtx, target)
		if err != nil {
			return fmt.Errorf("get statistics: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		samples = s.listContainerSamples(groupCtx, logger)

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, nil, nil, err
	}

	return state, statistics, samples, nil
}

func (s *Service) listContainerSamples(ctx context.Context, logger *slog.Logger) map[string]ContainerSample {
	if s.containers == nil {
		return map[string]ContainerSample{}
	}

	samples, err := s.containers.ListContainerSamplesQuery(ctx)
	if err != nil {
		logger.WarnContext(ctx, "container telemetry unavailable, continuing without it", "reason", err)

		return map[string]ContainerSample{}
	}

	if samples == nil {
		return map[string]ContainerSample{}
	}

	return samples
}

// CollectCommand runs one cycle for every configured target. Target failures
// are logged and never stop the other targets.
func (s *Service) CollectCommand(ctx context.Context) error {
	logger := s.logger.With("controller", "CollectCommand")

	group := new(errgroup.Group)
	group.SetLimit(s.cfg.Concurrency)

	for _, target := range s.cfg.Targets {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "context done, stopping collection")

			_ = group.Wait()

			return nil
		default:
		}

		group.Go(func() error {
			_, err := s.CollectTargetCommand(ctx, target)
			if err != nil {
				logger.ErrorContext(ctx, "target cycle aborted",
					"target", target.Name(),
					"reason", err,
				)
			}

			return nil
		})
	}

	_ = group.Wait()

	logger.DebugContext(ctx, "collection finished", "targets", len(s.cfg.Targets))

	return nil
}

// RunCommand runs the collector in a loop until ctx is cancelled.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("controller", "RunCommand")

	close(s.ready)

	for {
		err := s.CollectCommand(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "collect error", "reason", err)
		}

		s.setLastCollectEndTime()

		if !s.waitNext(ctx) {
			logger.InfoContext(ctx, "terminating main collector loop")

			return
		}
	}
}

func (s *Service) waitNext(ctx context.Context) bool {
	delay := s.cfg.Interval
	if s.cfg.Schedule != nil {
		delay = time.Until(s.cfg.Schedule.Next(time.Now()))
	}

	// A schedule without further occurrences yields the zero time.
	if delay <= 0 {
		delay = s.cfg.Interval
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// period is the expected time between two collections.
func (s *Service) period() time.Duration {
	if s.cfg.Schedule == nil {
		return s.cfg.Interval
	}

	first := s.cfg.Schedule.Next(time.Now())
	if first.IsZero() {
		return s.cfg.Interval
	}

	period := s.cfg.Schedule.Next(first).Sub(first)
	if period <= 0 {
		return s.cfg.Interval
	}

	return period
}

func (s *Service) storeResult(result CycleResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastCycleByTarget[result.Target] = result
}

func (s *Service) getLastCollectAge() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.lastCollectEndAt)
}

func (s *Service) setLastCollectEndTime() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastCollectEndAt = time.Now()
}
