package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/skillcoder/mesos-task-metrics/internal/adapters/outbound/docker"
	"github.com/skillcoder/mesos-task-metrics/internal/adapters/outbound/mesos"
	"github.com/skillcoder/mesos-task-metrics/internal/adapters/outbound/promsink"
	"github.com/skillcoder/mesos-task-metrics/internal/adapters/outbound/statsdsink"
	"github.com/skillcoder/mesos-task-metrics/internal/adapters/outbound/webhook"
	"github.com/skillcoder/mesos-task-metrics/internal/config"
	"github.com/skillcoder/mesos-task-metrics/internal/httpserver"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/cronparser"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/pinger"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/shutdown"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/tracing"
	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

const serviceName = "mesos-task-metrics"

type App struct {
	logger   *slog.Logger
	appState appstater
	// starters are started in order; pingers come last so the first round
	// sees every component started.
	starters []starter
}

// New creates a new application instance with all dependencies wired.
func New(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	pingers starter,
) (*App, error) {
	for _, warning := range cfg.Warnings {
		logger.WarnContext(ctx, "config file entry ignored", "entry", warning)
	}

	provider, err := tracing.New(ctx, tracing.Config{
		ServiceName: serviceName,
		Exporter:    cfg.OtelExporter,
		Endpoint:    cfg.OtelEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	dockerAdapter, err := docker.New(logger, cfg.DockerHost, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("create docker adapter: %w", err)
	}

	shutdowners := []shutdown.Shutdowner{provider, dockerAdapter}
	dispatchers := []collector.Dispatcher{promsink.New(prometheus.DefaultRegisterer)}

	if cfg.StatsdAddr != "" {
		statsdSink, err := newStatsdSink(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}

		dispatchers = append(dispatchers, statsdSink)
		shutdowners = append(shutdowners, statsdSink)
	}

	serviceCfg := collector.ServiceConfig{
		Targets:     cfg.Targets,
		Interval:    cfg.Interval,
		Concurrency: cfg.TargetConcurrency,
	}

	if cfg.Schedule != "" {
		schedule, err := cronparser.Parse(cfg.Schedule, "")
		if err != nil {
			return nil, fmt.Errorf("parse schedule: %w", err)
		}

		serviceCfg.Schedule = schedule
	}

	emitter := collector.NewEmitter(
		logger,
		cfg.Metrics,
		dispatchers,
		webhook.New(logger, cfg.RequestTimeout),
	)

	collectorService := collector.New(
		logger,
		mesos.New(logger, cfg.RequestTimeout),
		dockerAdapter,
		emitter,
		serviceCfg,
	)

	httpServer := httpserver.New(logger, appState, collectorService, cfg.HTTPPort)
	metricsServer := httpserver.NewMetricsServer(logger, prometheus.DefaultGatherer, cfg.MetricsPort)

	// Shutdown runs in reverse registration order: servers first, tracing last.
	shutdowners = append(shutdowners, pingers, collectorService, metricsServer, httpServer)
	for _, s := range shutdowners {
		if err := appState.RegisterShutdowner(s); err != nil {
			return nil, fmt.Errorf("register shutdowner: %w", err)
		}
	}

	pingables := []pinger.Pinger{
		collectorService,
		&nonCriticalPinger{Pinger: dockerAdapter},
		httpServer,
		metricsServer,
	}
	for _, p := range pingables {
		if err := appState.RegisterPinger(p); err != nil {
			return nil, fmt.Errorf("register pinger: %w", err)
		}
	}

	logger.InfoContext(ctx, "application wired",
		"targets", len(cfg.Targets),
		"sinks", len(dispatchers),
		"interval", cfg.Interval,
		"schedule", cfg.Schedule,
	)

	return &App{
		logger:   logger,
		appState: appState,
		starters: []starter{httpServer, metricsServer, collectorService, pingers},
	}, nil
}

func newStatsdSink(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*statsdsink.Sink, error) {
	group, err := statsdsink.ReadNodeGroup(cfg.NodeGroupFile)
	if err != nil {
		logger.WarnContext(ctx, "failed to read node group, using default",
			"path", cfg.NodeGroupFile,
			"reason", err,
		)
	}

	sink, err := statsdsink.New(cfg.StatsdAddr, []string{"group:" + group})
	if err != nil {
		return nil, fmt.Errorf("create statsd sink: %w", err)
	}

	return sink, nil
}

// Run starts every component and blocks until a quit signal or ctx ends,
// then shuts the application down.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	readyChans := make([]<-chan struct{}, 0, len(a.starters))

	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			cancel()

			return a.shutdown(originCtx, fmt.Errorf("start %s: %w", s.Name(), err))
		}

		readyChans = append(readyChans, s.Ready())
	}

	select {
	case <-allChannelsClose(ctx, a.logger, readyChans...):
	case sig := <-a.appState.Quit():
		a.logger.InfoContext(ctx, "signal received before ready", "signal", sig.String())
		cancel()

		return a.shutdown(originCtx, nil)
	case <-ctx.Done():
		return a.shutdown(originCtx, nil)
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		cancel()

		return a.shutdown(originCtx, fmt.Errorf("set running: %w", err))
	}

	a.logger.InfoContext(ctx, "application is running")

	select {
	case sig := <-a.appState.Quit():
		a.logger.InfoContext(ctx, "signal received, shutting down", "signal", sig.String())
	case <-ctx.Done():
		a.logger.InfoContext(ctx, "context done, shutting down")
	}

	cancel()

	return a.shutdown(originCtx, nil)
}

func (a *App) shutdown(ctx context.Context, cause error) error {
	err := a.appState.Shutdown(context.WithoutCancel(ctx))
	if cause != nil {
		return cause
	}

	if err != nil {
		return fmt.Errorf("shutdown application: %w", err)
	}

	return nil
}

// allChannelsClose returns a channel closed once every chans entry is closed
// or ctx ends.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	var wg sync.WaitGroup

	for _, ch := range chans {
		wg.Add(1)

		go func() {
			defer wg.Done()

			select {
			case <-ch:
			case <-ctx.Done():
			}
		}()
	}

	go func() {
		wg.Wait()

		if ctx.Err() != nil {
			logger.DebugContext(ctx, "context done while waiting for components")
		}

		close(out)
	}()

	return out
}
