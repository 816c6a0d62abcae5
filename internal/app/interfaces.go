package app

import (
	"context"
	"os"
	"time"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/appstate"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/pinger"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/shutdown"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(pinger pinger.Pinger) error
	GetAllStats() map[string]*pinger.Statistics
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	GetStartTime() time.Time
	GetState() appstate.State
	GetUptime() time.Duration
	IsHealthy() bool
	IsReady() bool
	Shutdown(ctx context.Context) error
}

// starter is a component running a background loop.
type starter interface {
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
}

type appServer interface {
	pinger.Pinger
	starter
}
