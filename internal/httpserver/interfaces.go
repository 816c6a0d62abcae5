package httpserver

import (
	"time"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/appstate"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/pinger"
	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

// cycleReporter exposes the latest cycle of every observed agent.
type cycleReporter interface {
	LastResults() []collector.CycleResult
}
