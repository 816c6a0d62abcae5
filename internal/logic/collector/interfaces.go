package collector

import (
	"context"
	"time"
)

// AgentRepository is the port to the Mesos agent HTTP endpoints.
type AgentRepository interface {
	GetStateQuery(
		ctx context.Context,
		target Target,
	) (*State, error)

	GetStatisticsQuery(
		ctx context.Context,
		target Target,
	) ([]TaskStatistics, error)
}

// ContainerRepository is the port to the container runtime.
// Samples are keyed by resolved task identity; CPUPercent is left zero.
type ContainerRepository interface {
	ListContainerSamplesQuery(
		ctx context.Context,
	) (map[string]ContainerSample, error)
}

// Dispatcher is a primary sink receiving one measurement at a time.
type Dispatcher interface {
	Name() string

	DispatchCommand(
		ctx context.Context,
		measurement Measurement,
	) error
}

// Publisher delivers aggregate task reports to a webhook endpoint.
type Publisher interface {
	PublishCommand(
		ctx context.Context,
		endpoint string,
		report TaskReport,
	) error
}

// cycleFlusher is an optional Dispatcher extension called once a target
// cycle finished emitting.
type cycleFlusher interface {
	FlushCycle(ctx context.Context, host string)
}

// Scheduler yields the next collection time after a finished collection.
type Scheduler interface {
	Next(after time.Time) time.Time
}
