package docker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	jsoniter "github.com/json-iterator/go"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/metrics"
	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

// Reasons a container is left out of a sample set.
const (
	skipReasonInspect      = "inspect"
	skipReasonUnidentified = "unidentified"
	skipReasonStats        = "stats"
	skipReasonDecode       = "decode"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dockerClient is the subset of the Docker Engine API in use.
type dockerClient interface {
	ContainerList(ctx context.Context, options types.ContainerListOptions) ([]types.Container, error)
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
	ContainerStats(ctx context.Context, containerID string, stream bool) (types.ContainerStats, error)
	Ping(ctx context.Context) (types.Ping, error)
	Close() error
}

type Adapter struct {
	logger  *slog.Logger
	client  dockerClient
	timeout time.Duration
}

// New creates a Docker Engine adapter for host. The API version is negotiated
// on first use.
func New(logger *slog.Logger, host string, timeout time.Duration) (*Adapter, error) {
	cli, err := client.NewClientWithOpts(
		client.WithHost(host),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}

	return newAdapter(logger, cli, timeout), nil
}

func newAdapter(logger *slog.Logger, cli dockerClient, timeout time.Duration) *Adapter {
	return &Adapter{
		logger:  logger,
		client:  cli,
		timeout: timeout,
	}
}

var _ collector.ContainerRepository = (*Adapter)(nil)

// Name returns the name of the docker component
func (a *Adapter) Name() string {
	return "docker"
}

// Ping reports whether the Docker Engine answers.
func (a *Adapter) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	_, err := a.client.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping docker: %w", err)
	}

	return nil
}

func (a *Adapter) Shutdown(_ context.Context) error {
	err := a.client.Close()
	if err != nil {
		return fmt.Errorf("close docker client: %w", err)
	}

	return nil
}

// ListContainerSamplesQuery samples every running container that can be
// attributed to a task. Per-container failures are logged and skipped.
func (a *Adapter) ListContainerSamplesQuery(
	ctx context.Context,
) (map[string]collector.ContainerSample, error) {
	listCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	containers, err := a.client.ContainerList(listCtx, types.ContainerListOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: list containers: %w", collector.ErrSourceUnreachable, err)
	}

	samples := make(map[string]collector.ContainerSample, len(containers))

	for i := range containers {
		sample, ok := a.sampleContainer(ctx, &containers[i])
		if !ok {
			continue
		}

		if _, exists := samples[sample.TaskIdentity]; exists {
			a.logger.DebugContext(ctx, "duplicate task identity, keeping the latest container",
				"identity", sample.TaskIdentity,
				"container", sample.ContainerName,
			)
		}

		samples[sample.TaskIdentity] = sample
	}

	return samples, nil
}

func (a *Adapter) sampleContainer(
	ctx context.Context,
	container *types.Container,
) (collector.ContainerSample, bool) {
	name := containerName(container)
	logger := a.logger.With("container", name)

	env, err := a.containerEnv(ctx, container.ID)
	if err != nil {
		metrics.RecordSkippedContainer(skipReasonInspect)
		logger.WarnContext(ctx, "skipping container", "reason", err)

		return collector.ContainerSample{}, false
	}

	identity, ok := resolveIdentity(name, env)
	if !ok {
		metrics.RecordSkippedContainer(skipReasonUnidentified)
		logger.DebugContext(ctx, "skipping container without task identity")

		return collector.ContainerSample{}, false
	}

	stats, reason, err := a.firstStats(ctx, container.ID)
	if err != nil {
		metrics.RecordSkippedContainer(reason)
		logger.WarnContext(ctx, "skipping container", "reason", err)

		return collector.ContainerSample{}, false
	}

	return toDomainSample(identity, container.ID, name, stats), true
}

func (a *Adapter) containerEnv(ctx context.Context, id string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	inspection, err := a.client.ContainerInspect(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("inspect container: %w", err)
	}

	if inspection.Config == nil {
		return nil, nil
	}

	return inspection.Config.Env, nil
}

// firstStats reads the first sample of the stats stream and closes it.
func (a *Adapter) firstStats(ctx context.Context, id string) (*types.StatsJSON, string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.ContainerStats(ctx, id, true)
	if err != nil {
		return nil, skipReasonStats, fmt.Errorf("get container stats: %w", err)
	}
	defer resp.Body.Close()

	var stats types.StatsJSON

	err = json.NewDecoder(resp.Body).Decode(&stats)
	if err != nil {
		return nil, skipReasonDecode, fmt.Errorf("decode container stats: %w", err)
	}

	return &stats, "", nil
}
