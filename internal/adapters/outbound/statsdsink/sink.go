package statsdsink

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

const (
	sinkName         = "statsd"
	nameSeparator    = "."
	defaultNodeGroup = "default"
	sampleRate       = 1
)

// Sink sends every measurement as a DogStatsD gauge.
type Sink struct {
	client statsd.ClientInterface
}

// New creates a DogStatsD sink sending to addr with the given global tags.
func New(addr string, tags []string) (*Sink, error) {
	client, err := statsd.New(addr,
		statsd.WithTags(tags),
		statsd.WithoutTelemetry(),
	)
	if err != nil {
		return nil, fmt.Errorf("create statsd client: %w", err)
	}

	return NewWithClient(client), nil
}

func NewWithClient(client statsd.ClientInterface) *Sink {
	return &Sink{client: client}
}

var _ collector.Dispatcher = (*Sink)(nil)

func (s *Sink) Name() string {
	return sinkName
}

func (s *Sink) DispatchCommand(_ context.Context, measurement collector.Measurement) error {
	name := strings.Join([]string{
		measurement.Plugin,
		measurement.PluginInstance,
		measurement.TypeInstance,
	}, nameSeparator)

	tags := []string{
		"host:" + measurement.Host,
		"type:" + measurement.Type,
	}

	err := s.client.Gauge(name, float64(measurement.Value), tags, sampleRate)
	if err != nil {
		return fmt.Errorf("send gauge %s: %w", name, err)
	}

	return nil
}

func (s *Sink) Shutdown(_ context.Context) error {
	err := s.client.Close()
	if err != nil {
		return fmt.Errorf("close statsd client: %w", err)
	}

	return nil
}

// ReadNodeGroup returns the first line of path, or "default" when the file
// does not exist or is empty.
func ReadNodeGroup(path string) (string, error) {
	if path == "" {
		return defaultNodeGroup, nil
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultNodeGroup, nil
	}

	if err != nil {
		return "", fmt.Errorf("open node group file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read node group file: %w", err)
		}

		return defaultNodeGroup, nil
	}

	group := strings.TrimSpace(scanner.Text())
	if group == "" {
		return defaultNodeGroup, nil
	}

	return group, nil
}
