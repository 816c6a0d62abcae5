package promsink

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

const sinkName = "prometheus"

type seriesKey struct {
	host           string
	plugin         string
	pluginInstance string
	typeInstance   string
}

func (k seriesKey) labelValues() []string {
	return []string{k.host, k.plugin, k.pluginInstance, k.typeInstance}
}

// Sink exposes measurements as a gauge family. Series of a host that were
// not refreshed during its last cycle are removed on flush.
type Sink struct {
	gauge   *prometheus.GaugeVec
	mu      sync.Mutex
	pending map[string]sets.Set[seriesKey]
	live    map[string]sets.Set[seriesKey]
}

// New registers the task gauge family on registerer.
func New(registerer prometheus.Registerer) *Sink {
	gauge := promauto.With(registerer).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mesos_task_metric",
			Help: "Scaled task metric observed on a Mesos agent.",
		},
		[]string{"host", "plugin", "plugin_instance", "type_instance"},
	)

	return &Sink{
		gauge:   gauge,
		pending: make(map[string]sets.Set[seriesKey]),
		live:    make(map[string]sets.Set[seriesKey]),
	}
}

var _ collector.Dispatcher = (*Sink)(nil)

func (s *Sink) Name() string {
	return sinkName
}

func (s *Sink) DispatchCommand(_ context.Context, measurement collector.Measurement) error {
	key := seriesKey{
		host:           measurement.Host,
		plugin:         measurement.Plugin,
		pluginInstance: measurement.PluginInstance,
		typeInstance:   measurement.TypeInstance,
	}

	s.gauge.WithLabelValues(key.labelValues()...).Set(float64(measurement.Value))

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[key.host] == nil {
		s.pending[key.host] = sets.New[seriesKey]()
	}

	s.pending[key.host].Insert(key)

	return nil
}

// FlushCycle drops the series of host that the finished cycle did not set.
func (s *Sink) FlushCycle(_ context.Context, host string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refreshed := s.pending[host]
	if refreshed == nil {
		refreshed = sets.New[seriesKey]()
	}

	for key := range s.live[host].Difference(refreshed) {
		s.gauge.DeleteLabelValues(key.labelValues()...)
	}

	s.live[host] = refreshed
	delete(s.pending, host)
}

func (s *Sink) series(host string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.live[host].Len()
}
