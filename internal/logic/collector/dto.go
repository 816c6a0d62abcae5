package collector

import (
	"strconv"
	"time"
)

// Target is one Mesos agent to poll.
type Target struct {
	Host         string
	Port         int
	PostEndpoint string
}

// Name namespaces per-target state and labels.
func (t Target) Name() string {
	return t.Host + ":" + strconv.Itoa(t.Port)
}

// State is the subset of the agent topology used for identity resolution.
type State struct {
	Frameworks []Framework
}

type Framework struct {
	ID        string
	Name      string
	Executors []Executor
}

type Executor struct {
	ID        string
	Container string
	Tasks     []Task
}

type Task struct {
	ID     string
	Name   string
	Labels map[string]string
}

// TaskKey joins the state and statistics snapshots.
type TaskKey struct {
	FrameworkID string
	TaskID      string
}

// TaskDescriptor is the per-cycle metadata of a running task.
type TaskDescriptor struct {
	FrameworkName string
	TaskName      string
	Labels        map[string]string
	// ContainerRef is empty when the executor reports no container.
	ContainerRef string
}

// TaskStatistics is one entry of the agent statistics snapshot.
type TaskStatistics struct {
	FrameworkID string
	SourceID    string
	Counters    map[string]float64
}

// ContainerSample holds the runtime counters of one running container.
type ContainerSample struct {
	TaskIdentity     string
	ContainerID      string
	ContainerName    string
	MemoryUsage      uint64
	MemoryLimit      uint64
	CPUTotalUsage    uint64
	CPUSystemUsage   uint64
	CPUUserMode      uint64
	CPUKernelMode    uint64
	PerCPUUsage      []uint64
	OnlineCPUs       uint32
	CPUThrottledTime uint64
	CPUPercent       float64
}

// Cores is the number of cores the counters were sampled over.
func (c ContainerSample) Cores() int {
	if n := len(c.PerCPUUsage); n > 0 {
		return n
	}

	return int(c.OnlineCPUs)
}

// Counters returns the monotonic pair kept across cycles.
func (c ContainerSample) Counters() Counters {
	return Counters{
		Total:  c.CPUTotalUsage,
		System: c.CPUSystemUsage,
	}
}

// Metrics renders the sample as named values for merging.
func (c ContainerSample) Metrics() map[string]float64 {
	return map[string]float64{
		MetricDockerMemoryUsage:  float64(c.MemoryUsage),
		MetricDockerMemoryLimit:  float64(c.MemoryLimit),
		MetricDockerCPUTotal:     float64(c.CPUTotalUsage),
		MetricDockerCPUSystem:    float64(c.CPUSystemUsage),
		MetricDockerCPUUser:      float64(c.CPUUserMode),
		MetricDockerCPUKernel:    float64(c.CPUKernelMode),
		MetricDockerCPUPercent:   c.CPUPercent,
		MetricDockerCPUThrottled: float64(c.CPUThrottledTime),
	}
}

// Counters is the previous-cycle CPU counter pair of one task.
type Counters struct {
	Total  uint64
	System uint64
}

// PreviousCounters is keyed by resolved task identifier.
type PreviousCounters map[string]Counters

// MergedRecord is the per-task join result handed to the emitter.
type MergedRecord struct {
	AppIdentifier string
	Descriptor    TaskDescriptor
	Metrics       map[string]float64
}

// Measurement is one scalar dispatched to a primary sink. Host is the
// host:port of the observed agent.
type Measurement struct {
	Host           string
	Plugin         string
	Type           string
	PluginInstance string
	TypeInstance   string
	Value          int64
}

// TaskReport is the aggregate webhook payload of one task.
type TaskReport struct {
	FrameworkName string
	TaskName      string
	Host          string
	Timestamp     time.Time
	Metrics       map[string]int64
}

// CycleResult summarizes one target cycle.
type CycleResult struct {
	Target       string    `json:"target"`
	StartedAt    time.Time `json:"startedAt"`
	FinishedAt   time.Time `json:"finishedAt"`
	Tasks        int       `json:"tasks"`
	Unresolved   []string  `json:"unresolved,omitempty"`
	Containers   int       `json:"containers"`
	Measurements int       `json:"measurements"`
	Error        string    `json:"error,omitempty"`
}
