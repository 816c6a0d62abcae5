package collector

const (
	// MeasurementPlugin and MeasurementType identify every dispatched measurement.
	MeasurementPlugin = "task-metrics"
	MeasurementType   = "gauge"

	// AppLabelKey is the task label that overrides the framework/task naming.
	AppLabelKey = "collectd_app"

	// TaskIDEnvKey is matched case-insensitively against container env vars.
	TaskIDEnvKey = "MESOS_TASK_ID"

	// containerNameSeparator splits mesos-<agent>.<container-uuid> docker names.
	containerNameSeparator = "."

	// cpuPercentScale multiplies the usage ratio of each core.
	cpuPercentScale = 1000

	// identifierSeparator joins the two halves of an app identifier.
	identifierSeparator = "."
	identifierReplacer  = "_"
)

// Metric names produced from container samples.
const (
	MetricDockerMemoryUsage  = "docker_memory_usage"
	MetricDockerMemoryLimit  = "docker_memory_limit"
	MetricDockerCPUTotal     = "docker_cpu_total"
	MetricDockerCPUSystem    = "docker_cpu_system"
	MetricDockerCPUUser      = "docker_cpu_user"
	MetricDockerCPUKernel    = "docker_cpu_kernel"
	MetricDockerCPUPercent   = "docker_cpu_percent"
	MetricDockerCPUThrottled = "docker_cpu_throttled_time"
)

// DefaultRecognizedMetrics maps every emitted metric to its scale multiplier.
// Mesos reports CPU figures in seconds, scaled to milliseconds here.
func DefaultRecognizedMetrics() map[string]int64 {
	return map[string]int64{
		"cpus_limit":               1000,
		"cpus_system_time_secs":    1000,
		"cpus_user_time_secs":      1000,
		"cpus_throttled_time_secs": 1000,
		"cpus_nr_periods":          1,
		"cpus_nr_throttled":        1,
		"mem_limit_bytes":          1,
		"mem_rss_bytes":            1,
		"mem_total_bytes":          1,
		MetricDockerCPUTotal:       1,
		MetricDockerCPUSystem:      1,
		MetricDockerCPUUser:        1,
		MetricDockerCPUKernel:      1,
		MetricDockerCPUPercent:     1,
		MetricDockerCPUThrottled:   1,
		MetricDockerMemoryLimit:    1,
		MetricDockerMemoryUsage:    1,
	}
}
