package config

import "time"

// Env key constants. All configuration env vars use the TASKMETRICS_ prefix;
// duration values support explicit units (e.g. 500ms, 10s, 1m).

// Path to the YAML file with targets and metric overrides.
const envKeyConfigFile = "TASKMETRICS_CONFIG_FILE"

// Poll interval. Units: ms, s, m (e.g. 10s).
const (
	envKeyInterval = "TASKMETRICS_INTERVAL"
	envMinInterval = time.Second
)

// Optional cron spec replacing the interval (e.g. "*/30 * * * * *", "@every 15s").
const envKeySchedule = "TASKMETRICS_SCHEDULE"

// Timeout of every request to an agent, the docker engine and webhooks.
const (
	envKeyRequestTimeout = "TASKMETRICS_REQUEST_TIMEOUT"
	envMinRequestTimeout = 100 * time.Millisecond
)

// Number of agents collected at once.
const (
	envKeyTargetConcurrency = "TASKMETRICS_TARGET_CONCURRENCY"
	envMinTargetConcurrency = 1
)

// Docker Engine endpoint.
const envKeyDockerHost = "TASKMETRICS_DOCKER_HOST"

// DogStatsD address; empty disables the statsd sink.
const envKeyStatsdAddr = "TASKMETRICS_STATSD_ADDR"

// File holding the node group sent as a statsd tag.
const envKeyNodeGroupFile = "TASKMETRICS_NODE_GROUP_FILE"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "TASKMETRICS_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "TASKMETRICS_LOG_FORMAT"

// Port for health/readiness HTTP server.
const envKeyHTTPPort = "TASKMETRICS_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "TASKMETRICS_METRICS_PORT"

// Health pinger interval.
const (
	envKeyPingerInterval = "TASKMETRICS_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Trace exporter: none, stdout or otlphttp.
const envKeyOtelExporter = "TASKMETRICS_OTEL_EXPORTER"

// OTLP/HTTP collector URL (e.g. http://localhost:4318).
const envKeyOtelEndpoint = "TASKMETRICS_OTEL_ENDPOINT"

// File whose presence at startup makes the process terminate itself.
const envKeyTerminationFile = "TASKMETRICS_TERMINATION_FILE"

// Single agent polled when the config file defines no targets.
const (
	envKeyHost         = "TASKMETRICS_HOST"
	envKeyPort         = "TASKMETRICS_PORT"
	envKeyPostEndpoint = "TASKMETRICS_POST_ENDPOINT"
)

// Defaults.
const (
	defaultInterval          = 10 * time.Second
	defaultRequestTimeout    = 5 * time.Second
	defaultTargetConcurrency = 1
	defaultDockerHost        = "tcp://127.0.0.1:2375"
	defaultNodeGroupFile     = "/etc/statsd-node-group"
	defaultLogLevel          = "info"
	defaultLogFormat         = "json"
	defaultHTTPPort          = "8080"
	defaultMetricsPort       = "9090"
	defaultPingerInterval    = 10 * time.Second
	defaultHost              = "127.0.0.1"
	defaultPort              = 5051
)

// Trace exporters.
const (
	OtelExporterNone     = "none"
	OtelExporterStdout   = "stdout"
	OtelExporterOTLPHTTP = "otlphttp"
)
