package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/mesos-task-metrics/internal/config"
	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

type loadCase struct {
	name    string
	giveEnv map[string]string
	wantErr bool
	wantCfg *config.Config
}

func assertConfigFields(t *testing.T, got, want *config.Config) {
	t.Helper()

	if want == nil {
		return
	}

	if want.HTTPPort != "" {
		require.Equal(t, want.HTTPPort, got.HTTPPort)
	}

	if want.MetricsPort != "" {
		require.Equal(t, want.MetricsPort, got.MetricsPort)
	}

	if want.Interval != 0 {
		require.Equal(t, want.Interval, got.Interval)
	}

	if want.RequestTimeout != 0 {
		require.Equal(t, want.RequestTimeout, got.RequestTimeout)
	}

	if want.PingerInterval != 0 {
		require.Equal(t, want.PingerInterval, got.PingerInterval)
	}

	if want.TargetConcurrency != 0 {
		require.Equal(t, want.TargetConcurrency, got.TargetConcurrency)
	}

	if want.LogLevel != "" {
		require.Equal(t, want.LogLevel, got.LogLevel)
	}

	if want.LogFormat != "" {
		require.Equal(t, want.LogFormat, got.LogFormat)
	}

	if want.DockerHost != "" {
		require.Equal(t, want.DockerHost, got.DockerHost)
	}

	if want.OtelExporter != "" {
		require.Equal(t, want.OtelExporter, got.OtelExporter)
	}

	if want.Schedule != "" {
		require.Equal(t, want.Schedule, got.Schedule)
	}

	if want.TerminationFile != "" {
		require.Equal(t, want.TerminationFile, got.TerminationFile)
	}

	if want.Targets != nil {
		require.Equal(t, want.Targets, got.Targets)
	}
}

func TestLoad(t *testing.T) {
	tests := []loadCase{
		{
			name:    "all defaults",
			giveEnv: map[string]string{},
			wantCfg: &config.Config{
				LogLevel:          "info",
				LogFormat:         "json",
				HTTPPort:          "8080",
				MetricsPort:       "9090",
				Interval:          10 * time.Second,
				RequestTimeout:    5 * time.Second,
				PingerInterval:    10 * time.Second,
				TargetConcurrency: 1,
				DockerHost:        "tcp://127.0.0.1:2375",
				OtelExporter:      config.OtelExporterNone,
				Targets:           []collector.Target{{Host: "127.0.0.1", Port: 5051}},
			},
		},
		{
			name: "override TASKMETRICS_HTTP_PORT and TASKMETRICS_INTERVAL",
			giveEnv: map[string]string{
				"TASKMETRICS_HTTP_PORT": "9091",
				"TASKMETRICS_INTERVAL":  "1m",
			},
			wantCfg: &config.Config{
				HTTPPort: "9091",
				Interval: time.Minute,
			},
		},
		{
			name: "single target from env",
			giveEnv: map[string]string{
				"TASKMETRICS_HOST":          "10.0.0.5",
				"TASKMETRICS_PORT":          "5052",
				"TASKMETRICS_POST_ENDPOINT": "http://collector.local/ingest",
			},
			wantCfg: &config.Config{
				Targets: []collector.Target{{
					Host:         "10.0.0.5",
					Port:         5052,
					PostEndpoint: "http://collector.local/ingest",
				}},
			},
		},
		{
			name: "otlp exporter",
			giveEnv: map[string]string{
				"TASKMETRICS_OTEL_EXPORTER": "otlphttp",
				"TASKMETRICS_OTEL_ENDPOINT": "http://otel:4318",
			},
			wantCfg: &config.Config{OtelExporter: config.OtelExporterOTLPHTTP},
		},
		{
			name:    "termination file",
			giveEnv: map[string]string{"TASKMETRICS_TERMINATION_FILE": "/run/task-metrics/terminating"},
			wantCfg: &config.Config{TerminationFile: "/run/task-metrics/terminating"},
		},
		{
			name:    "TASKMETRICS_SCHEDULE that never fires",
			giveEnv: map[string]string{"TASKMETRICS_SCHEDULE": "0 0 30 2 *"},
			wantErr: true,
		},
		{
			name:    "malformed TASKMETRICS_SCHEDULE",
			giveEnv: map[string]string{"TASKMETRICS_SCHEDULE": "every minute"},
			wantErr: true,
		},
		{
			name:    "valid TASKMETRICS_SCHEDULE",
			giveEnv: map[string]string{"TASKMETRICS_SCHEDULE": "@every 15s"},
			wantCfg: &config.Config{Schedule: "@every 15s"},
		},
		{
			name:    "invalid TASKMETRICS_INTERVAL",
			giveEnv: map[string]string{"TASKMETRICS_INTERVAL": "x"},
			wantErr: true,
		},
		{
			name:    "TASKMETRICS_INTERVAL below minimum",
			giveEnv: map[string]string{"TASKMETRICS_INTERVAL": "500ms"},
			wantErr: true,
		},
		{
			name:    "TASKMETRICS_REQUEST_TIMEOUT below minimum",
			giveEnv: map[string]string{"TASKMETRICS_REQUEST_TIMEOUT": "10ms"},
			wantErr: true,
		},
		{
			name:    "invalid TASKMETRICS_PINGER_INTERVAL",
			giveEnv: map[string]string{"TASKMETRICS_PINGER_INTERVAL": "not-a-duration"},
			wantErr: true,
		},
		{
			name:    "zero TASKMETRICS_TARGET_CONCURRENCY",
			giveEnv: map[string]string{"TASKMETRICS_TARGET_CONCURRENCY": "0"},
			wantErr: true,
		},
		{
			name:    "invalid TASKMETRICS_PORT",
			giveEnv: map[string]string{"TASKMETRICS_PORT": "http"},
			wantErr: true,
		},
		{
			name:    "TASKMETRICS_PORT out of range",
			giveEnv: map[string]string{"TASKMETRICS_PORT": "70000"},
			wantErr: true,
		},
		{
			name:    "unknown TASKMETRICS_OTEL_EXPORTER",
			giveEnv: map[string]string{"TASKMETRICS_OTEL_EXPORTER": "jaeger"},
			wantErr: true,
		},
		{
			name:    "missing TASKMETRICS_CONFIG_FILE",
			giveEnv: map[string]string{"TASKMETRICS_CONFIG_FILE": "/does/not/exist.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.giveEnv {
				t.Setenv(k, v)
			}

			got, err := config.Load()
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidConfig)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			assertConfigFields(t, got, tt.wantCfg)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
targets:
  - Host: 10.0.0.5
    PostEndpoint: http://collector.local/ingest
  - Host: 10.0.0.6
    Port: 5052
    Verbose: true
metrics:
  cpus_nr_throttled: 10
  net_rx_bytes: 1
`), 0o600))

	t.Setenv("TASKMETRICS_CONFIG_FILE", path)
	t.Setenv("TASKMETRICS_HOST", "ignored")

	got, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, []collector.Target{
		{Host: "10.0.0.5", Port: 5051, PostEndpoint: "http://collector.local/ingest"},
		{Host: "10.0.0.6", Port: 5052},
	}, got.Targets)
	require.Len(t, got.Warnings, 1)
	require.Contains(t, got.Warnings[0], "Verbose")

	require.Equal(t, int64(10), got.Metrics["cpus_nr_throttled"])
	require.Equal(t, int64(1), got.Metrics["net_rx_bytes"])
	require.Equal(t, int64(1000), got.Metrics["cpus_limit"])
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		giveData     string
		wantErr      bool
		wantTargets  []collector.Target
		wantWarnings int
	}{
		{
			name:     "empty document",
			giveData: "",
		},
		{
			name:         "unknown top level key",
			giveData:     "interval: 5s\n",
			wantWarnings: 1,
		},
		{
			name:        "defaults per target",
			giveData:    "targets:\n  - {}\n",
			wantTargets: []collector.Target{{Host: "127.0.0.1", Port: 5051}},
		},
		{
			name:     "duplicate target",
			giveData: "targets:\n  - Host: a\n  - Host: a\n    Port: 5051\n",
			wantErr:  true,
		},
		{
			name:     "non integer port",
			giveData: "targets:\n  - Port: http\n",
			wantErr:  true,
		},
		{
			name:     "port out of range",
			giveData: "targets:\n  - Port: 0\n",
			wantErr:  true,
		},
		{
			name:     "empty host",
			giveData: "targets:\n  - Host: \"\"\n",
			wantErr:  true,
		},
		{
			name:     "targets not a list",
			giveData: "targets: 10.0.0.1\n",
			wantErr:  true,
		},
		{
			name:     "negative multiplier",
			giveData: "metrics:\n  cpus_limit: -1\n",
			wantErr:  true,
		},
		{
			name:     "malformed yaml",
			giveData: "targets: [\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := config.ParseFile([]byte(tt.giveData))
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidConfig)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantTargets, got.Targets)
			require.Len(t, got.Warnings, tt.wantWarnings)
		})
	}
}
