package config

import (
	"fmt"
	"maps"
	"os"
	"strconv"
	"time"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/cronparser"
	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

type Config struct {
	ConfigFile        string
	Interval          time.Duration
	Schedule          string
	RequestTimeout    time.Duration
	TargetConcurrency int
	DockerHost        string
	StatsdAddr        string
	NodeGroupFile     string
	LogLevel          string
	LogFormat         string
	HTTPPort          string
	MetricsPort       string
	PingerInterval    time.Duration
	OtelExporter      string
	OtelEndpoint      string
	TerminationFile   string
	Targets           []collector.Target
	// Metrics maps every recognized metric name to its multiplier.
	Metrics map[string]int64
	// Warnings lists ignored config file entries, logged once a logger exists.
	Warnings []string
}

func Load() (*Config, error) {
	cfg := &Config{
		ConfigFile:      os.Getenv(envKeyConfigFile),
		Schedule:        os.Getenv(envKeySchedule),
		DockerHost:      getEnvOrDefault(envKeyDockerHost, defaultDockerHost),
		StatsdAddr:      os.Getenv(envKeyStatsdAddr),
		NodeGroupFile:   getEnvOrDefault(envKeyNodeGroupFile, defaultNodeGroupFile),
		LogLevel:        getEnvOrDefault(envKeyLogLevel, defaultLogLevel),
		LogFormat:       getEnvOrDefault(envKeyLogFormat, defaultLogFormat),
		HTTPPort:        getEnvOrDefault(envKeyHTTPPort, defaultHTTPPort),
		MetricsPort:     getEnvOrDefault(envKeyMetricsPort, defaultMetricsPort),
		OtelExporter:    getEnvOrDefault(envKeyOtelExporter, OtelExporterNone),
		OtelEndpoint:    os.Getenv(envKeyOtelEndpoint),
		TerminationFile: os.Getenv(envKeyTerminationFile),
		Metrics:         collector.DefaultRecognizedMetrics(),
	}

	var err error

	cfg.Interval, err = getDuration(envKeyInterval, defaultInterval, envMinInterval)
	if err != nil {
		return nil, err
	}

	cfg.RequestTimeout, err = getDuration(envKeyRequestTimeout, defaultRequestTimeout, envMinRequestTimeout)
	if err != nil {
		return nil, err
	}

	cfg.PingerInterval, err = getDuration(envKeyPingerInterval, defaultPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	cfg.TargetConcurrency, err = getInt(envKeyTargetConcurrency, defaultTargetConcurrency, envMinTargetConcurrency)
	if err != nil {
		return nil, err
	}

	if cfg.Schedule != "" {
		if _, err := cronparser.Parse(cfg.Schedule, ""); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, envKeySchedule, err)
		}
	}

	switch cfg.OtelExporter {
	case OtelExporterNone, OtelExporterStdout, OtelExporterOTLPHTTP:
	default:
		return nil, fmt.Errorf("%w: %s: unknown exporter %q", ErrInvalidConfig, envKeyOtelExporter, cfg.OtelExporter)
	}

	if cfg.ConfigFile != "" {
		file, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}

		cfg.Targets = file.Targets
		cfg.Warnings = file.Warnings
		maps.Copy(cfg.Metrics, file.Metrics)
	}

	if len(cfg.Targets) == 0 {
		target, err := envTarget()
		if err != nil {
			return nil, err
		}

		cfg.Targets = []collector.Target{target}
	}

	return cfg, nil
}

func envTarget() (collector.Target, error) {
	port, err := getInt(envKeyPort, defaultPort, 1)
	if err != nil {
		return collector.Target{}, err
	}

	if port > maxPort {
		return collector.Target{}, fmt.Errorf("%w: %s: port %d out of range", ErrInvalidConfig, envKeyPort, port)
	}

	return collector.Target{
		Host:         getEnvOrDefault(envKeyHost, defaultHost),
		Port:         port,
		PostEndpoint: os.Getenv(envKeyPostEndpoint),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

func getDuration(key string, defaultValue, minValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, key, err)
	}

	if d < minValue {
		return 0, fmt.Errorf("%w: %s must be at least %s", ErrInvalidConfig, key, minValue)
	}

	return d, nil
}

func getInt(key string, defaultValue, minValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, key, err)
	}

	if n < minValue {
		return 0, fmt.Errorf("%w: %s must be at least %d", ErrInvalidConfig, key, minValue)
	}

	return n, nil
}
