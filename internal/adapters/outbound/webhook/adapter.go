package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/logging"
	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

// Report fields written next to the metric values.
const (
	fieldFrameworkName = "framework_name"
	fieldTaskName      = "task_name"
	fieldHost          = "host"
	fieldTimestamp     = "timestamp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type adapter struct {
	logger *slog.Logger
	client *resty.Client
}

// New creates a webhook publisher posting one JSON object per task.
func New(logger *slog.Logger, timeout time.Duration) collector.Publisher {
	client := resty.New().
		SetTimeout(timeout).
		SetLogger(logging.NewRestyLogger(logger)).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &adapter{
		logger: logger,
		client: client,
	}
}

var _ collector.Publisher = (*adapter)(nil)

func (a *adapter) PublishCommand(
	ctx context.Context,
	endpoint string,
	report collector.TaskReport,
) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(toPayload(report)).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("post task report: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("post task report: unexpected status %s", resp.Status())
	}

	a.logger.DebugContext(ctx, "task report published",
		"endpoint", endpoint,
		"framework", report.FrameworkName,
		"task", report.TaskName,
	)

	return nil
}

// toPayload flattens the report into one object. Descriptive fields replace
// metrics of the same name.
func toPayload(report collector.TaskReport) map[string]any {
	payload := make(map[string]any, len(report.Metrics)+4)

	for name, value := range report.Metrics {
		payload[name] = value
	}

	payload[fieldFrameworkName] = report.FrameworkName
	payload[fieldTaskName] = report.TaskName
	payload[fieldHost] = report.Host
	payload[fieldTimestamp] = report.Timestamp.UTC().Format(time.RFC3339)

	return payload
}
