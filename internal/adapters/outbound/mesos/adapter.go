package mesos

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/logging"
	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

const (
	statePath      = "/state.json"
	statisticsPath = "/monitor/statistics.json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type adapter struct {
	logger *slog.Logger
	client *resty.Client
}

// New creates a Mesos agent adapter. Every request is bounded by timeout and
// never retried.
func New(logger *slog.Logger, timeout time.Duration) collector.AgentRepository {
	client := resty.New().
		SetTimeout(timeout).
		SetLogger(logging.NewRestyLogger(logger)).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &adapter{
		logger: logger,
		client: client,
	}
}

var _ collector.AgentRepository = (*adapter)(nil)

func (a *adapter) GetStateQuery(
	ctx context.Context,
	target collector.Target,
) (*collector.State, error) {
	var resp stateResponse

	err := a.getJSON(ctx, agentURL(target, statePath), &resp)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}

	a.logger.DebugContext(ctx, "agent state fetched",
		"target", target.Name(),
		"frameworks", len(resp.Frameworks),
		"completedFrameworks", len(resp.CompletedFrameworks),
	)

	return toDomainState(&resp), nil
}

func (a *adapter) GetStatisticsQuery(
	ctx context.Context,
	target collector.Target,
) ([]collector.TaskStatistics, error) {
	var entries []statisticsJSON

	err := a.getJSON(ctx, agentURL(target, statisticsPath), &entries)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}

	return toDomainStatistics(ctx, a.logger, entries), nil
}

func (a *adapter) getJSON(ctx context.Context, url string, out any) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", collector.ErrSourceUnreachable, url, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %s: unexpected status %s", collector.ErrSourceUnreachable, url, resp.Status())
	}

	err = json.Unmarshal(resp.Body(), out)
	if err != nil {
		return fmt.Errorf("%w: %s: decode: %w", collector.ErrSourceUnreachable, url, err)
	}

	return nil
}

func agentURL(target collector.Target, path string) string {
	return "http://" + net.JoinHostPort(target.Host, strconv.Itoa(target.Port)) + path
}
