package mesos

import (
	"context"
	"log/slog"

	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

func toDomainState(resp *stateResponse) *collector.State {
	state := &collector.State{
		Frameworks: make([]collector.Framework, 0, len(resp.Frameworks)),
	}

	for i := range resp.Frameworks {
		framework := &resp.Frameworks[i]

		out := collector.Framework{
			ID:        framework.ID,
			Name:      framework.Name,
			Executors: make([]collector.Executor, 0, len(framework.Executors)),
		}

		for j := range framework.Executors {
			executor := &framework.Executors[j]

			tasks := make([]collector.Task, 0, len(executor.Tasks))
			for k := range executor.Tasks {
				tasks = append(tasks, toDomainTask(&executor.Tasks[k]))
			}

			out.Executors = append(out.Executors, collector.Executor{
				ID:        executor.ID,
				Container: executor.Container,
				Tasks:     tasks,
			})
		}

		state.Frameworks = append(state.Frameworks, out)
	}

	return state
}

// toDomainTask flattens the label list; the last duplicate key wins.
func toDomainTask(task *taskJSON) collector.Task {
	labels := make(map[string]string, len(task.Labels))
	for _, label := range task.Labels {
		labels[label.Key] = label.Value
	}

	return collector.Task{
		ID:     task.ID,
		Name:   task.Name,
		Labels: labels,
	}
}

func toDomainStatistics(
	ctx context.Context,
	logger *slog.Logger,
	entries []statisticsJSON,
) []collector.TaskStatistics {
	out := make([]collector.TaskStatistics, 0, len(entries))

	for i := range entries {
		entry := &entries[i]

		counters := make(map[string]float64, len(entry.Statistics))

		for name, raw := range entry.Statistics {
			value, ok := raw.(float64)
			if !ok {
				logger.DebugContext(ctx, "skipping non-numeric statistic",
					"source", entry.Source,
					"metric", name,
				)

				continue
			}

			counters[name] = value
		}

		out = append(out, collector.TaskStatistics{
			FrameworkID: entry.FrameworkID,
			SourceID:    entry.Source,
			Counters:    counters,
		})
	}

	return out
}
