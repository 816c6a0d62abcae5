package collector

import (
	"fmt"
	"strings"
)

// BuildTaskIndex walks the state snapshot once and indexes every task.
func BuildTaskIndex(state *State) map[TaskKey]TaskDescriptor {
	index := make(map[TaskKey]TaskDescriptor)
	if state == nil {
		return index
	}

	for i := range state.Frameworks {
		framework := &state.Frameworks[i]

		for j := range framework.Executors {
			executor := &framework.Executors[j]

			for k := range executor.Tasks {
				task := &executor.Tasks[k]

				labels := task.Labels
				if labels == nil {
					labels = map[string]string{}
				}

				index[TaskKey{FrameworkID: framework.ID, TaskID: task.ID}] = TaskDescriptor{
					FrameworkName: framework.Name,
					TaskName:      task.Name,
					Labels:        labels,
					ContainerRef:  executor.Container,
				}
			}
		}
	}

	return index
}

// AppIdentifier names the task for the sinks: the app label joined with the
// statistics source when labelled, framework and task names otherwise.
func AppIdentifier(desc TaskDescriptor, sourceID string) string {
	if app, ok := desc.Labels[AppLabelKey]; ok {
		return normalize(app) + identifierSeparator + normalize(sourceID)
	}

	return normalize(desc.FrameworkName) + identifierSeparator + normalize(desc.TaskName)
}

func normalize(s string) string {
	return strings.ReplaceAll(s, identifierSeparator, identifierReplacer)
}

// Merge overlays container metrics on statistics counters. Statistics values
// win on collision; container values only fill gaps.
func Merge(counters map[string]float64, container map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(counters)+len(container))

	for name, value := range counters {
		merged[name] = value
	}

	for name, value := range container {
		if _, exists := merged[name]; exists {
			continue
		}

		merged[name] = value
	}

	return merged
}

// lookupSample finds the container of a task by source id, then by the
// executor container reference.
func lookupSample(
	samples map[string]ContainerSample,
	sourceID string,
	desc TaskDescriptor,
) (ContainerSample, bool) {
	if sample, ok := samples[sourceID]; ok {
		return sample, true
	}

	if desc.ContainerRef == "" {
		return ContainerSample{}, false
	}

	sample, ok := samples[desc.ContainerRef]

	return sample, ok
}

// Resolve joins statistics with the task index and container samples.
// Statistics without a topology entry are returned as unresolved errors.
func Resolve(
	index map[TaskKey]TaskDescriptor,
	statistics []TaskStatistics,
	samples map[string]ContainerSample,
) ([]MergedRecord, []error) {
	records := make([]MergedRecord, 0, len(statistics))

	var unresolved []error

	for i := range statistics {
		stat := &statistics[i]

		desc, ok := index[TaskKey{FrameworkID: stat.FrameworkID, TaskID: stat.SourceID}]
		if !ok {
			unresolved = append(unresolved, fmt.Errorf(
				"%w: task %s of framework %s found in statistics, but missing in state",
				ErrIdentityUnresolved,
				stat.SourceID,
				stat.FrameworkID,
			))

			continue
		}

		var containerMetrics map[string]float64
		if sample, found := lookupSample(samples, stat.SourceID, desc); found {
			containerMetrics = sample.Metrics()
		}

		records = append(records, MergedRecord{
			AppIdentifier: AppIdentifier(desc, stat.SourceID),
			Descriptor:    desc,
			Metrics:       Merge(stat.Counters, containerMetrics),
		})
	}

	return records, unresolved
}
