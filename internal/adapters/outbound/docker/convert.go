package docker

import (
	"github.com/docker/docker/api/types"

	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

func toDomainSample(identity, id, name string, stats *types.StatsJSON) collector.ContainerSample {
	return collector.ContainerSample{
		TaskIdentity:     identity,
		ContainerID:      id,
		ContainerName:    name,
		MemoryUsage:      stats.MemoryStats.Usage,
		MemoryLimit:      stats.MemoryStats.Limit,
		CPUTotalUsage:    stats.CPUStats.CPUUsage.TotalUsage,
		CPUSystemUsage:   stats.CPUStats.SystemUsage,
		CPUUserMode:      stats.CPUStats.CPUUsage.UsageInUsermode,
		CPUKernelMode:    stats.CPUStats.CPUUsage.UsageInKernelmode,
		PerCPUUsage:      stats.CPUStats.CPUUsage.PercpuUsage,
		OnlineCPUs:       stats.CPUStats.OnlineCPUs,
		CPUThrottledTime: stats.CPUStats.ThrottlingData.ThrottledTime,
	}
}

func containerName(container *types.Container) string {
	if len(container.Names) == 0 {
		return container.ID
	}

	return container.Names[0]
}
