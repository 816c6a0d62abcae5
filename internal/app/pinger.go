package app

import "github.com/skillcoder/mesos-task-metrics/internal/infra/pinger"

// nonCriticalPinger reports a dependency without affecting health or
// readiness; collection continues without container data.
type nonCriticalPinger struct {
	pinger.Pinger
}

func (p *nonCriticalPinger) PingerCritical() bool {
	return false
}

func (p *nonCriticalPinger) PingerReadyCritical() bool {
	return false
}
