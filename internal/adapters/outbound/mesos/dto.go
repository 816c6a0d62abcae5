package mesos

type stateResponse struct {
	Frameworks []frameworkJSON `json:"frameworks"`
	// CompletedFrameworks are counted only; their tasks no longer run.
	CompletedFrameworks []frameworkJSON `json:"completed_frameworks"`
}

type frameworkJSON struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Executors []executorJSON `json:"executors"`
}

type executorJSON struct {
	ID        string     `json:"id"`
	Container string     `json:"container"`
	Tasks     []taskJSON `json:"tasks"`
}

type taskJSON struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Labels []labelJSON `json:"labels"`
}

type labelJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type statisticsJSON struct {
	ExecutorID  string         `json:"executor_id"`
	FrameworkID string         `json:"framework_id"`
	Source      string         `json:"source"`
	Statistics  map[string]any `json:"statistics"`
}
