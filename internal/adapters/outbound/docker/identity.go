package docker

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

const (
	envSeparator  = "="
	nameSeparator = "."
	namePrefix    = "/"
)

// identityStrategy maps a container to the task it runs.
type identityStrategy func(name string, env []string) (string, bool)

// identityStrategies are tried in order; the first match wins.
var identityStrategies = []identityStrategy{
	identityFromEnv,
	identityFromName,
}

var taskIDEnvKeys = sets.New(strings.ToLower(collector.TaskIDEnvKey))

func resolveIdentity(name string, env []string) (string, bool) {
	for _, strategy := range identityStrategies {
		if identity, ok := strategy(name, env); ok {
			return identity, true
		}
	}

	return "", false
}

// identityFromEnv reads the task id the Mesos executor injects.
func identityFromEnv(_ string, env []string) (string, bool) {
	for _, entry := range env {
		key, value, found := strings.Cut(entry, envSeparator)
		if !found || value == "" {
			continue
		}

		if taskIDEnvKeys.Has(strings.ToLower(key)) {
			return value, true
		}
	}

	return "", false
}

// identityFromName takes the container id part of mesos-<agent>.<container>.
func identityFromName(name string, _ []string) (string, bool) {
	_, identity, found := strings.Cut(strings.TrimPrefix(name, namePrefix), nameSeparator)
	if !found || identity == "" {
		return "", false
	}

	return identity, true
}
