package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

const maxPort = 65535

// Config file keys.
const (
	fileKeyTargets      = "targets"
	fileKeyMetrics      = "metrics"
	fileKeyHost         = "Host"
	fileKeyPort         = "Port"
	fileKeyPostEndpoint = "PostEndpoint"
)

// File is the content of the YAML config file.
type File struct {
	Targets  []collector.Target
	Metrics  map[string]int64
	Warnings []string
}

// LoadFile reads and validates the YAML config file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read config file: %w", ErrInvalidConfig, err)
	}

	file, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return file, nil
}

// ParseFile decodes a config document. Unknown keys are reported as warnings
// and otherwise ignored.
func ParseFile(data []byte) (*File, error) {
	file := &File{Metrics: map[string]int64{}}

	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if len(doc.Content) == 0 {
		return file, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: document must be a mapping", ErrInvalidConfig, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		switch key.Value {
		case fileKeyTargets:
			err = file.parseTargets(value)
		case fileKeyMetrics:
			err = file.parseMetrics(value)
		default:
			file.warnUnknown(key)
		}

		if err != nil {
			return nil, err
		}
	}

	return file, nil
}

func (f *File) parseTargets(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: %s must be a list", ErrInvalidConfig, node.Line, fileKeyTargets)
	}

	seen := make(map[string]int, len(node.Content))

	for _, item := range node.Content {
		target, err := f.parseTarget(item)
		if err != nil {
			return err
		}

		if line, ok := seen[target.Name()]; ok {
			return fmt.Errorf("%w: line %d: target %s already defined at line %d",
				ErrInvalidConfig, item.Line, target.Name(), line)
		}

		seen[target.Name()] = item.Line
		f.Targets = append(f.Targets, target)
	}

	return nil
}

func (f *File) parseTarget(node *yaml.Node) (collector.Target, error) {
	target := collector.Target{Host: defaultHost, Port: defaultPort}

	if node.Kind != yaml.MappingNode {
		return target, fmt.Errorf("%w: line %d: target must be a mapping", ErrInvalidConfig, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var err error

		switch key.Value {
		case fileKeyHost:
			err = value.Decode(&target.Host)
		case fileKeyPort:
			err = value.Decode(&target.Port)
			if err == nil && (target.Port < 1 || target.Port > maxPort) {
				err = fmt.Errorf("port %d out of range", target.Port)
			}
		case fileKeyPostEndpoint:
			err = value.Decode(&target.PostEndpoint)
		default:
			f.warnUnknown(key)
		}

		if err != nil {
			return target, fmt.Errorf("%w: line %d: %s: %w", ErrInvalidConfig, value.Line, key.Value, err)
		}
	}

	if target.Host == "" {
		return target, fmt.Errorf("%w: line %d: %s must not be empty", ErrInvalidConfig, node.Line, fileKeyHost)
	}

	return target, nil
}

func (f *File) parseMetrics(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: %s must be a mapping", ErrInvalidConfig, node.Line, fileKeyMetrics)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var multiplier int64

		err := value.Decode(&multiplier)
		if err != nil {
			return fmt.Errorf("%w: line %d: metric %s: %w", ErrInvalidConfig, value.Line, key.Value, err)
		}

		if multiplier < 1 {
			return fmt.Errorf("%w: line %d: metric %s: multiplier must be positive", ErrInvalidConfig, value.Line, key.Value)
		}

		f.Metrics[key.Value] = multiplier
	}

	return nil
}

func (f *File) warnUnknown(key *yaml.Node) {
	f.Warnings = append(f.Warnings, fmt.Sprintf("unknown config key %q at line %d", key.Value, key.Line))
}
