package document

import (
	"fmt"
	"os"

	"github.com/aretw0/objwatch/pkg/object"
	"gopkg.in/yaml.v3"
)

// Step is one write applied to a watched document.
type Step struct {
	Path  string `yaml:"path" json:"path"`
	Value any    `yaml:"value" json:"value"`
}

// Script is a replayable sequence of writes, optionally carrying the watch options to use.
//
//	options:
//	  depth: -1
//	  watchArrays: true
//	steps:
//	  - path: spec.replicas
//	    value: 3
type Script struct {
	Options map[string]any `yaml:"options" json:"options"`
	Steps   []Step         `yaml:"steps" json:"steps"`
}

// LoadScript reads a YAML or JSON script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a script and validates its step paths.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range s.Steps {
		if _, err := ParsePath(step.Path); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Apply runs the steps against root in order and stops at the first failure.
// Step values are converted with object.FromNative, so mappings and lists
// become objects and arrays.
func (s *Script) Apply(root object.Container) error {
	for i, step := range s.Steps {
		path, err := ParsePath(step.Path)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := Assign(root, path, object.FromNative(step.Value)); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}
