package cli

import (
	"fmt"
	"maps"
	"os"

	"github.com/aretw0/objwatch"
	"gopkg.in/yaml.v3"
)

// WatchFlags carries the watch options shared by every command.
// Nil fields were not given on the command line and leave the
// options file (or the defaults) in charge.
type WatchFlags struct {
	Depth          *int
	WatchArrays    *bool
	TraverseArrays *bool
	NoProps        *bool
	Props          []string
	OptionsFile    string
}

// LoadOptionsFile reads a YAML or JSON option map, e.g.
//
//	depth: -1
//	watchArrays: true
//	toWatch: [replicas, image]
func LoadOptionsFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}
	return m, nil
}

// Build resolves the watch options. The options file is applied first, then
// extra (e.g. a script's options block), then explicit flags.
func (f WatchFlags) Build(extra map[string]any) ([]objwatch.Option, []string, error) {
	merged := map[string]any{}
	if f.OptionsFile != "" {
		fromFile, err := LoadOptionsFile(f.OptionsFile)
		if err != nil {
			return nil, nil, err
		}
		maps.Copy(merged, fromFile)
	}
	maps.Copy(merged, extra)

	settings, err := objwatch.DecodeSettings(merged)
	if err != nil {
		return nil, nil, err
	}
	opts, err := settings.Options()
	if err != nil {
		return nil, nil, err
	}

	if f.Depth != nil {
		opts = append(opts, objwatch.Depth(*f.Depth))
	}
	if f.WatchArrays != nil {
		opts = append(opts, objwatch.WatchArrays(*f.WatchArrays))
	}
	if f.TraverseArrays != nil {
		opts = append(opts, objwatch.TraverseArrays(*f.TraverseArrays))
	}
	if f.NoProps != nil {
		opts = append(opts, objwatch.WatchProps(!*f.NoProps))
	}
	if len(f.Props) > 0 {
		opts = append(opts, objwatch.ToWatch(f.Props...))
	}
	return opts, settings.Unused(), nil
}
