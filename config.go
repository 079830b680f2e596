package objwatch

import (
	"fmt"

	"github.com/aretw0/objwatch/internal/runtime"
	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
	"github.com/mitchellh/mapstructure"
)

// Option configures a single watch build.
type Option func(*settings)

type settings struct {
	onChange       domain.ChangeFunc
	depth          int
	watchArrays    bool
	watchProps     bool
	traverseArrays bool
	toWatch        []string
	filtered       bool
}

func defaultSettings() settings {
	return settings{
		depth:      0,
		watchProps: true,
	}
}

// OnChange sets the callback fired when an intercepted property changes.
// It is required.
func OnChange(fn ChangeFunc) Option {
	return func(s *settings) {
		s.onChange = fn
	}
}

// OnNotify sets a change callback that never overrides the stored value.
func OnNotify(fn func(c object.Container, key object.Key, newValue, oldValue any)) Option {
	return func(s *settings) {
		if fn == nil {
			s.onChange = nil
			return
		}
		s.onChange = domain.NotifyFunc(fn)
	}
}

// Depth sets how many levels of nested objects are watched.
// 0 (the default) watches only the direct properties of the target; -1 walks the whole graph.
func Depth(n int) Option {
	return func(s *settings) {
		s.depth = n
	}
}

// WatchArrays enables interception of scalar elements of array-valued properties.
func WatchArrays(enabled bool) Option {
	return func(s *settings) {
		s.watchArrays = enabled
	}
}

// WatchProps toggles interception of scalar properties. Enabled by default.
func WatchProps(enabled bool) Option {
	return func(s *settings) {
		s.watchProps = enabled
	}
}

// TraverseArrays enables descending into objects and arrays held by arrays.
func TraverseArrays(enabled bool) Option {
	return func(s *settings) {
		s.traverseArrays = enabled
	}
}

// ToWatch restricts the watch to the given property names at every level.
// Calling it with no names watches nothing.
func ToWatch(names ...string) Option {
	return func(s *settings) {
		s.toWatch = append(s.toWatch, names...)
		s.filtered = true
	}
}

func (s settings) normalize() (runtime.Config, error) {
	if s.onChange == nil {
		return runtime.Config{}, fmt.Errorf("%w: onChange callback is required", domain.ErrInvalidArgument)
	}
	if s.depth < domain.Unbounded {
		return runtime.Config{}, fmt.Errorf("%w: depth must be -1 or greater, got %d", domain.ErrInvalidArgument, s.depth)
	}

	cfg := runtime.Config{
		OnChange: s.onChange,
		MaxDepth: s.depth,
		Policy: runtime.Policy{
			WatchArrays:    s.watchArrays,
			TraverseArrays: s.traverseArrays,
			WatchProps:     s.watchProps,
		},
	}
	if s.filtered {
		cfg.Policy.Filter = make(map[string]struct{}, len(s.toWatch))
		for _, name := range s.toWatch {
			cfg.Policy.Filter[name] = struct{}{}
		}
	}
	return cfg, nil
}

// Settings mirrors the watch option object:
//
//	{onChange: fn, depth: 0, watchArrays: false, watchProps: true, traverseArrays: false, toWatch: "name" | ["a", "b"]}
//
// Absent flags keep their defaults.
type Settings struct {
	OnChange       any      `mapstructure:"onChange"`
	Depth          int      `mapstructure:"depth"`
	WatchArrays    *bool    `mapstructure:"watchArrays"`
	WatchProps     *bool    `mapstructure:"watchProps"`
	TraverseArrays *bool    `mapstructure:"traverseArrays"`
	ToWatch        []string `mapstructure:"toWatch"`

	// hasToWatch distinguishes an empty toWatch list from an absent one.
	hasToWatch bool
	unused     []string
}

// Unused returns the option keys that were not recognised.
func (s Settings) Unused() []string {
	return s.unused
}

// DecodeSettings decodes an option map. A single toWatch string is accepted
// in place of a list, and numbers or booleans given as strings are converted.
func DecodeSettings(options map[string]any) (Settings, error) {
	var s Settings
	var md mapstructure.Metadata

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         &md,
		Result:           &s,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Settings{}, err
	}
	if err := dec.Decode(options); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	for _, k := range md.Keys {
		if k == domain.KeyToWatch {
			s.hasToWatch = true
		}
	}
	s.unused = md.Unused
	return s, nil
}

// Options converts decoded settings into watch options.
func (s Settings) Options() ([]Option, error) {
	var opts []Option

	switch fn := s.OnChange.(type) {
	case nil:
	case ChangeFunc:
		opts = append(opts, OnChange(fn))
	case func(object.Container, object.Key, any, any) (any, bool):
		opts = append(opts, OnChange(fn))
	case func(object.Container, object.Key, any, any):
		opts = append(opts, OnNotify(fn))
	default:
		return nil, fmt.Errorf("%w: onChange must be a change callback, got %T", domain.ErrInvalidArgument, s.OnChange)
	}

	opts = append(opts, Depth(s.Depth))
	if s.WatchArrays != nil {
		opts = append(opts, WatchArrays(*s.WatchArrays))
	}
	if s.WatchProps != nil {
		opts = append(opts, WatchProps(*s.WatchProps))
	}
	if s.TraverseArrays != nil {
		opts = append(opts, TraverseArrays(*s.TraverseArrays))
	}
	if s.hasToWatch || len(s.ToWatch) > 0 {
		opts = append(opts, ToWatch(s.ToWatch...))
	}
	return opts, nil
}
