package objwatch

import (
	"io"
	"log/slog"

	"github.com/aretw0/objwatch/internal/runtime"
	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
	"github.com/aretw0/objwatch/pkg/observability"
)

// ChangeFunc is the change callback. See domain.ChangeFunc.
type ChangeFunc = domain.ChangeFunc

// Report summarises a watch or unwatch build.
type Report = domain.Report

// ErrInvalidArgument is returned when a watch configuration is unusable.
var ErrInvalidArgument = domain.ErrInvalidArgument

// Watcher runs watch builds with a shared logger and set of hooks.
// It is the high-level entry point of the library.
type Watcher struct {
	engine *runtime.Engine
	hooks  []domain.LifecycleHooks
	logger *slog.Logger
}

// WatcherOption defines a functional option for configuring a Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. It can be given several times.
func WithLifecycleHooks(hooks domain.LifecycleHooks) WatcherOption {
	return func(w *Watcher) {
		w.hooks = append(w.hooks, hooks)
	}
}

// WithMetrics feeds build and change events into Prometheus metrics.
func WithMetrics(m *observability.Metrics) WatcherOption {
	return func(w *Watcher) {
		w.hooks = append(w.hooks, m.Hooks())
	}
}

// New creates a Watcher.
func New(opts ...WatcherOption) *Watcher {
	w := &Watcher{}
	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	w.engine = runtime.NewEngine(
		runtime.WithLogger(w.logger),
		runtime.WithLifecycleHooks(domain.MergeHooks(w.hooks...)),
	)
	return w
}

// Watch intercepts the properties of target selected by opts. OnChange (or
// OnNotify) is required; without it ErrInvalidArgument is returned and target
// is left untouched.
func (w *Watcher) Watch(target object.Container, opts ...Option) (Report, error) {
	if isNil(target) {
		return Report{}, domain.ErrNilTarget
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	cfg, err := s.normalize()
	if err != nil {
		return Report{}, err
	}
	return w.engine.Watch(target, cfg), nil
}

// WatchMap is Watch driven by an option map (see Settings).
func (w *Watcher) WatchMap(target object.Container, options map[string]any) (Report, error) {
	s, err := DecodeSettings(options)
	if err != nil {
		return Report{}, err
	}
	if unused := s.Unused(); len(unused) > 0 {
		w.logger.Debug("ignoring unknown watch options", "keys", unused)
	}

	opts, err := s.Options()
	if err != nil {
		return Report{}, err
	}
	return w.Watch(target, opts...)
}

// Unwatch restores every intercepted property reachable from target, at any
// depth and through arrays, whatever options the watch was built with.
// Callers wanting a partial unwatch pass the sub-object to restore.
func (w *Watcher) Unwatch(target object.Container) (Report, error) {
	if isNil(target) {
		return Report{}, domain.ErrNilTarget
	}
	return w.engine.Unwatch(target), nil
}

// For returns a handle carrying Watch and Unwatch for target.
func (w *Watcher) For(target object.Container) *Handle {
	return &Handle{target: target, watcher: w}
}

var defaultWatcher = New()

// Watch runs a watch build with the default watcher.
func Watch(target object.Container, opts ...Option) (Report, error) {
	return defaultWatcher.Watch(target, opts...)
}

// WatchMap runs a watch build configured by an option map with the default watcher.
func WatchMap(target object.Container, options map[string]any) (Report, error) {
	return defaultWatcher.WatchMap(target, options)
}

// Unwatch runs an unwatch build with the default watcher.
func Unwatch(target object.Container) (Report, error) {
	return defaultWatcher.Unwatch(target)
}

// For returns a handle on target bound to the default watcher.
func For(target object.Container) *Handle {
	return defaultWatcher.For(target)
}

// Handle binds the watch operations to one target.
type Handle struct {
	target  object.Container
	watcher *Watcher
}

// Target returns the wrapped container.
func (h *Handle) Target() object.Container {
	return h.target
}

// Watch intercepts the properties of the handle's target.
func (h *Handle) Watch(opts ...Option) (Report, error) {
	return h.watcher.Watch(h.target, opts...)
}

// WatchMap intercepts the properties of the handle's target using an option map.
func (h *Handle) WatchMap(options map[string]any) (Report, error) {
	return h.watcher.WatchMap(h.target, options)
}

// Unwatch restores the handle's target.
func (h *Handle) Unwatch() (Report, error) {
	return h.watcher.Unwatch(h.target)
}

func isNil(c object.Container) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *object.Object:
		return v == nil
	case *object.Array:
		return v == nil
	}
	return false
}
