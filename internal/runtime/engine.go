package runtime

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
)

// Config is a normalised watch configuration.
type Config struct {
	OnChange domain.ChangeFunc
	MaxDepth int
	Policy   Policy
}

// Engine runs watch and unwatch builds.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine. Without options it logs nothing and has no hooks.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Watch installs interception on every property of target selected by cfg.
func (e *Engine) Watch(target object.Container, cfg Config) domain.Report {
	start := e.now()
	report := domain.Report{Mode: domain.ModeWatch}

	report.Scalars = Walk(target, func(c object.Container, key object.Key, path object.Path) {
		result := Install(c, key, e.notifier(path, cfg.OnChange))
		e.record(&report, c, key, path, result)
	}, 0, cfg.MaxDepth, cfg.Policy)

	e.finish(report, start)
	return report
}

// Unwatch restores plain data properties across the whole graph of target,
// regardless of the configuration the watch was built with.
func (e *Engine) Unwatch(target object.Container) domain.Report {
	start := e.now()
	report := domain.Report{Mode: domain.ModeUnwatch}

	policy := Policy{WatchArrays: true, TraverseArrays: true, WatchProps: true}
	report.Scalars = Walk(target, func(c object.Container, key object.Key, path object.Path) {
		result := Remove(c, key)
		e.record(&report, c, key, path, result)
	}, 0, domain.Unbounded, policy)

	e.finish(report, start)
	return report
}

// notifier wraps the user callback so that committed changes reach the hooks.
func (e *Engine) notifier(path object.Path, onChange domain.ChangeFunc) domain.ChangeFunc {
	if e.hooks.OnChange == nil {
		return onChange
	}
	return func(c object.Container, key object.Key, newValue, oldValue any) (any, bool) {
		override, replace := onChange(c, key, newValue, oldValue)
		stored := newValue
		if replace {
			stored = override
		}
		e.hooks.OnChange(&domain.ChangeEvent{
			Timestamp:  e.now(),
			Path:       path,
			Container:  c,
			Key:        key,
			NewValue:   newValue,
			OldValue:   oldValue,
			Overridden: replace,
			Stored:     stored,
		})
		return override, replace
	}
}

func (e *Engine) record(report *domain.Report, c object.Container, key object.Key, path object.Path, result domain.Result) {
	e.logger.Debug("property visited", "mode", report.Mode, "path", path.String(), "result", result)

	event := &domain.PropertyEvent{Mode: report.Mode, Path: path, Container: c, Key: key, Result: result}
	switch {
	case result == domain.ResultInstalled:
		report.Installed++
		if e.hooks.OnInstall != nil {
			e.hooks.OnInstall(event)
		}
	case result == domain.ResultRestored:
		report.Restored++
		if e.hooks.OnRestore != nil {
			e.hooks.OnRestore(event)
		}
	case result.Skipped():
		report.Skipped++
		if e.hooks.OnSkip != nil {
			e.hooks.OnSkip(event)
		}
	}
}

func (e *Engine) finish(report domain.Report, start time.Time) {
	elapsed := e.now().Sub(start)
	e.logger.Info("build finished",
		"mode", report.Mode,
		"scalars", report.Scalars,
		"installed", report.Installed,
		"restored", report.Restored,
		"skipped", report.Skipped,
		"duration", elapsed,
	)
	if e.hooks.OnBuild != nil {
		e.hooks.OnBuild(&domain.BuildEvent{Report: report, Duration: elapsed})
	}
}
