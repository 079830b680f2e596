package domain

import (
	"time"

	"github.com/aretw0/objwatch/pkg/object"
)

// ChangeFunc is invoked synchronously when an intercepted property is written
// with a value that differs from its current one. The new value is already
// committed when it runs. If replace is true, override becomes the stored value.
type ChangeFunc func(c object.Container, key object.Key, newValue, oldValue any) (override any, replace bool)

// NotifyFunc adapts a callback that never overrides the stored value.
func NotifyFunc(fn func(c object.Container, key object.Key, newValue, oldValue any)) ChangeFunc {
	return func(c object.Container, key object.Key, newValue, oldValue any) (any, bool) {
		fn(c, key, newValue, oldValue)
		return nil, false
	}
}

// Result is the outcome of installing or removing interception on one property.
type Result string

const (
	ResultInstalled              Result = "installed"
	ResultRestored               Result = "restored"
	ResultSkippedMissing         Result = "skipped_missing"
	ResultSkippedNotConfigurable Result = "skipped_not_configurable"
)

// Skipped reports whether the property was left untouched.
func (r Result) Skipped() bool {
	return r == ResultSkippedMissing || r == ResultSkippedNotConfigurable
}

// Report summarises one build.
type Report struct {
	Mode Mode `json:"mode"`
	// Scalars is the number of scalar properties the walker encountered.
	Scalars   int `json:"scalars"`
	Installed int `json:"installed"`
	Restored  int `json:"restored"`
	Skipped   int `json:"skipped"`
}

// PropertyEvent describes what a build did to one property.
type PropertyEvent struct {
	Mode      Mode             `json:"mode"`
	Path      object.Path      `json:"path"`
	Container object.Container `json:"-"`
	Key       object.Key       `json:"-"`
	Result    Result           `json:"result"`
}

// ChangeEvent describes a committed change of an intercepted property.
type ChangeEvent struct {
	Timestamp  time.Time        `json:"timestamp"`
	Path       object.Path      `json:"path"`
	Container  object.Container `json:"-"`
	Key        object.Key       `json:"-"`
	NewValue   any              `json:"new_value"`
	OldValue   any              `json:"old_value"`
	Overridden bool             `json:"overridden,omitempty"`
	// Stored is the value committed after the callback ran.
	Stored any `json:"stored"`
}

// BuildEvent is emitted once a build has finished.
type BuildEvent struct {
	Report   Report
	Duration time.Duration
}

// LifecycleHooks defines callbacks for watch observability.
// Every field is optional.
type LifecycleHooks struct {
	OnInstall func(*PropertyEvent)
	OnSkip    func(*PropertyEvent)
	OnRestore func(*PropertyEvent)
	OnChange  func(*ChangeEvent)
	OnBuild   func(*BuildEvent)
}

// MergeHooks returns hooks that call each of the given hooks in order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks
	for _, h := range hooks {
		merged.OnInstall = chain(merged.OnInstall, h.OnInstall)
		merged.OnSkip = chain(merged.OnSkip, h.OnSkip)
		merged.OnRestore = chain(merged.OnRestore, h.OnRestore)
		merged.OnChange = chain(merged.OnChange, h.OnChange)
		merged.OnBuild = chain(merged.OnBuild, h.OnBuild)
	}
	return merged
}

func chain[E any](a, b func(*E)) func(*E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
