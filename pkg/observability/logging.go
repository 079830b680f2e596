package observability

import (
	"log/slog"

	"github.com/aretw0/objwatch/pkg/domain"
)

// LogHooks returns lifecycle hooks that write change and build records to logger.
// Per-property build events are left to the engine's own debug logging.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnChange: func(e *domain.ChangeEvent) {
			logger.Info("property changed",
				"path", e.Path.String(),
				"old", e.OldValue,
				"new", e.NewValue,
				"overridden", e.Overridden,
			)
		},
		OnSkip: func(e *domain.PropertyEvent) {
			logger.Warn("property skipped", "mode", e.Mode, "path", e.Path.String(), "reason", e.Result)
		},
		OnBuild: func(e *domain.BuildEvent) {
			logger.Debug("build report", "mode", e.Report.Mode, "duration", e.Duration)
		},
	}
}
