/*
Package observability turns watch lifecycle events into Prometheus metrics and
structured log records.

Both Metrics.Hooks and LogHooks return domain.LifecycleHooks, so they can be
registered on a Watcher side by side with objwatch.WithLifecycleHooks or
combined with domain.MergeHooks.
*/
package observability
