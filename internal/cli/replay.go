package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/objwatch"
	"github.com/aretw0/objwatch/internal/presentation/tui"
	"github.com/aretw0/objwatch/pkg/document"
	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
	"github.com/aretw0/objwatch/pkg/observability"
)

// ReplayOptions configures the run command.
type ReplayOptions struct {
	Document string
	Script   string
	Flags    WatchFlags
	// Unwatch restores the document after the script and reports it.
	Unwatch bool
	Styled  bool
	Quiet   bool
	Logger  *slog.Logger
}

// Replay loads a document, watches it, applies the script's writes and
// prints every reported change followed by the final document.
func Replay(opts ReplayOptions, out io.Writer) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	doc, err := document.LoadFile(opts.Document)
	if err != nil {
		return err
	}

	script := &document.Script{}
	if opts.Script != "" {
		if script, err = document.LoadScript(opts.Script); err != nil {
			return err
		}
	}

	watchOpts, unused, err := opts.Flags.Build(script.Options)
	if err != nil {
		return err
	}
	if len(unused) > 0 {
		logger.Warn("ignoring unknown watch options", "keys", unused)
	}

	printer := tui.NewChangePrinter(opts.Styled)
	watcher := objwatch.New(
		objwatch.WithLogger(logger),
		objwatch.WithLifecycleHooks(observability.LogHooks(logger)),
		objwatch.WithLifecycleHooks(domain.LifecycleHooks{
			OnChange: func(e *domain.ChangeEvent) {
				fmt.Fprintln(out, printer.Format(e))
			},
		}),
	)

	watchOpts = append([]objwatch.Option{
		objwatch.OnNotify(func(object.Container, object.Key, any, any) {}),
	}, watchOpts...)

	report, err := watcher.Watch(doc, watchOpts...)
	if err != nil {
		return err
	}
	if !opts.Quiet {
		printSystemMessage(out, "%s", summarize(report))
	}

	if err := script.Apply(doc); err != nil {
		return err
	}

	if opts.Unwatch {
		report, err := watcher.Unwatch(doc)
		if err != nil {
			return err
		}
		if !opts.Quiet {
			printSystemMessage(out, "%s", summarize(report))
		}
	}

	encoded, err := document.Encode(doc)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "---")
	_, err = out.Write(encoded)
	return err
}

func summarize(r objwatch.Report) string {
	if r.Mode == domain.ModeUnwatch {
		return fmt.Sprintf("unwatch: %d scalars, %d restored, %d skipped", r.Scalars, r.Restored, r.Skipped)
	}
	return fmt.Sprintf("watch: %d scalars, %d installed, %d skipped", r.Scalars, r.Installed, r.Skipped)
}
