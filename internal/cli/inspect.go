package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/objwatch"
	"github.com/aretw0/objwatch/internal/presentation/graph"
	"github.com/aretw0/objwatch/internal/presentation/tui"
	"github.com/aretw0/objwatch/pkg/document"
	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
)

// Inspect output formats.
const (
	FormatTable   = "table"
	FormatMermaid = "mermaid"
	FormatJSON    = "json"
)

// InspectOptions configures the inspect command.
type InspectOptions struct {
	Document string
	Flags    WatchFlags
	Format   string
	Styled   bool
	Logger   *slog.Logger
}

// PropertyRow is one property visited by the inspection build.
type PropertyRow struct {
	Path   string        `json:"path"`
	Kind   object.Kind   `json:"kind"`
	Result domain.Result `json:"result"`
}

// Inspection is the outcome of a dry watch build.
type Inspection struct {
	Report     objwatch.Report `json:"report"`
	Properties []PropertyRow   `json:"properties"`
}

// InspectDocument runs a watch build on the document and records what it did
// to every property. The document is discarded afterwards.
func InspectDocument(doc *object.Object, opts []objwatch.Option, logger *slog.Logger) (*Inspection, error) {
	var rows []PropertyRow
	record := func(e *domain.PropertyEvent) {
		v, _ := e.Container.Lookup(e.Key)
		rows = append(rows, PropertyRow{Path: e.Path.String(), Kind: object.KindOf(v), Result: e.Result})
	}

	watcher := objwatch.New(
		objwatch.WithLogger(logger),
		objwatch.WithLifecycleHooks(domain.LifecycleHooks{OnInstall: record, OnSkip: record}),
	)
	opts = append([]objwatch.Option{
		objwatch.OnNotify(func(object.Container, object.Key, any, any) {}),
	}, opts...)

	report, err := watcher.Watch(doc, opts...)
	if err != nil {
		return nil, err
	}
	return &Inspection{Report: report, Properties: rows}, nil
}

// Inspect prints which properties a watch build would intercept.
func Inspect(opts InspectOptions, out io.Writer) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	doc, err := document.LoadFile(opts.Document)
	if err != nil {
		return err
	}
	watchOpts, unused, err := opts.Flags.Build(nil)
	if err != nil {
		return err
	}
	if len(unused) > 0 {
		logger.Warn("ignoring unknown watch options", "keys", unused)
	}

	inspection, err := InspectDocument(doc, watchOpts, logger)
	if err != nil {
		return err
	}

	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(inspection)
	case FormatMermaid:
		_, err := fmt.Fprint(out, graph.GenerateMermaid(doc, inspection.Overlay()))
		return err
	case "", FormatTable:
		md := inspection.Markdown()
		if opts.Styled {
			render, err := tui.NewRenderer(terminalWidth(out, 80))
			if err != nil {
				return err
			}
			if md, err = render(md); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(out, md)
		return err
	}
	return fmt.Errorf("unknown format %q", opts.Format)
}

// Markdown renders the inspection as a markdown table.
func (in *Inspection) Markdown() string {
	var sb strings.Builder
	sb.WriteString("| Path | Kind | Result |\n")
	sb.WriteString("| --- | --- | --- |\n")
	for _, row := range in.Properties {
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %s |\n", row.Path, row.Kind, row.Result))
	}
	sb.WriteString(fmt.Sprintf("\n**%d** scalars, **%d** installed, **%d** skipped\n",
		in.Report.Scalars, in.Report.Installed, in.Report.Skipped))
	return sb.String()
}

// Overlay marks installed and skipped properties for the graph view.
func (in *Inspection) Overlay() *graph.Overlay {
	overlay := &graph.Overlay{}
	for _, row := range in.Properties {
		if row.Result.Skipped() {
			overlay.Skipped = append(overlay.Skipped, row.Path)
		} else {
			overlay.Watched = append(overlay.Watched, row.Path)
		}
	}
	return overlay
}
