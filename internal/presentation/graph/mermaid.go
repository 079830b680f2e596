package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/objwatch/pkg/object"
)

// Overlay marks properties on the graph by their dotted path.
type Overlay struct {
	Watched []string
	Skipped []string
	Changed []string
}

// GenerateMermaid produces a Mermaid flowchart of an object graph.
// It applies semantic styling:
// - Root: ((Circle))
// - Object: [Rectangle]
// - Array: [[Subroutine]]
// - Scalar property: (Rounded), labelled with its key and kind
// Overlay classes (watched, skipped, changed) are applied to scalar properties if provided.
func GenerateMermaid(root *object.Object, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    root((\"root\"))\n")

	writeContainer(&sb, "root", root, nil)

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef watched fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef skipped fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")
		sb.WriteString("    classDef changed fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		writeClass(&sb, "watched", overlay.Watched)
		writeClass(&sb, "skipped", overlay.Skipped)
		writeClass(&sb, "changed", overlay.Changed)
	}

	return sb.String()
}

func writeContainer(sb *strings.Builder, parentID string, c object.Container, path object.Path) {
	for _, k := range c.Keys() {
		v, _ := c.Lookup(k)
		childPath := path.Append(k)
		id := nodeID(childPath)
		kind := object.KindOf(v)

		switch kind {
		case object.KindObject:
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escape(k.Name())))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", parentID, id))
			writeContainer(sb, id, v.(*object.Object), childPath)
		case object.KindArray:
			sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", id, escape(k.Name())))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", parentID, id))
			writeContainer(sb, id, v.(*object.Array), childPath)
		default:
			sb.WriteString(fmt.Sprintf("    %s(\"%s: %s\")\n", id, escape(k.Name()), kind))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", parentID, id))
		}
	}
}

func writeClass(sb *strings.Builder, class string, paths []string) {
	seen := make(map[string]bool)
	for _, p := range paths {
		path, ok := parseDotted(p)
		if !ok {
			continue
		}
		id := nodeID(path)
		if !seen[id] {
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", id, class))
		}
	}
}

// nodeID derives a Mermaid-safe identifier from a property path.
func nodeID(p object.Path) string {
	return "n_" + sanitizeMermaidID(p.String())
}

// parseDotted accepts the output of object.Path.String.
func parseDotted(s string) (object.Path, bool) {
	if s == "" {
		return nil, false
	}
	var p object.Path
	for _, seg := range strings.Split(s, ".") {
		name, rest, _ := strings.Cut(seg, "[")
		if name != "" {
			p = append(p, object.Name(name))
		}
		for rest != "" {
			idx, after, ok := strings.Cut(rest, "]")
			if !ok {
				return nil, false
			}
			var i int
			if _, err := fmt.Sscanf(idx, "%d", &i); err != nil {
				return nil, false
			}
			p = append(p, object.Index(i))
			rest = strings.TrimPrefix(after, "[")
		}
	}
	return p, true
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", "[", "_", "]", "", " ", "_")
	return r.Replace(id)
}
