package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/objwatch/internal/presentation/graph"
	"github.com/aretw0/objwatch/pkg/object"
)

func TestGenerateMermaid(t *testing.T) {
	root := object.New()
	root.Set("name", "web")
	spec := object.New()
	spec.Set("image", "nginx")
	spec.Set("ports", object.NewArray(80, 443))
	root.Set("spec", spec)

	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes",
			contains: []string{
				"root((\"root\"))",
				"n_name(\"name: string\")",
				"n_spec[\"spec\"]",
				"n_spec_ports[[\"ports\"]]",
				"n_spec_ports_0(\"0: number\")",
				"root --> n_spec",
				"n_spec --> n_spec_ports",
			},
			excludes: []string{"classDef"},
		},
		{
			name: "Overlay Classes",
			overlay: &graph.Overlay{
				Watched: []string{"name", "spec.image"},
				Skipped: []string{"spec.ports[1]"},
				Changed: []string{"spec.image", "spec.image"},
			},
			contains: []string{
				"classDef watched",
				"class n_name watched;",
				"class n_spec_image watched;",
				"class n_spec_ports_1 skipped;",
				"class n_spec_image changed;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(root, tt.overlay)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("expected output to contain %q, got:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("expected output not to contain %q", s)
				}
			}
			if n := strings.Count(got, "class n_spec_image changed;"); tt.overlay != nil && n != 1 {
				t.Errorf("expected duplicate overlay paths to collapse, got %d", n)
			}
		})
	}
}
