package tui

import (
	"testing"

	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
	"github.com/stretchr/testify/assert"
)

func TestChangePrinter_Plain(t *testing.T) {
	cp := NewChangePrinter(false)

	line := cp.Format(&domain.ChangeEvent{
		Path:     object.Path{object.Name("spec"), object.Name("image")},
		OldValue: "nginx",
		NewValue: "caddy",
	})
	assert.Equal(t, `spec.image: "nginx" -> "caddy"`, line)

	line = cp.Format(&domain.ChangeEvent{
		Path:       object.Path{object.Name("limits"), object.Index(0)},
		OldValue:   nil,
		NewValue:   99,
		Overridden: true,
		Stored:     10,
	})
	assert.Equal(t, "limits[0]: null -> 99 (stored 10)", line)

	line = cp.Format(&domain.ChangeEvent{
		Path:     object.Path{object.Name("x")},
		OldValue: object.NewArray(1, 2),
		NewValue: object.New(),
	})
	assert.Equal(t, "x: [2 items] -> {...}", line)
}
