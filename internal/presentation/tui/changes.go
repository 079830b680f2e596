package tui

import (
	"fmt"

	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
	"github.com/muesli/termenv"
)

// ChangePrinter formats change events as single lines, coloured when the output is a terminal.
type ChangePrinter struct {
	styled  bool
	profile termenv.Profile
}

// NewChangePrinter creates a printer. Unstyled printers emit no escape sequences.
func NewChangePrinter(styled bool) *ChangePrinter {
	return &ChangePrinter{styled: styled, profile: termenv.ColorProfile()}
}

// Format renders e as "path: old -> new", noting the stored value when the callback overrode it.
func (cp *ChangePrinter) Format(e *domain.ChangeEvent) string {
	line := fmt.Sprintf("%s: %s -> %s",
		cp.paint(e.Path.String(), "", true),
		cp.paint(display(e.OldValue), "#fb7185", false),
		cp.paint(display(e.NewValue), "#34d399", false),
	)
	if e.Overridden {
		line += fmt.Sprintf(" (stored %s)", cp.paint(display(e.Stored), "#fbbf24", false))
	}
	return line
}

func (cp *ChangePrinter) paint(s, color string, bold bool) string {
	if !cp.styled {
		return s
	}
	st := termenv.String(s)
	if color != "" {
		st = st.Foreground(cp.profile.Color(color))
	}
	if bold {
		st = st.Bold()
	}
	return st.String()
}

func display(v any) string {
	switch object.KindOf(v) {
	case object.KindNull:
		return "null"
	case object.KindString:
		return fmt.Sprintf("%q", v)
	case object.KindObject:
		return "{...}"
	case object.KindArray:
		return fmt.Sprintf("[%d items]", v.(*object.Array).Len())
	}
	return fmt.Sprint(v)
}
