package http

import (
	"fmt"
	"sync"
	"time"

	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
)

// ChangeView is the JSON form of a change event.
type ChangeView struct {
	Timestamp  time.Time `json:"timestamp"`
	Path       string    `json:"path"`
	OldValue   any       `json:"old_value"`
	NewValue   any       `json:"new_value"`
	Stored     any       `json:"stored"`
	Overridden bool      `json:"overridden,omitempty"`
}

// changeLog is a fixed-size ring of the most recent changes.
type changeLog struct {
	mu    sync.Mutex
	ring  []ChangeView
	next  int
	count int
}

func newChangeLog(size int) *changeLog {
	return &changeLog{ring: make([]ChangeView, size)}
}

func (l *changeLog) add(e *domain.ChangeEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ring[l.next] = ChangeView{
		Timestamp:  e.Timestamp,
		Path:       e.Path.String(),
		OldValue:   jsonValue(e.OldValue),
		NewValue:   jsonValue(e.NewValue),
		Stored:     jsonValue(e.Stored),
		Overridden: e.Overridden,
	}
	l.next = (l.next + 1) % len(l.ring)
	l.count++
}

// total is the number of changes ever recorded.
func (l *changeLog) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// list returns up to limit of the latest changes, oldest first. A zero limit returns all retained.
func (l *changeLog) list(limit int) []ChangeView {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := min(l.count, len(l.ring))
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]ChangeView, 0, n)
	start := (l.next - n + len(l.ring)) % len(l.ring)
	for i := 0; i < n; i++ {
		out = append(out, l.ring[(start+i)%len(l.ring)])
	}
	return out
}

func jsonValue(v any) any {
	switch object.KindOf(v) {
	case object.KindObject, object.KindArray:
		return object.ToNative(v)
	case object.KindFunction:
		return nil
	case object.KindRegExp, object.KindError:
		return fmt.Sprint(v)
	}
	return v
}
