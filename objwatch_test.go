package objwatch_test

import (
	"errors"
	"testing"

	"github.com/aretw0/objwatch"
	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
	"github.com/aretw0/objwatch/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	c        object.Container
	key      object.Key
	newValue any
	oldValue any
}

type spy struct {
	calls []call
}

func (s *spy) option() objwatch.Option {
	return objwatch.OnNotify(func(c object.Container, key object.Key, newValue, oldValue any) {
		s.calls = append(s.calls, call{c, key, newValue, oldValue})
	})
}

func flat() *object.Object {
	obj := object.New()
	obj.Set("p", 1)
	obj.Set("q", "text")
	obj.Set("r", true)
	return obj
}

func TestWatch_FlatObjectFiresOncePerChange(t *testing.T) {
	obj := flat()
	s := &spy{}

	report, err := objwatch.Watch(obj, s.option())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Installed)

	for _, name := range []string{"p", "q", "r"} {
		s.calls = nil
		old := obj.Get(name)
		obj.Set(name, "changed-"+name)

		require.Len(t, s.calls, 1, name)
		assert.Same(t, obj, s.calls[0].c)
		assert.Equal(t, object.Name(name), s.calls[0].key)
		assert.Equal(t, "changed-"+name, s.calls[0].newValue)
		assert.Equal(t, old, s.calls[0].oldValue)
	}
}

func TestWatch_EqualValueNeverFires(t *testing.T) {
	obj := flat()
	s := &spy{}
	_, err := objwatch.Watch(obj, s.option())
	require.NoError(t, err)

	obj.Set("p", 1)
	obj.Set("p", 1.0)
	obj.Set("q", "text")
	obj.Set("r", true)

	assert.Empty(t, s.calls)
}

func TestWatch_OverrideIsReadBack(t *testing.T) {
	obj := flat()
	_, err := objwatch.Watch(obj, objwatch.OnChange(func(c object.Container, key object.Key, newValue, oldValue any) (any, bool) {
		if n, ok := newValue.(int); ok && n > 10 {
			return 10, true
		}
		return nil, false
	}))
	require.NoError(t, err)

	obj.Set("p", 50)
	assert.Equal(t, 10, obj.Get("p"))

	obj.Set("p", 5)
	assert.Equal(t, 5, obj.Get("p"))
}

func TestWatch_Depth(t *testing.T) {
	build := func() (*object.Object, *object.Object) {
		inner := object.New()
		inner.Set("b", 1)
		root := object.New()
		root.Set("a", inner)
		return root, inner
	}

	t.Run("depth 0 leaves nested properties alone", func(t *testing.T) {
		root, inner := build()
		s := &spy{}
		_, err := objwatch.Watch(root, s.option())
		require.NoError(t, err)

		inner.Set("b", 2)
		assert.Empty(t, s.calls)
		desc, _ := inner.Describe(object.Name("b"))
		assert.False(t, desc.IsAccessor())
	})

	t.Run("depth 1 intercepts nested properties", func(t *testing.T) {
		root, inner := build()
		s := &spy{}
		_, err := objwatch.Watch(root, s.option(), objwatch.Depth(1))
		require.NoError(t, err)

		inner.Set("b", 2)
		require.Len(t, s.calls, 1)
		assert.Same(t, inner, s.calls[0].c)
		assert.Equal(t, "b", s.calls[0].key.Name())
	})
}

func TestWatch_ToWatchFilter(t *testing.T) {
	obj := object.New()
	obj.Set("x", 1)
	obj.Set("y", 2)
	s := &spy{}

	_, err := objwatch.Watch(obj, s.option(), objwatch.ToWatch("x"))
	require.NoError(t, err)

	obj.Set("y", 20)
	assert.Empty(t, s.calls)

	obj.Set("x", 10)
	require.Len(t, s.calls, 1)
	assert.Equal(t, "x", s.calls[0].key.Name())
}

func TestWatch_Arrays(t *testing.T) {
	t.Run("watchArrays intercepts elements", func(t *testing.T) {
		arr := object.NewArray(1, 2, 3)
		obj := object.New()
		obj.Set("arr", arr)
		s := &spy{}

		_, err := objwatch.Watch(obj, s.option(), objwatch.WatchArrays(true))
		require.NoError(t, err)

		arr.SetAt(0, 9)
		require.Len(t, s.calls, 1)
		assert.Same(t, arr, s.calls[0].c)
		assert.Equal(t, object.Index(0), s.calls[0].key)
		assert.Equal(t, 9, s.calls[0].newValue)
		assert.Equal(t, 1, s.calls[0].oldValue)
	})

	t.Run("elements untouched by default", func(t *testing.T) {
		arr := object.NewArray(1, 2, 3)
		obj := object.New()
		obj.Set("arr", arr)
		s := &spy{}

		_, err := objwatch.Watch(obj, s.option())
		require.NoError(t, err)

		arr.SetAt(0, 9)
		assert.Empty(t, s.calls)
	})

	t.Run("traverseArrays reaches element objects", func(t *testing.T) {
		item := object.New()
		item.Set("id", 1)
		obj := object.New()
		obj.Set("items", object.NewArray(item))
		s := &spy{}

		_, err := objwatch.Watch(obj, s.option(), objwatch.TraverseArrays(true), objwatch.Depth(1))
		require.NoError(t, err)

		item.Set("id", 2)
		assert.Len(t, s.calls, 1)
	})
}

func TestUnwatch_RestoresPlainValues(t *testing.T) {
	obj := flat()
	s := &spy{}
	_, err := objwatch.Watch(obj, s.option())
	require.NoError(t, err)
	obj.Set("p", 42)
	require.Len(t, s.calls, 1)

	report, err := objwatch.Unwatch(obj)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Restored)

	obj.Set("p", 43)
	obj.Set("q", "other")
	assert.Len(t, s.calls, 1, "no callback after unwatch")

	desc, _ := obj.Describe(object.Name("p"))
	assert.False(t, desc.IsAccessor())
	assert.Equal(t, 43, obj.Get("p"))
}

func TestUnwatch_ValueIsLastCommitted(t *testing.T) {
	obj := flat()
	_, err := objwatch.Watch(obj, objwatch.OnChange(func(object.Container, object.Key, any, any) (any, bool) {
		return "override", true
	}))
	require.NoError(t, err)
	obj.Set("q", "input")

	_, err = objwatch.Unwatch(obj)
	require.NoError(t, err)

	desc, _ := obj.Describe(object.Name("q"))
	assert.Equal(t, "override", desc.Value)
}

func TestWatch_MissingCallbackLeavesTargetUnchanged(t *testing.T) {
	obj := flat()

	_, err := objwatch.Watch(obj, objwatch.Depth(-1), objwatch.WatchArrays(true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, objwatch.ErrInvalidArgument))

	for _, k := range obj.Keys() {
		desc, _ := obj.Describe(k)
		assert.False(t, desc.IsAccessor(), k.Name())
	}
}

func TestWatch_InvalidDepth(t *testing.T) {
	s := &spy{}
	_, err := objwatch.Watch(flat(), s.option(), objwatch.Depth(-2))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestWatch_NilTarget(t *testing.T) {
	s := &spy{}
	var obj *object.Object

	_, err := objwatch.Watch(obj, s.option())
	assert.ErrorIs(t, err, domain.ErrNilTarget)

	_, err = objwatch.Unwatch(nil)
	assert.ErrorIs(t, err, domain.ErrNilTarget)
}

func TestWatch_ConstantsSkippedBuildContinues(t *testing.T) {
	obj := object.New()
	obj.Set("a", 1)
	obj.Define(object.Name("version"), object.Constant("v1"))
	obj.Set("b", 2)
	s := &spy{}

	report, err := objwatch.Watch(obj, s.option())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Installed)
	assert.Equal(t, 1, report.Skipped)

	obj.Set("b", 3)
	assert.Len(t, s.calls, 1, "properties after the constant are still watched")
	assert.Equal(t, "v1", obj.Get("version"))
}

func TestHandle(t *testing.T) {
	obj := flat()
	h := objwatch.For(obj)
	s := &spy{}

	assert.Same(t, obj, h.Target())

	_, err := h.Watch(s.option(), objwatch.ToWatch("p", "q"))
	require.NoError(t, err)
	obj.Set("p", 2)
	obj.Set("r", false)
	assert.Len(t, s.calls, 1)

	_, err = h.Unwatch()
	require.NoError(t, err)
	obj.Set("p", 3)
	assert.Len(t, s.calls, 1)
}

func TestWatcher_WithMetricsAndHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	var changed []string
	w := objwatch.New(
		objwatch.WithMetrics(metrics),
		objwatch.WithLifecycleHooks(domain.LifecycleHooks{
			OnChange: func(e *domain.ChangeEvent) { changed = append(changed, e.Path.String()) },
		}),
	)

	inner := object.New()
	inner.Set("port", 80)
	obj := object.New()
	obj.Set("server", inner)

	s := &spy{}
	_, err := w.Watch(obj, s.option(), objwatch.Depth(-1))
	require.NoError(t, err)

	inner.Set("port", 8080)
	assert.Equal(t, []string{"server.port"}, changed)
	assert.Len(t, s.calls, 1)

	count, err := testutil.GatherAndCount(reg, "objwatch_changes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
