package runtime

import (
	"testing"

	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
	"github.com/stretchr/testify/assert"
)

// sample builds:
//
//	{ name: "root", count: 1, child: { leaf: true, grand: { deep: 3 } }, list: [1, { item: "x" }, [2]] }
func sample() *object.Object {
	grand := object.New()
	grand.Set("deep", 3)

	child := object.New()
	child.Set("leaf", true)
	child.Set("grand", grand)

	item := object.New()
	item.Set("item", "x")

	root := object.New()
	root.Set("name", "root")
	root.Set("count", 1)
	root.Set("child", child)
	root.Set("list", object.NewArray(1, item, object.NewArray(2)))
	return root
}

func collect(root object.Container, maxDepth int, policy Policy) ([]string, int) {
	var paths []string
	n := Walk(root, func(c object.Container, key object.Key, path object.Path) {
		paths = append(paths, path.String())
	}, 0, maxDepth, policy)
	return paths, n
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name      string
		maxDepth  int
		policy    Policy
		wantPaths []string
		wantCount int
	}{
		{
			name:      "Depth 0 visits root scalars only",
			maxDepth:  0,
			policy:    Policy{WatchProps: true},
			wantPaths: []string{"name", "count"},
			wantCount: 2,
		},
		{
			name:      "Depth 1 reaches nested object",
			maxDepth:  1,
			policy:    Policy{WatchProps: true},
			wantPaths: []string{"name", "count", "child.leaf"},
			wantCount: 3,
		},
		{
			name:      "Unbounded reaches every object level",
			maxDepth:  domain.Unbounded,
			policy:    Policy{WatchProps: true},
			wantPaths: []string{"name", "count", "child.leaf", "child.grand.deep"},
			wantCount: 4,
		},
		{
			name:      "WatchArrays selects scalar elements at depth 0",
			maxDepth:  0,
			policy:    Policy{WatchProps: true, WatchArrays: true},
			wantPaths: []string{"name", "count", "list[0]"},
			wantCount: 2,
		},
		{
			name:      "TraverseArrays needs depth for element objects",
			maxDepth:  0,
			policy:    Policy{WatchProps: true, TraverseArrays: true},
			wantPaths: []string{"name", "count"},
			wantCount: 2,
		},
		{
			name:      "TraverseArrays descends into element objects and arrays",
			maxDepth:  1,
			policy:    Policy{WatchProps: true, TraverseArrays: true},
			wantPaths: []string{"name", "count", "child.leaf", "list[1].item", "list[2][0]"},
			wantCount: 5,
		},
		{
			name:      "WatchProps off still counts scalars",
			maxDepth:  domain.Unbounded,
			policy:    Policy{WatchArrays: true},
			wantPaths: []string{"list[0]"},
			wantCount: 4,
		},
		{
			name:      "Filter applies at every level",
			maxDepth:  domain.Unbounded,
			policy:    Policy{WatchProps: true, Filter: map[string]struct{}{"child": {}, "grand": {}, "deep": {}, "name": {}}},
			wantPaths: []string{"name", "child.grand.deep"},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, n := collect(sample(), tt.maxDepth, tt.policy)
			assert.Equal(t, tt.wantPaths, paths)
			assert.Equal(t, tt.wantCount, n)
		})
	}
}

func TestWalk_ElementsShareOneLevel(t *testing.T) {
	// Every element of an array sits at the same depth, so with depth 1 all
	// three element objects are traversed, not only the first.
	root := object.New()
	arr := object.NewArray()
	for i := 0; i < 3; i++ {
		o := object.New()
		o.Set("v", i)
		arr.Push(o)
	}
	root.Set("items", arr)

	paths, _ := collect(root, 1, Policy{WatchProps: true, TraverseArrays: true})
	assert.Equal(t, []string{"items[0].v", "items[1].v", "items[2].v"}, paths)
}

func TestWalk_CountsPropertiesOfTraversedElements(t *testing.T) {
	el := object.New()
	el.Set("a", 1)
	el.Set("b", 2)
	root := object.New()
	root.Set("list", object.NewArray(el, 3))

	paths, n := collect(root, domain.Unbounded, Policy{WatchProps: true, TraverseArrays: true})
	assert.Equal(t, []string{"list[0].a", "list[0].b"}, paths)
	assert.Equal(t, 2, n)

	paths, n = collect(root, domain.Unbounded, Policy{WatchProps: true, TraverseArrays: true, WatchArrays: true})
	assert.Equal(t, []string{"list[0].a", "list[0].b", "list[1]"}, paths)
	assert.Equal(t, 2, n, "scalar elements are visited but not counted")
}

func TestWalk_OpaqueValuesAreScalars(t *testing.T) {
	root := object.New()
	root.Set("fn", func() {})
	root.Set("native", map[string]any{"hidden": 1})
	root.Set("nothing", nil)

	paths, n := collect(root, domain.Unbounded, Policy{WatchProps: true})
	assert.Equal(t, []string{"fn", "native", "nothing"}, paths)
	assert.Equal(t, 3, n)
}

func TestWalk_SkipsNonEnumerable(t *testing.T) {
	root := object.New()
	root.Set("a", 1)
	root.Define(object.Name("secret"), object.Descriptor{Value: 2, Writable: true, Configurable: true})

	paths, _ := collect(root, 0, Policy{WatchProps: true})
	assert.Equal(t, []string{"a"}, paths)
}

func TestWalk_ArrayRootFiltersByIndexName(t *testing.T) {
	arr := object.NewArray("a", "b", "c")

	paths, _ := collect(arr, 0, Policy{WatchProps: true, Filter: map[string]struct{}{"1": {}}})
	assert.Equal(t, []string{"[1]"}, paths)
}
