package runtime

import (
	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
)

// VisitFunc is called for every property selected by the walker.
// path is the key path from the walk root to the property.
type VisitFunc func(c object.Container, key object.Key, path object.Path)

// Policy controls which properties the walker selects.
type Policy struct {
	// WatchArrays selects scalar elements of array-valued properties.
	WatchArrays bool
	// TraverseArrays recurses into object and array elements of array-valued properties.
	TraverseArrays bool
	// WatchProps selects scalar properties.
	WatchProps bool
	// Filter restricts every level to the listed names. Nil means all names.
	Filter map[string]struct{}
}

func (p Policy) allows(k object.Key) bool {
	if p.Filter == nil {
		return true
	}
	_, ok := p.Filter[k.Name()]
	return ok
}

// Walk visits the properties of root selected by policy and returns the number
// of scalar properties it encountered.
//
// Depth counts container levels: the properties of root are at depth 0, the
// properties of a nested object are one level deeper than the object holding
// it. Elements of an array-valued property live one level deeper than the
// container of that property, whatever their position. The walk stops
// descending once depth exceeds maxDepth, unless maxDepth is domain.Unbounded.
func Walk(root object.Container, visit VisitFunc, depth, maxDepth int, policy Policy) int {
	return walk(root, nil, visit, depth, maxDepth, policy)
}

func walk(c object.Container, path object.Path, visit VisitFunc, depth, maxDepth int, policy Policy) int {
	if maxDepth != domain.Unbounded && depth > maxDepth {
		return 0
	}

	props := 0
	// Keys is a snapshot; visiting may redefine the properties it lists.
	for _, key := range c.Keys() {
		if !policy.allows(key) {
			continue
		}
		value, _ := c.Lookup(key)

		switch v := value.(type) {
		case *object.Array:
			if v == nil {
				break
			}
			props += walkElements(v, path.Append(key), visit, depth+1, maxDepth, policy)
			continue
		case *object.Object:
			if v == nil {
				break
			}
			props += walk(v, path.Append(key), visit, depth+1, maxDepth, policy)
			continue
		}

		if policy.WatchProps {
			visit(c, key, path.Append(key))
		}
		props++
	}
	return props
}

// walkElements handles the elements of an array-valued property.
// depth is the level of the elements themselves. It returns the scalars counted
// inside traversed elements; scalar elements are not counted.
func walkElements(arr *object.Array, path object.Path, visit VisitFunc, depth, maxDepth int, policy Policy) int {
	props := 0
	for _, idx := range arr.Keys() {
		elem, _ := arr.Lookup(idx)
		kind := object.KindOf(elem)

		if policy.TraverseArrays && !kind.IsScalar() {
			props += walk(elem.(object.Container), path.Append(idx), visit, depth, maxDepth, policy)
		}
		if policy.WatchArrays && kind.IsScalar() {
			visit(arr, idx, path.Append(idx))
		}
	}
	return props
}
