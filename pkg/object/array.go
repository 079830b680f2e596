package object

// Array is an ordered list of index-keyed elements.
// Removed elements leave a hole that is skipped by Keys and reads as nil.
type Array struct {
	elems []*Descriptor
}

var _ Container = (*Array)(nil)

// NewArray creates an array holding the given values as plain elements.
func NewArray(values ...any) *Array {
	a := &Array{elems: make([]*Descriptor, 0, len(values))}
	for _, v := range values {
		a.Push(v)
	}
	return a
}

// Len returns the array length, holes included.
func (a *Array) Len() int {
	return len(a.elems)
}

// At reads element i. Holes and out-of-range indices read as nil.
func (a *Array) At(i int) any {
	v, _ := a.Lookup(Index(i))
	return v
}

// SetAt writes element i, growing the array with holes when i is past the end.
func (a *Array) SetAt(i int, v any) bool {
	return a.Assign(Index(i), v)
}

// Push appends a plain element.
func (a *Array) Push(v any) {
	d := DataProperty(v)
	a.elems = append(a.elems, &d)
}

func (a *Array) slot(k Key) (*Descriptor, int, bool) {
	i := k.Pos()
	if i < 0 || i >= len(a.elems) || a.elems[i] == nil {
		return nil, i, false
	}
	return a.elems[i], i, true
}

func (a *Array) Keys() []Key {
	keys := make([]Key, 0, len(a.elems))
	for i, d := range a.elems {
		if d != nil && d.Enumerable {
			keys = append(keys, Index(i))
		}
	}
	return keys
}

func (a *Array) Lookup(k Key) (any, bool) {
	d, _, ok := a.slot(k)
	if !ok {
		return nil, false
	}
	return d.read(), true
}

func (a *Array) Assign(k Key, v any) bool {
	d, i, ok := a.slot(k)
	if ok {
		return d.write(v)
	}
	if i < 0 {
		return false
	}
	return a.Define(k, DataProperty(v))
}

func (a *Array) Remove(k Key) bool {
	d, i, ok := a.slot(k)
	if !ok {
		return true
	}
	if !d.Configurable {
		return false
	}
	a.elems[i] = nil
	return true
}

func (a *Array) Define(k Key, d Descriptor) bool {
	cur, i, ok := a.slot(k)
	if i < 0 {
		return false
	}
	if ok && !cur.Configurable {
		return false
	}
	for len(a.elems) <= i {
		a.elems = append(a.elems, nil)
	}
	a.elems[i] = &d
	return true
}

func (a *Array) Describe(k Key) (Descriptor, bool) {
	d, _, ok := a.slot(k)
	if !ok {
		return Descriptor{}, false
	}
	return *d, true
}
