package object

import "strconv"

// Key addresses a property of a Container: a name for Objects, an index for Arrays.
type Key struct {
	name    string
	index   int
	indexed bool
}

// Name returns the key of a named property.
func Name(s string) Key {
	return Key{name: s}
}

// Index returns the key of an array element.
func Index(i int) Key {
	return Key{index: i, indexed: true}
}

// IsIndex reports whether the key addresses an array element.
func (k Key) IsIndex() bool {
	return k.indexed
}

// Name returns the property name. For index keys it is the decimal form of the index.
func (k Key) Name() string {
	if k.indexed {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// Pos returns the element index, or -1 for named keys.
func (k Key) Pos() int {
	if !k.indexed {
		return -1
	}
	return k.index
}

func (k Key) String() string {
	return k.Name()
}

// Path is the sequence of keys leading from a root container to a property.
type Path []Key

// String renders the path in dotted form, with indices in brackets: a.b[0].c
func (p Path) String() string {
	var b []byte
	for i, k := range p {
		if k.indexed {
			b = append(b, '[')
			b = strconv.AppendInt(b, int64(k.index), 10)
			b = append(b, ']')
			continue
		}
		if i > 0 {
			b = append(b, '.')
		}
		b = append(b, k.name...)
	}
	return string(b)
}

// Append returns a new path with k added. The receiver is never modified.
func (p Path) Append(k Key) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, k)
}

// MarshalText encodes the path in its dotted form.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
