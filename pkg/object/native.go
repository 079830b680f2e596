package object

import "sort"

// FromNative converts plain Go values into an object graph.
// map[string]any becomes an *Object (keys sorted, since Go maps are unordered),
// []any becomes an *Array; everything else is returned unchanged.
func FromNative(v any) any {
	switch x := v.(type) {
	case map[string]any:
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)

		obj := New()
		for _, name := range names {
			obj.Set(name, FromNative(x[name]))
		}
		return obj
	case []any:
		arr := NewArray()
		for _, e := range x {
			arr.Push(FromNative(e))
		}
		return arr
	}
	return v
}

// ToNative converts an object graph back into plain Go values, reading
// every property through its getter. Non-enumerable properties are omitted.
func ToNative(v any) any {
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil
		}
		out := make(map[string]any, x.Len())
		for _, k := range x.Keys() {
			val, _ := x.Lookup(k)
			out[k.Name()] = ToNative(val)
		}
		return out
	case *Array:
		if x == nil {
			return nil
		}
		out := make([]any, x.Len())
		for i := range out {
			out[i] = ToNative(x.At(i))
		}
		return out
	}
	return v
}
