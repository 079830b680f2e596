package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/objwatch/pkg/object"
)

// ErrReadOnly is returned when the target property refuses the write.
var ErrReadOnly = errors.New("property is read-only")

// ParsePath parses a dotted path with bracketed indices, e.g. "spec.ports[0].name".
// Slashes are accepted as separators too, so URL paths like "spec/ports/0" work;
// a numeric name is treated as an index when it lands on an array.
func ParsePath(s string) (object.Path, error) {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var path object.Path
	for _, segment := range strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == '/' }) {
		name, rest, bracket := strings.Cut(segment, "[")
		if bracket && rest == "" {
			return nil, fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidPath, s)
		}
		if name != "" {
			path = append(path, object.Name(name))
		}
		for rest != "" {
			idx, after, ok := strings.Cut(rest, "]")
			if !ok {
				return nil, fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidPath, s)
			}
			i, err := strconv.Atoi(idx)
			if err != nil || i < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrInvalidPath, idx, s)
			}
			path = append(path, object.Index(i))
			if after == "" {
				break
			}
			if !strings.HasPrefix(after, "[") {
				return nil, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidPath, after, s)
			}
			rest = after[1:]
		}
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	return path, nil
}

// keyFor lets a numeric name address an array element, as in "ports.0" or "ports/0".
func keyFor(c object.Container, k object.Key) object.Key {
	if _, ok := c.(*object.Array); !ok || k.IsIndex() {
		return k
	}
	if i, err := strconv.Atoi(k.Name()); err == nil && i >= 0 {
		return object.Index(i)
	}
	return k
}

// Resolve walks path from root and returns the container holding the last key.
func Resolve(root object.Container, path object.Path) (object.Container, object.Key, error) {
	if len(path) == 0 {
		return nil, object.Key{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	c := root
	for i, k := range path[:len(path)-1] {
		v, ok := c.Lookup(keyFor(c, k))
		if !ok {
			return nil, object.Key{}, fmt.Errorf("%w: %s", ErrPathNotFound, path[:i+1])
		}
		next, ok := v.(object.Container)
		if !ok || object.KindOf(v).IsScalar() {
			return nil, object.Key{}, fmt.Errorf("%w: %s is not a container", ErrPathNotFound, path[:i+1])
		}
		c = next
	}
	return c, keyFor(c, path[len(path)-1]), nil
}

// Lookup reads the value at path.
func Lookup(root object.Container, path object.Path) (any, error) {
	c, k, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	v, ok := c.Lookup(k)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return v, nil
}

// Assign writes v at path through the container, so intercepted properties notify.
// The parent container must exist; the final property is created if missing.
func Assign(root object.Container, path object.Path, v any) error {
	c, k, err := Resolve(root, path)
	if err != nil {
		return err
	}
	if !c.Assign(k, v) {
		return fmt.Errorf("%w: %s", ErrReadOnly, path)
	}
	return nil
}
