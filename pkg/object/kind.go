package object

import (
	"reflect"
	"regexp"
	"time"
)

// Kind classifies a value for traversal.
type Kind string

const (
	KindNull     Kind = "null"
	KindBool     Kind = "boolean"
	KindNumber   Kind = "number"
	KindString   Kind = "string"
	KindFunction Kind = "function"
	KindRegExp   Kind = "regexp"
	KindDate     Kind = "date"
	KindError    Kind = "error"
	KindArray    Kind = "array"
	KindObject   Kind = "object"
	KindOpaque   Kind = "opaque" // any other Go value, watched as an atomic value
)

// KindOf returns the traversal classification of v.
// Only *Object and *Array are containers; function, regexp, date and error
// values are opaque scalars even though they are reference types in Go.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case *Object:
		if x == nil {
			return KindNull
		}
		return KindObject
	case *Array:
		if x == nil {
			return KindNull
		}
		return KindArray
	case bool:
		return KindBool
	case string:
		return KindString
	case time.Time, *time.Time:
		return KindDate
	case *regexp.Regexp:
		return KindRegExp
	case error:
		return KindError
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Func:
		return KindFunction
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	}
	return KindOpaque
}

// IsScalar reports whether values of kind k are watched as atomic values.
func (k Kind) IsScalar() bool {
	return k != KindArray && k != KindObject
}
