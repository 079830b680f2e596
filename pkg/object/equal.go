package object

import (
	"math"
	"reflect"
	"time"
)

// Equal reports whether writing b over a is a no-op. The policy is:
//
//   - nil equals only nil, and typed nil *Object and *Array values count as nil;
//   - numbers compare by numeric value across all Go numeric kinds (1 == 1.0), NaN never equals;
//   - strings and booleans compare by value, without coercion to or from numbers;
//   - dates compare with time.Time.Equal;
//   - functions are never equal to each other, so writing a function-valued
//     property back to itself still reports a change;
//   - objects, arrays, regexps and other pointers compare by identity;
//   - remaining values compare with == when they share a comparable dynamic type.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka == KindNull || kb == KindNull {
		return ka == kb
	}
	if ka != kb {
		return false
	}

	switch ka {
	case KindNumber:
		return numberEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	case KindString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case KindBool:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case KindDate:
		ta, oka := asTime(a)
		tb, okb := asTime(b)
		if !oka || !okb {
			return oka == okb
		}
		return ta.Equal(tb)
	case KindFunction:
		return false
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	}
	return time.Time{}, false
}

func numberEqual(a, b reflect.Value) bool {
	switch {
	case isFloat(a) || isFloat(b):
		fa, fb := toFloat(a), toFloat(b)
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return false
		}
		return fa == fb
	case isSigned(a) && isSigned(b):
		return a.Int() == b.Int()
	case !isSigned(a) && !isSigned(b):
		return a.Uint() == b.Uint()
	case isSigned(a):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
}

func isFloat(v reflect.Value) bool {
	k := v.Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isFloat(v):
		return v.Float()
	case isSigned(v):
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}
