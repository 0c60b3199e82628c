package unittest

import "reflect"

// equalValues compares like ==, extended to mixed types: numbers of
// different kinds compare by value and mutually convertible types are
// converted first. Values that are not comparable fall back to deep
// equality.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if isNumber(va) && isNumber(vb) {
		return numbersEqual(va, vb)
	}

	if va.Type() == vb.Type() {
		if va.Comparable() && vb.Comparable() {
			return va.Equal(vb)
		}
		return reflect.DeepEqual(a, b)
	}

	ta, tb := va.Type(), vb.Type()
	if ta.ConvertibleTo(tb) && tb.ConvertibleTo(ta) {
		return equalValues(a, vb.Convert(ta).Interface())
	}
	return false
}

func isNumber(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func numbersEqual(a, b reflect.Value) bool {
	switch {
	case isFloat(a) || isFloat(b):
		return toFloat(a) == toFloat(b)
	case isSigned(a) && isSigned(b):
		return a.Int() == b.Int()
	case isSigned(a):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case isSigned(b):
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
	return a.Uint() == b.Uint()
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isFloat(v):
		return v.Float()
	case isSigned(v):
		return float64(v.Int())
	}
	return float64(v.Uint())
}
