package collections

import (
	"errors"
	"reflect"
)

var (
	ErrValueExisted      = errors.New("value existed")
	ErrValueNotExisted   = errors.New("value not existed")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvariantViolated = errors.New("invariant violated")
)

// isNil reports whether v is nil or a typed nil of a nillable kind.
func isNil(v any) bool {
	switch v.(type) {
	case nil:
		return true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, string, bool:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
