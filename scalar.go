package arrow

import (
	"reflect"
)

// Primitive represents JSON representable scalar types
type Primitive interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Parse sets dst from a string, bool or number node; numeric strings are parsed for number and bool targets
func Parse[T Primitive](dst *T, v Value) {
	assign(dst, v, ParseOptional[T])
}

// ParseOptional is the optional counterpart of Parse
func ParseOptional[T Primitive](dst **T, v Value) {
	assignOptional(dst, v, ScalarRule[T])
}

// ScalarRule converts v into T
func ScalarRule[T Primitive](v Value) (T, bool) {
	var result T
	node, ok := v.Data()
	if !ok {
		return result, false
	}
	if !v.converter().Scalar(node, reflect.ValueOf(&result).Elem()) {
		var zero T
		return zero, false
	}
	return result, true
}
