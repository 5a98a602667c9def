package visitor

import (
	"reflect"
)

// SliceVisitor implements Visitor[int, E] for []E
type SliceVisitor[E any] struct {
	data []E
}

// SliceVisitorOf creates a Visitor for a decoded JSON sequence.
// It returns false when node is not a sequence.
func SliceVisitorOf(node interface{}) (Visitor[int, interface{}], bool) {
	switch actual := node.(type) {
	case []interface{}:
		visitor := &SliceVisitor[interface{}]{data: actual}
		return visitor.Visit, true
	case []map[string]interface{}:
		return AnyTypedSliceVisitorOf[map[string]interface{}](actual), true
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), true
	case []float64:
		return AnyTypedSliceVisitorOf[float64](actual), true
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), true
	case []bool:
		return AnyTypedSliceVisitorOf[bool](actual), true
	case []byte, nil:
		return nil, false
	}
	val := reflect.ValueOf(node)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, false
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, true
}

// IsSequence reports whether node can be visited as a sequence
func IsSequence(node interface{}) bool {
	_, ok := SliceVisitorOf(node)
	return ok
}

// Visit iterates over the slice, calling the provided function for each element.
// The key is the slice index.
func (sw *SliceVisitor[E]) Visit(f func(key int, element E) bool) {
	for i, elem := range sw.data {
		if !f(i, elem) {
			break
		}
	}
}

// AnyTypedSliceVisitorOf return visitor
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) bool) {
		for i, e := range slice {
			if !f(i, e) {
				break
			}
		}
	}
}

// AnySliceVisitor implements Visitor[int, interface{}] for slices of any type.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over any slice type via reflection.
func (v *AnySliceVisitor) Visit(f func(key int, element interface{}) bool) {
	for i := 0; i < v.data.Len(); i++ {
		if !f(i, v.data.Index(i).Interface()) {
			break
		}
	}
}
