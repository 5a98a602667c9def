package visitor

import (
	"reflect"
)

// MapVisitor holds a map of type map[string]E and implements the Visitor interface.
type MapVisitor[E any] struct {
	data map[string]E
}

// MapVisitorOf creates a Visitor for a decoded JSON mapping.
// It returns false when node is not a string keyed map.
func MapVisitorOf(node interface{}) (Visitor[string, interface{}], bool) {
	switch actual := node.(type) {
	case map[string]interface{}:
		visitor := &MapVisitor[interface{}]{data: actual}
		return visitor.Visit, true
	case map[string]string:
		return AnyTypedMapVisitorOf[string](actual), true
	case map[string]float64:
		return AnyTypedMapVisitorOf[float64](actual), true
	case map[string]bool:
		return AnyTypedMapVisitorOf[bool](actual), true
	case nil:
		return nil, false
	}
	val := reflect.ValueOf(node)
	if val.Kind() != reflect.Map || val.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, true
}

// IsMapping reports whether node can be visited as a mapping
func IsMapping(node interface{}) bool {
	_, ok := MapVisitorOf(node)
	return ok
}

// Visit iterates over the map and calls f for each (key, element).
// If f returns false, iteration stops early.
func (v *MapVisitor[E]) Visit(f func(key string, element E) bool) {
	for k, e := range v.data {
		if !f(k, e) {
			break
		}
	}
}

// AnyTypedMapVisitorOf return visitor
func AnyTypedMapVisitorOf[E any](aMap map[string]E) Visitor[string, interface{}] {
	return func(f func(key string, element interface{}) bool) {
		for k, e := range aMap {
			if !f(k, e) {
				break
			}
		}
	}
}

// AnyMapVisitor visits string keyed maps of any element type
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key string, element interface{}) bool) {
	iter := v.data.MapRange()
	for iter.Next() {
		if !f(iter.Key().String(), iter.Value().Interface()) {
			break
		}
	}
}
