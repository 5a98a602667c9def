package arrow

import (
	"github.com/michalsrutek/arrow/visitor"
)

// ParseSlice sets dst when every element of an array node converts, otherwise dst is left unchanged
func ParseSlice[T Primitive](dst *[]T, v Value) {
	assign(dst, v, ParseOptionalSlice[T])
}

// ParseOptionalSlice is the optional counterpart of ParseSlice
func ParseOptionalSlice[T Primitive](dst **[]T, v Value) {
	assignOptional(dst, v, SliceRule[T](ScalarRule[T]))
}

// ParseEnumSlice sets dst to the enum cases of an array node, elements that do not convert are dropped
func ParseEnumSlice[R Primitive, E Enum[E, R]](dst *[]E, v Value) {
	assign(dst, v, ParseOptionalEnumSlice[R, E])
}

// ParseOptionalEnumSlice is the optional counterpart of ParseEnumSlice
func ParseOptionalEnumSlice[R Primitive, E Enum[E, R]](dst **[]E, v Value) {
	assignOptional(dst, v, FilterSliceRule[E](EnumRule[R, E]))
}

// ParseModelSlice sets dst to the models of an array node, elements that are not objects are dropped
func ParseModelSlice[M any, PM ModelPtr[M]](dst *[]M, v Value) {
	assign(dst, v, ParseOptionalModelSlice[M, PM])
}

// ParseOptionalModelSlice is the optional counterpart of ParseModelSlice
func ParseOptionalModelSlice[M any, PM ModelPtr[M]](dst **[]M, v Value) {
	assignOptional(dst, v, FilterSliceRule[M](ModelRule[M, PM]))
}

// ParseMap sets dst when every key and value of an object node converts, otherwise dst is left unchanged
func ParseMap[K Primitive, V Primitive](dst *map[K]V, v Value) {
	assign(dst, v, ParseOptionalMap[K, V])
}

// ParseOptionalMap is the optional counterpart of ParseMap
func ParseOptionalMap[K Primitive, V Primitive](dst **map[K]V, v Value) {
	assignOptional(dst, v, MapRule[K, V](ScalarRule[K], ScalarRule[V]))
}

// ParseEnumMap sets dst when every key and enum value of an object node converts
func ParseEnumMap[R Primitive, K Primitive, E Enum[E, R]](dst *map[K]E, v Value) {
	assign(dst, v, ParseOptionalEnumMap[R, K, E])
}

// ParseOptionalEnumMap is the optional counterpart of ParseEnumMap
func ParseOptionalEnumMap[R Primitive, K Primitive, E Enum[E, R]](dst **map[K]E, v Value) {
	assignOptional(dst, v, MapRule[K, E](ScalarRule[K], EnumRule[R, E]))
}

// ParseModelMap sets dst when every key converts and every value is an object
func ParseModelMap[K Primitive, M any, PM ModelPtr[M]](dst *map[K]M, v Value) {
	assign(dst, v, ParseOptionalModelMap[K, M, PM])
}

// ParseOptionalModelMap is the optional counterpart of ParseModelMap
func ParseOptionalModelMap[K Primitive, M any, PM ModelPtr[M]](dst **map[K]M, v Value) {
	assignOptional(dst, v, MapRule[K, M](ScalarRule[K], ModelRule[M, PM]))
}

// SliceRule converts an array node element by element, any failed element fails the whole slice
func SliceRule[T any](rule Rule[T]) Rule[[]T] {
	return func(v Value) ([]T, bool) {
		node, ok := v.Data()
		if !ok {
			return nil, false
		}
		visit, ok := visitor.SliceVisitorOf(node)
		if !ok {
			return nil, false
		}
		config := v.Config()
		result := make([]T, 0)
		count := 0
		visit(func(index int, element interface{}) bool {
			count++
			item, ok := rule(config.Value(element))
			if !ok {
				return false
			}
			result = append(result, item)
			return true
		})
		if len(result) != count {
			return nil, false
		}
		return result, true
	}
}

// FilterSliceRule converts an array node element by element, failed elements are dropped
func FilterSliceRule[T any](rule Rule[T]) Rule[[]T] {
	return func(v Value) ([]T, bool) {
		node, ok := v.Data()
		if !ok {
			return nil, false
		}
		visit, ok := visitor.SliceVisitorOf(node)
		if !ok {
			return nil, false
		}
		config := v.Config()
		result := make([]T, 0)
		visit(func(index int, element interface{}) bool {
			if item, ok := rule(config.Value(element)); ok {
				result = append(result, item)
			}
			return true
		})
		return result, true
	}
}

// MapRule converts keys and values of an object node, any failed entry fails the whole map.
// Keys converting to the same K count as a failure.
func MapRule[K comparable, V any](keyRule Rule[K], valueRule Rule[V]) Rule[map[K]V] {
	return func(v Value) (map[K]V, bool) {
		node, ok := v.Data()
		if !ok {
			return nil, false
		}
		visit, ok := visitor.MapVisitorOf(node)
		if !ok {
			return nil, false
		}
		config := v.Config()
		result := make(map[K]V)
		count := 0
		visit(func(key string, element interface{}) bool {
			count++
			k, ok := keyRule(config.Value(key))
			if !ok {
				return false
			}
			value, ok := valueRule(config.Value(element))
			if !ok {
				return false
			}
			result[k] = value
			return true
		})
		if len(result) != count {
			return nil, false
		}
		return result, true
	}
}
