package arrow

import (
	"github.com/michalsrutek/arrow/conv"
	"github.com/michalsrutek/arrow/visitor"
)

// Kind represents the shape of a decoded JSON node
type Kind uint8

const (
	// KindAbsent marks a missing key or index
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	// KindUnknown marks a node no JSON decoder produces
	KindUnknown
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

func kindOf(node interface{}) Kind {
	switch node.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindObject
	}
	if _, ok := conv.AsNumber(node); ok {
		return KindNumber
	}
	if visitor.IsSequence(node) {
		return KindArray
	}
	if visitor.IsMapping(node) {
		return KindObject
	}
	return KindUnknown
}
