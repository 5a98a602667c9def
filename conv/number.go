package conv

import (
	"encoding/json"
	"math"
	"strconv"
)

type numberKind uint8

const (
	signedNumber numberKind = iota
	unsignedNumber
	floatNumber
)

// Number represents a decoded JSON number, keeping integer precision when the decoder did.
type Number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

// AsNumber returns node as Number when it holds a decoded JSON number.
func AsNumber(node interface{}) (Number, bool) {
	switch actual := node.(type) {
	case float64:
		return Number{kind: floatNumber, f: actual}, true
	case int:
		return Number{kind: signedNumber, i: int64(actual)}, true
	case int64:
		return Number{kind: signedNumber, i: actual}, true
	case json.Number:
		return numberFromLiteral(string(actual))
	case float32:
		return Number{kind: floatNumber, f: float64(actual)}, true
	case int8:
		return Number{kind: signedNumber, i: int64(actual)}, true
	case int16:
		return Number{kind: signedNumber, i: int64(actual)}, true
	case int32:
		return Number{kind: signedNumber, i: int64(actual)}, true
	case uint:
		return Number{kind: unsignedNumber, u: uint64(actual)}, true
	case uint8:
		return Number{kind: unsignedNumber, u: uint64(actual)}, true
	case uint16:
		return Number{kind: unsignedNumber, u: uint64(actual)}, true
	case uint32:
		return Number{kind: unsignedNumber, u: uint64(actual)}, true
	case uint64:
		return Number{kind: unsignedNumber, u: actual}, true
	}
	return Number{}, false
}

func numberFromLiteral(literal string) (Number, bool) {
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return Number{kind: signedNumber, i: i}, true
	}
	if u, err := strconv.ParseUint(literal, 10, 64); err == nil {
		return Number{kind: unsignedNumber, u: u}, true
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Number{}, false
	}
	return Number{kind: floatNumber, f: f}, true
}

// Int64 returns the number when it is integral and fits int64.
func (n Number) Int64() (int64, bool) {
	switch n.kind {
	case signedNumber:
		return n.i, true
	case unsignedNumber:
		if n.u > math.MaxInt64 {
			return 0, false
		}
		return int64(n.u), true
	}
	if n.f != math.Trunc(n.f) || n.f < -(1<<63) || n.f >= 1<<63 {
		return 0, false
	}
	return int64(n.f), true
}

// Uint64 returns the number when it is integral, non negative and fits uint64.
func (n Number) Uint64() (uint64, bool) {
	switch n.kind {
	case signedNumber:
		if n.i < 0 {
			return 0, false
		}
		return uint64(n.i), true
	case unsignedNumber:
		return n.u, true
	}
	if n.f != math.Trunc(n.f) || n.f < 0 || n.f >= 1<<64 {
		return 0, false
	}
	return uint64(n.f), true
}

// Float64 returns the number as float64.
func (n Number) Float64() float64 {
	switch n.kind {
	case signedNumber:
		return float64(n.i)
	case unsignedNumber:
		return float64(n.u)
	}
	return n.f
}

// IsInteger reports whether the number carries no fractional part.
func (n Number) IsInteger() bool {
	if n.kind != floatNumber {
		return true
	}
	return n.f == math.Trunc(n.f) && !math.IsInf(n.f, 0)
}
