package arrow

// Enum is implemented by types constructed from a raw value of type R.
// FromRaw is called on the zero value and returns false when no case has the raw value.
type Enum[E any, R Primitive] interface {
	RawValue() R
	FromRaw(raw R) (E, bool)
}

// ParseEnum sets dst to the case whose raw value equals v parsed as R
func ParseEnum[R Primitive, E Enum[E, R]](dst *E, v Value) {
	assign(dst, v, ParseOptionalEnum[R, E])
}

// ParseOptionalEnum is the optional counterpart of ParseEnum
func ParseOptionalEnum[R Primitive, E Enum[E, R]](dst **E, v Value) {
	assignOptional(dst, v, EnumRule[R, E])
}

// EnumRule converts v into enum E
func EnumRule[R Primitive, E Enum[E, R]](v Value) (E, bool) {
	var result E
	raw, ok := ScalarRule[R](v)
	if !ok {
		return result, false
	}
	return result.FromRaw(raw)
}
