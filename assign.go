package arrow

// Rule converts a Value into T, false means no conversion.
type Rule[T any] func(v Value) (T, bool)

// assignOptional is the only place a converted value is committed to a destination.
func assignOptional[T any](dst **T, v Value, rule Rule[T]) {
	if dst == nil {
		return
	}
	value, ok := rule(v)
	if !ok {
		return
	}
	*dst = &value
}

// assign adapts a required destination to its optional entry point.
func assign[T any](dst *T, v Value, optional func(dst **T, v Value)) {
	if dst == nil {
		return
	}
	var temp *T
	optional(&temp, v)
	if temp != nil {
		*dst = *temp
	}
}

// ParseWith sets dst with a custom rule, dst is left unchanged when the rule fails
func ParseWith[T any](dst *T, v Value, rule Rule[T]) {
	assign(dst, v, func(dst **T, v Value) {
		ParseOptionalWith(dst, v, rule)
	})
}

// ParseOptionalWith sets optional dst with a custom rule, dst is left unchanged when the rule fails
func ParseOptionalWith[T any](dst **T, v Value, rule Rule[T]) {
	assignOptional(dst, v, rule)
}
