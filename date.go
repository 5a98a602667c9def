package arrow

import (
	"time"
)

// ParseDate sets dst from a date string or a numeric timestamp.
// A date format attached to v takes precedence over the configured default for string nodes.
func ParseDate(dst *time.Time, v Value) {
	assign(dst, v, ParseOptionalDate)
}

// ParseOptionalDate is the optional counterpart of ParseDate
func ParseOptionalDate(dst **time.Time, v Value) {
	assignOptional(dst, v, DateRule)
}

// DateRule converts v into time
func DateRule(v Value) (time.Time, bool) {
	node, ok := v.Data()
	if !ok {
		return time.Time{}, false
	}
	return v.converter().Time(node, v.timeLayout, v.hasFormat)
}
