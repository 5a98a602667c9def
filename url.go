package arrow

import (
	"net/url"
)

// ParseURL sets dst from a string node, the string is percent-encoded with the URL query allowed set first
func ParseURL(dst *url.URL, v Value) {
	assign(dst, v, ParseOptionalURL)
}

// ParseOptionalURL is the optional counterpart of ParseURL
func ParseOptionalURL(dst **url.URL, v Value) {
	assignOptional(dst, v, URLRule)
}

// URLRule converts v into URL
func URLRule(v Value) (url.URL, bool) {
	text, ok := ScalarRule[string](v)
	if !ok {
		return url.URL{}, false
	}
	result, ok := v.converter().URL(text)
	if !ok {
		return url.URL{}, false
	}
	return *result, true
}
