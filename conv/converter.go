package conv

import (
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	ftime "github.com/michalsrutek/arrow/format/time"
)

// ReferenceEpoch is the zero point of timestamps when reference date semantics are enabled.
var ReferenceEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// Options contains configuration for the converter
type Options struct {
	// DateFormat specifies the Unicode date pattern used for string dates
	DateFormat string
	// UseReferenceDate interprets numeric timestamps relative to ReferenceEpoch instead of the Unix epoch
	UseReferenceDate bool
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		DateFormat: ftime.DefaultDateFormat,
	}
}

// Converter converts decoded JSON nodes into typed destinations.
// Every conversion reports success with a bool; destinations are written only on success.
type Converter struct {
	options    Options
	timeLayout ftime.Layout
}

// NewConverter creates a new converter with the provided options
func NewConverter(options Options) *Converter {
	if options.DateFormat == "" {
		options.DateFormat = ftime.DefaultDateFormat
	}
	return &Converter{
		options:    options,
		timeLayout: ftime.Compile(options.DateFormat),
	}
}

// Options returns converter options
func (c *Converter) Options() Options {
	return c.options
}

// TimeLayout returns Go layout of the configured date format
func (c *Converter) TimeLayout() string {
	return c.timeLayout.String()
}

// Scalar converts node into dest, dest has to be a settable string, bool or numeric value.
// A node of dest kind is used directly, a string node is parsed with ParseString.
func (c *Converter) Scalar(node interface{}, dest reflect.Value) bool {
	switch dest.Kind() {
	case reflect.String:
		return c.convertToString(dest, node)
	case reflect.Bool:
		return c.convertToBool(dest, node)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return c.convertToInt(dest, node)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return c.convertToUint(dest, node)
	case reflect.Float32, reflect.Float64:
		return c.convertToFloat(dest, node)
	}
	return false
}

func (c *Converter) convertToString(dest reflect.Value, node interface{}) bool {
	text, ok := node.(string)
	if !ok {
		return false
	}
	dest.SetString(text)
	return true
}

func (c *Converter) convertToBool(dest reflect.Value, node interface{}) bool {
	switch actual := node.(type) {
	case bool:
		dest.SetBool(actual)
		return true
	case string:
		return c.ParseString(actual, dest)
	}
	return false
}

func (c *Converter) convertToInt(dest reflect.Value, node interface{}) bool {
	if text, ok := node.(string); ok {
		return c.ParseString(text, dest)
	}
	number, ok := AsNumber(node)
	if !ok {
		return false
	}
	result, ok := number.Int64()
	if !ok || dest.OverflowInt(result) {
		return false
	}
	dest.SetInt(result)
	return true
}

func (c *Converter) convertToUint(dest reflect.Value, node interface{}) bool {
	if text, ok := node.(string); ok {
		return c.ParseString(text, dest)
	}
	number, ok := AsNumber(node)
	if !ok {
		return false
	}
	result, ok := number.Uint64()
	if !ok || dest.OverflowUint(result) {
		return false
	}
	dest.SetUint(result)
	return true
}

func (c *Converter) convertToFloat(dest reflect.Value, node interface{}) bool {
	if text, ok := node.(string); ok {
		return c.ParseString(text, dest)
	}
	number, ok := AsNumber(node)
	if !ok {
		return false
	}
	result := number.Float64()
	if dest.OverflowFloat(result) {
		return false
	}
	dest.SetFloat(result)
	return true
}

// ParseString parses text into an int, uint, float or bool dest.
// Bool is parsed as a base 10 integer first: zero is false, any other value is true.
func (c *Converter) ParseString(text string, dest reflect.Value) bool {
	switch dest.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result, err := strconv.ParseInt(text, 10, dest.Type().Bits())
		if err != nil {
			return false
		}
		dest.SetInt(result)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		result, err := strconv.ParseUint(text, 10, dest.Type().Bits())
		if err != nil {
			return false
		}
		dest.SetUint(result)
	case reflect.Float32, reflect.Float64:
		result, err := strconv.ParseFloat(text, dest.Type().Bits())
		if err != nil {
			return false
		}
		dest.SetFloat(result)
	case reflect.Bool:
		result, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return false
		}
		dest.SetBool(result != 0)
	default:
		return false
	}
	return true
}

// Time converts node into time.
// With hasLayout set, a string node is parsed with layout only; otherwise with the configured
// date format first and then as a numeric timestamp. Number nodes are timestamps in seconds.
func (c *Converter) Time(node interface{}, layout ftime.Layout, hasLayout bool) (time.Time, bool) {
	if text, ok := node.(string); ok {
		if hasLayout {
			t, err := layout.Parse(text)
			return t, err == nil
		}
		if t, err := c.timeLayout.Parse(text); err == nil {
			return t, true
		}
		seconds, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return time.Time{}, false
		}
		return c.timestamp(seconds)
	}
	number, ok := AsNumber(node)
	if !ok {
		return time.Time{}, false
	}
	if seconds, ok := number.Int64(); ok {
		return c.unix(seconds, 0)
	}
	return c.timestamp(number.Float64())
}

func (c *Converter) epochOffset() int64 {
	if c.options.UseReferenceDate {
		return ReferenceEpoch.Unix()
	}
	return 0
}

func (c *Converter) unix(seconds, nanos int64) (time.Time, bool) {
	offset := c.epochOffset()
	if seconds > math.MaxInt64-offset {
		return time.Time{}, false
	}
	return time.Unix(offset+seconds, nanos).UTC(), true
}

func (c *Converter) timestamp(seconds float64) (time.Time, bool) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return time.Time{}, false
	}
	whole := math.Floor(seconds)
	if whole < math.MinInt64 || whole >= math.MaxInt64 {
		return time.Time{}, false
	}
	nanos := int64(math.Round((seconds - whole) * 1e9))
	return c.unix(int64(whole), nanos)
}

// URL percent-encodes text with the URL query allowed character set and parses it.
func (c *Converter) URL(text string) (*url.URL, bool) {
	if text == "" || !utf8.ValidString(text) {
		return nil, false
	}
	result, err := url.Parse(EscapeQueryAllowed(text))
	if err != nil {
		return nil, false
	}
	return result, true
}

const queryAllowedPunctuation = "!$&'()*+,-./:;=?@_~"

// EscapeQueryAllowed percent-encodes every byte outside the URL query allowed character set.
func EscapeQueryAllowed(text string) string {
	const hex = "0123456789ABCDEF"
	builder := strings.Builder{}
	builder.Grow(len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		if isQueryAllowed(b) {
			builder.WriteByte(b)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(hex[b>>4])
		builder.WriteByte(hex[b&0x0F])
	}
	return builder.String()
}

func isQueryAllowed(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	return strings.IndexByte(queryAllowedPunctuation, b) != -1
}
