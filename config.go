package arrow

import (
	"github.com/michalsrutek/arrow/conv"
)

type (
	// Config holds date settings shared by every Value bound to it.
	// It must not be modified while Values bound to it are being parsed.
	Config struct {
		converter *conv.Converter
	}

	// Option represents config option
	Option func(o *conv.Options)
)

var defaultConfig = NewConfig()

// WithDateFormat sets the Unicode date pattern (yyyy-MM-dd'T'HH:mm:ssZZZZZ) used for string dates
func WithDateFormat(pattern string) Option {
	return func(o *conv.Options) {
		o.DateFormat = pattern
	}
}

// WithReferenceDate interprets numeric timestamps relative to 2001-01-01T00:00:00Z instead of the Unix epoch
func WithReferenceDate(enabled bool) Option {
	return func(o *conv.Options) {
		o.UseReferenceDate = enabled
	}
}

// NewConfig creates a config
func NewConfig(opts ...Option) *Config {
	options := conv.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Config{converter: conv.NewConverter(options)}
}

// DefaultConfig returns process wide config used by NewValue
func DefaultConfig() *Config {
	return defaultConfig
}

// SetDefaultDateFormat sets process wide default date format.
// Call it before parsing starts, never concurrently with parsing.
func SetDefaultDateFormat(pattern string) {
	defaultConfig.Apply(WithDateFormat(pattern))
}

// SetUseReferenceDate sets process wide numeric timestamp epoch.
// Call it before parsing starts, never concurrently with parsing.
func SetUseReferenceDate(enabled bool) {
	defaultConfig.Apply(WithReferenceDate(enabled))
}

// Apply updates config with supplied options
func (c *Config) Apply(opts ...Option) {
	options := c.converter.Options()
	for _, opt := range opts {
		opt(&options)
	}
	c.converter = conv.NewConverter(options)
}

// DateFormat returns default date format
func (c *Config) DateFormat() string {
	return c.converter.Options().DateFormat
}

// UseReferenceDate returns true if numeric timestamps use the reference epoch
func (c *Config) UseReferenceDate() bool {
	return c.converter.Options().UseReferenceDate
}

// Value creates a Value bound to this config
func (c *Config) Value(node interface{}) Value {
	return Value{data: node, present: true, config: c}
}

// Absent creates an absent Value bound to this config
func (c *Config) Absent() Value {
	return Value{config: c}
}

// Unmarshal populates model from a decoded JSON node
func (c *Config) Unmarshal(node interface{}, model Model) {
	model.Populate(c.Value(node))
}
