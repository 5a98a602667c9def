package decoder

import (
	"github.com/michalsrutek/arrow"
)

// Option configures Decode
type Option interface {
	apply(*Options)
}

// Options represents decode options
type Options struct {
	// ExactNumbers keeps numbers as json.Number so integers beyond 2^53 survive decoding
	ExactNumbers bool
	// Config is bound to the decoded root Value, the process wide config is used when nil
	Config *arrow.Config
}

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithExactNumbers decodes numbers as json.Number instead of float64
func WithExactNumbers() Option {
	return optionFn(func(o *Options) { o.ExactNumbers = true })
}

// WithConfig binds decoded values to config
func WithConfig(config *arrow.Config) Option {
	return optionFn(func(o *Options) { o.Config = config })
}

func resolveOptions(opts []Option) *Options {
	ret := &Options{}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ret)
		}
	}
	if ret.Config == nil {
		ret.Config = arrow.DefaultConfig()
	}
	return ret
}
