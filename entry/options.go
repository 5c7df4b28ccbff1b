package entry

import "github.com/mohae/deepcopy"

type Option interface {
	Apply(o *Options)
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

type Options struct {
	Setup      SetupFunc
	DebugMode  bool
	WarmupMode bool
}

var defaultOptions = &Options{
	Setup:      nil,
	DebugMode:  false,
	WarmupMode: true,
}

func NewOptions(opts ...Option) *Options {
	options := deepcopy.Copy(defaultOptions).(*Options)
	options.init(opts...)
	return options
}

func (o *Options) init(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(o)
		}
	}
}

// WithSetup sets the one-time setup run by the first invocation.
func WithSetup(setup SetupFunc) Option {
	return OptionFunc(func(o *Options) {
		o.Setup = setup
	})
}

// WithDebugMode enables or disables debug mode
func WithDebugMode(debug bool) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = debug
	})
}

// WithWarmup enables or disables keep-warm event handling.
func WithWarmup(enabled bool) Option {
	return OptionFunc(func(o *Options) {
		o.WarmupMode = enabled
	})
}
