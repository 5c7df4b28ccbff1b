package bootstrap

import "github.com/mohae/deepcopy"

type Option interface {
	Apply(o *Options)
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

type Options struct {
	Dirs      []string
	DebugMode bool
}

var defaultOptions = &Options{
	Dirs: []string{
		UploadDir,
		ChunkCacheDir,
	},
	DebugMode: false,
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

// WithDir adds one scratch directory to the create list.
func WithDir(dir string) Option {
	return OptionFunc(func(o *Options) {
		o.Dirs = append(o.Dirs, dir)
	})
}

// WithDirs replaces the create list entirely.
func WithDirs(dirs ...string) Option {
	return OptionFunc(func(o *Options) {
		o.Dirs = append([]string{}, dirs...)
	})
}

// WithDebugMode enables or disables debug mode
func WithDebugMode(debug bool) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = debug
	})
}
