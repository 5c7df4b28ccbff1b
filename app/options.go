package app

import (
	"github.com/gin-gonic/gin"
	"github.com/mohae/deepcopy"
)

type Option interface {
	Apply(o *Options)
}

type AppOption func(*Options)

func (f AppOption) Apply(o *Options) { f(o) }

// RouteFunc registers business routes on the shell's gin engine.
type RouteFunc func(*gin.Engine)

type Options struct {
	DebugMode  bool
	CorsMode   bool
	MetaExtra  string
	RouteFuncs []RouteFunc
}

var defaultOptions = &Options{
	DebugMode:  false,
	CorsMode:   false,
	MetaExtra:  "",
	RouteFuncs: nil,
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

func WithDebugMode() Option {
	return AppOption(func(o *Options) {
		o.DebugMode = true
	})
}

func WithCors() Option {
	return AppOption(func(o *Options) {
		o.CorsMode = true
	})
}

// WithMeta attaches a JSON object whose fields are merged into /meta.
func WithMeta(extra string) Option {
	return AppOption(func(o *Options) {
		o.MetaExtra = extra
	})
}

// WithRoutes appends a business route registrar.
func WithRoutes(route RouteFunc) Option {
	return AppOption(func(o *Options) {
		o.RouteFuncs = append(o.RouteFuncs, route)
	})
}
