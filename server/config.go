package server

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"

	"github.com/charanteja1799/text2sqlrag-project/app"
	"github.com/charanteja1799/text2sqlrag-project/bootstrap"
	"github.com/charanteja1799/text2sqlrag-project/entry"
)

type yamlServerConfig struct {
	Mode      string `yaml:"mode"`
	Address   string `yaml:"address"`
	Entry     any    `yaml:"entry"`
	App       any    `yaml:"app"`
	Bootstrap any    `yaml:"bootstrap"`
}

type Option interface {
	Apply(*Options)
}

type Options struct {
	Mode      string
	Address   string
	Entry     []entry.Option
	App       []app.Option
	Bootstrap []bootstrap.Option
}

type serveOptionFunc func(*Options)

func (f serveOptionFunc) Apply(o *Options) { f(o) }

// WithMode selects the serving front: "lambda" (default) or "local".
func WithMode(mode string) Option {
	return serveOptionFunc(func(o *Options) {
		o.Mode = mode
	})
}

// WithAddress sets the listen address used in local mode.
func WithAddress(addr string) Option {
	return serveOptionFunc(func(o *Options) {
		o.Address = addr
	})
}

func WithEntryOptions(opts ...entry.Option) Option {
	return serveOptionFunc(func(o *Options) {
		o.Entry = append(o.Entry, opts...)
	})
}

func WithAppOptions(opts ...app.Option) Option {
	return serveOptionFunc(func(o *Options) {
		o.App = append(o.App, opts...)
	})
}

func WithBootstrapOptions(opts ...bootstrap.Option) Option {
	return serveOptionFunc(func(o *Options) {
		o.Bootstrap = append(o.Bootstrap, opts...)
	})
}

type serveConfigOption struct {
	mode         string
	address      string
	entryOpt     entry.Option
	appOpt       app.Option
	bootstrapOpt bootstrap.Option
}

func (o serveConfigOption) Apply(opts *Options) {
	if o.mode != "" {
		opts.Mode = o.mode
	}
	if o.address != "" {
		opts.Address = o.address
	}
	if o.entryOpt != nil {
		opts.Entry = append(opts.Entry, o.entryOpt)
	}
	if o.appOpt != nil {
		opts.App = append(opts.App, o.appOpt)
	}
	if o.bootstrapOpt != nil {
		opts.Bootstrap = append(opts.Bootstrap, o.bootstrapOpt)
	}
}

// WithServeConfig parses YAML bytes following server.yml structure. The
// nested entry, app and bootstrap sections are forwarded verbatim to the
// matching package's WithConfig.
func WithServeConfig(yamlBytes []byte) Option {
	var cfg yamlServerConfig
	if err := yaml.Unmarshal(yamlBytes, &cfg); err != nil {
		panic(fmt.Errorf("server.WithServeConfig: %w", err))
	}

	var entryOpt entry.Option
	if cfg.Entry != nil {
		b, err := yaml.Marshal(cfg.Entry)
		if err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		entryOpt = entry.WithConfig(b)
	}

	var appOpt app.Option
	if cfg.App != nil {
		b, err := yaml.Marshal(cfg.App)
		if err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		appOpt = app.WithConfig(b)
	}

	var bootstrapOpt bootstrap.Option
	if cfg.Bootstrap != nil {
		b, err := yaml.Marshal(cfg.Bootstrap)
		if err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		bootstrapOpt = bootstrap.WithConfig(b)
	}

	return serveConfigOption{
		mode:         cfg.Mode,
		address:      cfg.Address,
		entryOpt:     entryOpt,
		appOpt:       appOpt,
		bootstrapOpt: bootstrapOpt,
	}
}

// WithServeConfigFile loads a YAML file and applies it as a serve Option.
func WithServeConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Errorf("server.WithServeConfigFile(%s): %w", path, err))
	}
	return WithServeConfig(b)
}

// DefaultServeConfigCandidates returns relative paths that will be checked (in order)
// when searching for a default server config.
func DefaultServeConfigCandidates() []string {
	return []string{
		"lambda.yaml",
		"lambda.yml",
		"server.yaml",
		"server.yml",
		"config.yaml",
		"config.yml",
	}
}

// FindDefaultServeConfigFile searches for a server config file in a small set of
// well-known locations (CWD then executable directory).
func FindDefaultServeConfigFile() (string, error) {
	candidates := DefaultServeConfigCandidates()

	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	for _, dir := range dirs {
		for _, rel := range candidates {
			p := rel
			if dir != "." {
				p = filepath.Join(dir, rel)
			}
			if st, err := os.Stat(p); err == nil && !st.IsDir() {
				return p, nil
			}
		}
	}

	return "", fmt.Errorf("server config not found (expected %v)", candidates)
}

// WithDefaultServeConfigFile finds and loads the default server config file.
func WithDefaultServeConfigFile() Option {
	p, err := FindDefaultServeConfigFile()
	if err != nil {
		panic(fmt.Errorf("server.WithDefaultServeConfigFile: %w", err))
	}
	return WithServeConfigFile(p)
}
