package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlAppConfig struct {
	Mode struct {
		Debug bool `yaml:"debug"`
		Cors  bool `yaml:"cors"`
	} `yaml:"mode"`
	Meta string `yaml:"meta"`
}

func optionFromAppConfig(cfg yamlAppConfig) Option {
	return AppOption(func(o *Options) {
		o.DebugMode = cfg.Mode.Debug
		o.CorsMode = cfg.Mode.Cors
		if cfg.Meta != "" {
			o.MetaExtra = cfg.Meta
		}
	})
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlAppConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	return optionFromAppConfig(cfg), nil
}

// WithConfig parses YAML bytes following app.yml structure and applies it to Options.
// It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return AppOption(func(*Options) {
			panic(fmt.Errorf("app.WithConfig: %w", err))
		})
	}
	return opt
}

// WithConfigFile loads a YAML file and applies it to Options.
// It panics if the file cannot be read or YAML is invalid.
func WithConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		return AppOption(func(*Options) {
			panic(fmt.Errorf("app.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
