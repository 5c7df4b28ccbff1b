package bootstrap

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlBootstrapConfig struct {
	Mode struct {
		Debug bool `yaml:"debug"`
	} `yaml:"mode"`
	Dirs []string `yaml:"dirs"`
}

func optionFromBootstrapConfig(cfg yamlBootstrapConfig) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = cfg.Mode.Debug

		for _, dir := range cfg.Dirs {
			if dir == "" {
				continue
			}
			o.Dirs = append(o.Dirs, dir)
		}
	})
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlBootstrapConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	return optionFromBootstrapConfig(cfg), nil
}

// WithConfig parses YAML bytes following bootstrap.yml structure and applies it to Options.
// It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("bootstrap.WithConfig: %w", err))
		})
	}
	return opt
}

// WithConfigFile loads a YAML file and applies it to Options.
// It panics if the file cannot be read or YAML is invalid.
func WithConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("bootstrap.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
