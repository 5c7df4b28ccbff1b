package entry

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlEntryConfig struct {
	Mode struct {
		Debug bool `yaml:"debug"`
	} `yaml:"mode"`
	Warmup struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"warmup"`
}

func optionFromEntryConfig(cfg yamlEntryConfig) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = cfg.Mode.Debug
		if cfg.Warmup.Enabled != nil {
			o.WarmupMode = *cfg.Warmup.Enabled
		}
	})
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlEntryConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	return optionFromEntryConfig(cfg), nil
}

// WithConfig parses YAML bytes following entry.yml structure and applies it to Options.
// It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("entry.WithConfig: %w", err))
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
			panic(fmt.Errorf("entry.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
