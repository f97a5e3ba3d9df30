package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/logicossoftware/go-binresource"
	"github.com/spf13/viper"
)

// Config holds the defaults binres stamps into the headers it writes.
type Config struct {
	Resource ResourceConfig `mapstructure:"resource"`
	Tool     ToolConfig     `mapstructure:"tool"`
}

// ResourceConfig describes the payload kind.
type ResourceConfig struct {
	Type          uint32 `mapstructure:"type"`
	FormatVersion string `mapstructure:"format_version"`
}

// ToolConfig describes the producing tool.
type ToolConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Info    string `mapstructure:"info"`
}

// Load reads binres.yaml from the working directory, or the file at path
// when path is not empty, and applies BINRES_* environment overrides
// (BINRES_TOOL_NAME, BINRES_RESOURCE_TYPE, ...). A missing binres.yaml is
// not an error; a missing explicit path is.
func Load(path string, toolVersion string) (*Config, error) {
	v := viper.New()

	v.SetDefault("resource.type", 0)
	v.SetDefault("resource.format_version", "1.0.0")
	v.SetDefault("tool.name", "binres")
	v.SetDefault("tool.version", toolVersion)
	v.SetDefault("tool.info", "binres "+toolVersion+", go-binresource writer")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("binres")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("BINRES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.BinTool().Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// BinTool returns the configured identity as a binresource.Tool.
func (c *Config) BinTool() binresource.Tool {
	return binresource.Tool{
		Type:          c.Resource.Type,
		FormatVersion: c.Resource.FormatVersion,
		Name:          c.Tool.Name,
		Version:       c.Tool.Version,
		Info:          c.Tool.Info,
	}
}
