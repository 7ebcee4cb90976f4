package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment variable prefix for configuration.
const envPrefix = "THISASSEMBLY"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("language", "THISASSEMBLY_LANGUAGE")
	_ = v.BindEnv("output", "THISASSEMBLY_OUTPUT")
	_ = v.BindEnv("assemblyName", "THISASSEMBLY_ASSEMBLY_NAME")
	_ = v.BindEnv("defineConstants", "THISASSEMBLY_DEFINE_CONSTANTS")
	_ = v.BindEnv("rootNamespace", "THISASSEMBLY_ROOT_NAMESPACE")
	_ = v.BindEnv("namespace", "THISASSEMBLY_NAMESPACE")

	return &Loader{v: v}
}

// BindFlags binds command flags, flag names are mapped to config keys.
func (l *Loader) BindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for flagName, key := range keys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			return fmt.Errorf("unknown flag: %s", flagName)
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", flagName, err)
		}
	}
	return nil
}

// Load loads configuration, the config file is optional.
// Flags take precedence over environment variables, environment variables over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg.WithDefaults(), nil
}
