// Config loading for the shapes CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/shapes/internal/paths"
)

const (
	envPrefix = "SHAPES"

	cfgKeyLogLevel = "log_level"
	cfgKeyJSON     = "json"
	cfgKeyDemos    = "demos"

	defaultLogLevel = "warn"
)

// flagKeys binds persistent flags to their config keys.
var flagKeys = map[string]string{
	"log-level": cfgKeyLogLevel,
	"json":      cfgKeyJSON,
}

// loadConfig reads config.yaml from configDir. Values resolve as
// flag > SHAPES_* env > config.yaml > default. A missing config.yaml is
// not an error.
func loadConfig(cmd *cobra.Command, configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyJSON, false)
	v.SetDefault(cfgKeyDemos, []string{})

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
