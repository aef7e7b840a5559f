package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/trifuzzy/internal/paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "TRIFUZZY"

	// Config keys in config.yaml.
	cfgKeyJSON    = "json"
	cfgKeyVerbose = "verbose"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing directory or file is not an error; defaults apply.
// Keys can be overridden with TRIFUZZY_<KEY> environment variables.
func loadConfig(configDirFlag string) (*viper.Viper, error) {
	configDir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return nil, newSysError("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyJSON, false)
	v.SetDefault(cfgKeyVerbose, false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Tracef("no config file in %s", configDir)
			return v, nil
		}
		return nil, newSysError("read config: %w", err)
	}

	log.Tracef("loaded config from %s", v.ConfigFileUsed())
	return v, nil
}

// applyConfig fills global flags from the config for every flag that was
// not set on the command line.
func applyConfig(cmd *cobra.Command, cfg *viper.Viper) {
	if !cmd.Flags().Changed(cfgKeyJSON) {
		flags.jsonMode = cfg.GetBool(cfgKeyJSON)
	}
	if !cmd.Flags().Changed(cfgKeyVerbose) {
		flags.verbose = cfg.GetBool(cfgKeyVerbose)
	}
}

// describeConfig is used by verbose diagnostics.
func describeConfig(cfg *viper.Viper) string {
	if f := cfg.ConfigFileUsed(); f != "" {
		return f
	}
	return fmt.Sprintf("defaults (set %s_JSON or %s_VERBOSE to override)", envPrefix, envPrefix)
}
