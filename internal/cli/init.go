package cli

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/trifuzzy/internal/paths"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	JSON    bool `yaml:"json"`
	Verbose bool `yaml:"verbose"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and a default config.yaml. An existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return newSysError("resolve config dir: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return newSysError("create config directory: %w", err)
	}

	path := paths.ConfigFile(configDir)
	written, err := writeConfigIfMissing(path)
	if err != nil {
		return newSysError("write config: %w", err)
	}

	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether the file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	header := []byte("# trifuzzy configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
