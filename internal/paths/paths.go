// Package paths resolves the configuration directory of the trifuzzy CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration subdirectory.
const AppName = "trifuzzy"

// ConfigFileName is the name of the configuration file inside the
// configuration directory.
const ConfigFileName = "config.yaml"

// EnvConfigDir overrides the configuration directory when no flag is given.
const EnvConfigDir = "TRIFUZZY_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/trifuzzy (fallback ~/.config/trifuzzy)
// macOS:   ~/Library/Application Support/trifuzzy
// Windows: %APPDATA%/trifuzzy
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	}

	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > TRIFUZZY_CONFIG_DIR env > DefaultConfigDir().
// Explicit values are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ConfigFile returns the path of the configuration file inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}
