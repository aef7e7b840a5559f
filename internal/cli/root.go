// Package cli implements the trifuzzy command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	inputFile string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "trifuzzy" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "trifuzzy",
		Short: "Arithmetic and ranking for triangular fuzzy numbers",
		Long: `trifuzzy works with triangular fuzzy numbers written as "(l, m, u)".

Numbers are read from positional arguments and from the YAML file given with
--file. A single value "v" stands for the crisp number (v, v, v).`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/trifuzzy)")
	root.PersistentFlags().StringVarP(&flags.inputFile, "file", "f", "", "YAML file with a numbers list")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "print diagnostics to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newRankCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newArithCmd(opAdd))
	root.AddCommand(newArithCmd(opSub))
	root.AddCommand(newArithCmd(opMul))
	root.AddCommand(newSortCmd())
	root.AddCommand(newMeanCmd())
	root.AddCommand(newRemoveCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// setup loads config.yaml and routes log output before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	setupLogging(cmd.ErrOrStderr())

	cfg, err := loadConfig(flags.configDir)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg)
	debugf("config: %s", describeConfig(cfg))
	log.Tracef("running %q with json=%v verbose=%v", cmd.CommandPath(), flags.jsonMode, flags.verbose)
	return nil
}

// sysError marks failures of the environment (filesystem, config) as opposed
// to bad user input.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }

func (e *sysError) Unwrap() error { return e.err }

func newSysError(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
