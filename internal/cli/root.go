// Package cli implements the shapes command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/shapes/internal/paths"
	"github.com/mesh-intelligence/shapes/pkg/shapes"
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
	jsonMode  bool
	logLevel  string
}

var flags rootFlags

// Per-invocation state, set by PersistentPreRunE.
var (
	cfg       = viper.New()
	configDir string
	logger    = zap.NewNop()
)

// NewRootCmd creates the top-level "shapes" command with global flags
// and all subcommands registered. Without a subcommand it runs every demo.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "shapes",
		Short:   "Show Go type-declaration forms, one demo at a time",
		Long:    "shapes builds small values (records, tuples, markers, sum types, capabilities)\nand prints them in a fixed order.",
		Version: shapes.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		RunE:               runRun,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/shapes)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newMatchCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup resolves the config directory, loads configuration, and builds the
// logger. The version command needs none of it.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	configDir = dir

	v, err := loadConfig(cmd, dir)
	if err != nil {
		return sysError(err)
	}
	cfg = v

	logger = newLogger(cfg.GetString(cfgKeyLogLevel))
	logger.Debug("configuration loaded",
		zap.String("config_dir", dir),
		zap.String("config_file", cfg.ConfigFileUsed()))
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	// Sync on a console stderr reports EINVAL on some platforms.
	_ = logger.Sync()
	return nil
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps err to an exit code. Errors that carry no code, such as
// cobra's flag and argument errors, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
