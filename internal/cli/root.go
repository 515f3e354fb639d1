// Package cli implements the familytree command-line interface: a thin
// inspection tool that builds value objects and family members from flags
// and prints their display forms.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/familytree/internal/paths"
	"github.com/mesh-intelligence/familytree/pkg/types"
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
	logLevel  string
}

// app is the state shared by the subcommands of one root command.
type app struct {
	flags      rootFlags
	logger     *slog.Logger
	defaultSex types.Sex
}

// NewRootCmd creates the top-level "familytree" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "familytree",
		Short: "Validate and display family record entities",
		Long: "familytree builds postal codes, addresses, people, and family members\n" +
			"from flags, validates them, and prints their display forms.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newPostcodeCmd(a))
	root.AddCommand(newAddressCmd(a))
	root.AddCommand(newPersonCmd(a))
	root.AddCommand(newMemberCmd(a))

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	if err := cfg.BindPFlag(cfgKeyLogLevel, cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return fmt.Errorf("bind log level: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.GetString(cfgKeyLogLevel))
	if err != nil {
		return err
	}

	sex, err := types.ParseSex(cfg.GetString(cfgKeyDefaultSex))
	if err != nil {
		return fmt.Errorf("config %s: %w", cfgKeyDefaultSex, err)
	}

	a.logger = logger
	a.defaultSex = sex
	logger.Debug("configuration loaded", "config_dir", configDir, "file", cfg.ConfigFileUsed())
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps validation failures to exitUserError and anything else to
// exitSysError.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrFormat),
		errors.Is(err, types.ErrInvalidSex),
		errors.Is(err, errUsage):
		return exitUserError
	default:
		return exitSysError
	}
}
