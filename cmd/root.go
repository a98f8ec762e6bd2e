// Package cmd implements the uomgrade command line tool.
package cmd

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/uomgrade"
	"github.com/lone-faerie/uomgrade/config"
	"github.com/lone-faerie/uomgrade/internal/build"
	"github.com/lone-faerie/uomgrade/internal/cleanup"
	"github.com/lone-faerie/uomgrade/log"
)

// Flags for every command
var (
	ConfigPath []string      // Path(s) to config file/directory (default is first of $UOMGRADE_CONFIG_PATH, $XDG_CONFIG_HOME/uomgrade.yaml, $HOME/.config/uomgrade.yaml)
	LogLevel   log.LevelFlag // Log level
	Tolerance  string        // Tolerance profile, "single" or "round-trip"
)

var cfg *config.Config

//go:embed help/root.md
var rootHelp string

// NewCmdRoot returns the root [cobra.Command], which grades a single answer.
//
// Usage:
//
//	uomgrade <input units> <target units> <control> <answer> [flags]
//	uomgrade [command]
//
// Flags:
//
//	-c, --config strings     Path(s) to config file/directory
//	-l, --log level          Log level (default WARN)
//	-t, --tolerance string   Tolerance profile, "single" or "round-trip"
//	-h, --help               help for uomgrade
//	-v, --version            version for uomgrade
func NewCmdRoot() *cobra.Command {
	LogLevel = log.LevelFlag(config.DefaultLog.Level)

	cmd := &cobra.Command{
		Use:     "uomgrade <input units> <target units> <control> <answer>",
		Short:   "Grade unit of measure conversions",
		Long:    rootHelp,
		Version: build.Version(),
		Example: `  uomgrade celsius kelvin 70 343.15
  uomgrade --tolerance round-trip liters liters 2.5 2.499
  uomgrade -- kelvin celsius 0 -273.15`,
		Args:              cobra.ExactArgs(4),
		PersistentPreRunE: loadConfig,
		RunE:              runGrade,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}

	cmd.PersistentFlags().SortFlags = false
	cmd.PersistentFlags().StringSliceVarP(&ConfigPath, "config", "c", nil, "Path(s) to config file/directory")
	cmd.PersistentFlags().VarP(&LogLevel, "log", "l", "Log level")
	cmd.PersistentFlags().StringVarP(&Tolerance, "tolerance", "t", "", `Tolerance profile, "single" or "round-trip"`)

	cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	cmd.MarkPersistentFlagDirname("config")

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")
	cmd.SetVersionTemplate(build.String() + "\n")

	cmd.AddGroup(&cobra.Group{ID: "commands", Title: "Commands:"})
	cmd.AddCommand(
		NewCmdConvert(),
		NewCmdList(),
		NewCmdBatch(),
		NewCmdServe(),
		NewCmdStop(),
	)
	addDocGen(cmd)

	return cmd
}

func runGrade(cmd *cobra.Command, args []string) error {
	g := uomgrade.New(uomgrade.WithProfile(cfg.Tolerance.Profile))
	res := g.Grade(args[0], args[1], args[2], args[3])

	fmt.Fprintln(cmd.OutOrStdout(), "Answer:", res.Verdict)

	if res.Verdict == uomgrade.Invalid {
		log.Info("Invalid answer", "cause", res.Err)
		return &ExitError{Code: 1}
	}
	return nil
}

// ExitError is an error that should cause the program to exit with the given code.
// If Err is nil, nothing more is printed.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var executed *cobra.Command

// Execute runs the root command with the arguments of the process and runs
// the registered cleanup functions.
func Execute() error {
	c, err := NewCmdRoot().ExecuteC()
	executed = c

	if cerr := cleanup.Cleanup(); cerr != nil {
		log.Error("Cleanup failed", cerr)
	}
	return err
}

// Error prints err to the standard error of the executed command. An
// [ExitError] without a cause is not printed.
func Error(err error) {
	var exit *ExitError
	if errors.As(err, &exit) {
		if exit.Err == nil {
			return
		}
		err = exit.Err
	}
	if executed == nil {
		log.Error("Error", err)
		return
	}
	executed.PrintErrln("Error:", err)
}

// Usage prints the usage of the executed command.
func Usage() {
	if executed != nil {
		executed.Usage()
	}
}
