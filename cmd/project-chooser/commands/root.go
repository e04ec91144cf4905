package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"project-chooser/internal/policy"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose    bool
	quiet      bool
	format     string
	policyPath string
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "project-chooser",
		Short: "Decide which resume projects to show",
		Long: `project-chooser reconciles a model's project recommendation with the
project blocks extracted from a resume.

Titles the model returns are matched to block titles exactly when possible
and fuzzily otherwise. The result lists the blocks to activate and to
deactivate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.format != formatText && flags.format != formatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", flags.format, formatText, formatJSON)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log every diagnostic")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only log warnings")
	cmd.PersistentFlags().StringVar(&flags.format, "format", formatText, "Output format (text, json)")
	cmd.PersistentFlags().StringVar(&flags.policyPath, "policy", "", "YAML policy file overriding thresholds")

	cmd.AddCommand(
		NewDecideCmd(flags),
		NewExplainCmd(flags),
		NewNormalizeCmd(),
		NewPolicyCmd(flags),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// newLogger builds the console logger diagnostics are written to.
func (f *globalFlags) newLogger(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel

	switch {
	case f.quiet:
		level = zerolog.WarnLevel
	case f.verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

// loadPolicy returns the policy file's contents, or the default policy.
func (f *globalFlags) loadPolicy() (policy.Policy, error) {
	if f.policyPath == "" {
		return policy.Default(), nil
	}

	p, err := policy.LoadFile(f.policyPath)
	if err != nil {
		return policy.Policy{}, err
	}

	return *p, nil
}
