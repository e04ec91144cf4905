package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"project-chooser/internal/match"
)

// NewNormalizeCmd creates the normalize command.
func NewNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize TITLE...",
		Short: "Print titles as the matcher sees them",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, title := range args {
				fmt.Fprintln(cmd.OutOrStdout(), match.NormalizeTitle(title))
			}
		},
	}
}
