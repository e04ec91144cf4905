package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"project-chooser/internal/policy"
)

// NewPolicyCmd creates the policy command.
func NewPolicyCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective matching policy",
		Long: `Print the thresholds the decide and explain commands use.

Without --policy the defaults are printed. The YAML output is a valid
policy file and can be edited and passed back with --policy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pol, err := global.loadPolicy()
			if err != nil {
				return err
			}

			var data []byte
			if global.format == formatJSON {
				data, err = json.MarshalIndent(pol, "", "  ")
				if err == nil {
					data = append(data, '\n')
				}
			} else {
				data, err = policy.Marshal(&pol)
			}

			if err != nil {
				return fmt.Errorf("marshaling policy: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
