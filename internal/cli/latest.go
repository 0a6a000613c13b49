package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLatestCmd is the subcommand form of --latest-version.
func newLatestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Print the latest release version",
		Long: `Print the newest release version from the changelog.

The whole file is validated first; on a valid document the topmost heading
is by construction the maximum version, and that is what gets printed.

Example:
  chlog latest`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, latest, err := loadValidated(opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), latest)
			return nil
		},
	}
}
