package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/chlog/internal/changelog"
	errs "github.com/ariel-frischer/chlog/internal/errors"
)

// newListCmd enumerates all release headings in the changelog.
func newListCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all release headings",
		Long: `List every release heading in the changelog, newest first.

The document is validated first, so the listing is always a well-ordered
release history. Use --format yaml for machine-readable output.

Examples:
  chlog list                   # versions and dates, human-readable
  chlog list --plain           # tab-separated, script-friendly
  chlog list --format yaml     # YAML dump of version/date pairs`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")

	return cmd
}

func runList(cmd *cobra.Command, opts *rootOptions, format string) error {
	cfg, content, _, err := loadValidated(opts)
	if err != nil {
		return err
	}

	headings := changelog.Headings(content)

	switch format {
	case "text":
		return changelog.FormatHeadings(headings, cmd.OutOrStdout(), changelog.FormatOptions{Plain: cfg.Plain})
	case "yaml":
		data, err := yaml.Marshal(headings)
		if err != nil {
			return fmt.Errorf("marshaling headings: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	default:
		return errs.NewArgumentError(
			fmt.Sprintf("unknown format %q", format),
			"Valid formats: text, yaml",
		)
	}
}
