package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

// newExtractCmd extracts release notes for a single version.
func newExtractCmd(opts *rootOptions) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "extract <version>",
		Short: "Extract release notes for a specific version",
		Long: `Extract the release notes body for a specific version.

The body is all text between that version's heading and the next release
heading (or end of file), trimmed of surrounding whitespace. A release with
an empty body yields the placeholder "Release v<version>".

By default notes are written to stdout; use --output to write them to a
file instead, which is what CI release pipelines typically want.

Examples:
  chlog extract 1.2.0                  # Notes for 1.2.0 to stdout
  chlog extract 1.2.0 -o notes.md      # Notes for 1.2.0 to notes.md`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write notes to this path instead of stdout")

	return cmd
}

func runExtract(cmd *cobra.Command, opts *rootOptions, version, outputPath string) error {
	cfg, content, _, err := loadValidated(opts)
	if err != nil {
		return err
	}

	notes, err := changelog.ExtractNotes(content, version)
	if err != nil {
		var notFound *changelog.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Version %q not found.\n\n", version)
			fmt.Fprintf(cmd.ErrOrStderr(), "Available versions:\n")
			for _, ver := range notFound.AvailableVersions {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", ver)
			}
			return NewExitError(ExitFailure)
		}
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(notes), 0o644); err != nil {
			return fmt.Errorf("writing release notes: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote release notes for v%s to %s\n", version, outputPath)
		return nil
	}

	if cfg.Plain {
		fmt.Fprintln(cmd.OutOrStdout(), notes)
		return nil
	}

	return changelog.FormatNotes(version, notes, cmd.OutOrStdout(), changelog.FormatOptions{})
}
