// Package cli implements the chlog command tree.
//
// Every command validates the changelog before acting, so diagnostics for a
// malformed file are identical no matter which operation was requested.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/config"
	errs "github.com/ariel-frischer/chlog/internal/errors"
)

// rootOptions holds the flag values shared across the command tree.
type rootOptions struct {
	file  string
	plain bool

	// Flag surface kept for release scripting: chlog --latest-version,
	// chlog --release-notes-version V --release-notes-output PATH.
	latestVersion bool
	notesVersion  string
	notesOutput   string
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "chlog",
		Short: "Validate and query markdown changelog files",
		Long: `chlog validates a markdown changelog with release headings of the form
'## X.Y.Z - YYYY-MM-DD' (newest first) and extracts release information from it.

The file must start with '# Changelog', contain at least one release heading,
use unique versions in strictly descending order, and carry valid calendar
dates. Validation always runs first; a malformed file fails every operation.`,
		Example: `  chlog                                  # validate CHANGELOG.md
  chlog --latest-version                 # print newest version
  chlog --release-notes-version 1.2.0 --release-notes-output notes.md
  chlog latest                           # same as --latest-version
  chlog extract 1.2.0                    # release notes to stdout
  chlog list --format yaml               # machine-readable heading dump`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.file, "file", "f", "", "Changelog file to operate on (default from config, CHANGELOG.md)")
	pf.BoolVar(&opts.plain, "plain", false, "Plain output (no colors)")

	f := cmd.Flags()
	f.BoolVar(&opts.latestVersion, "latest-version", false, "Print the latest release version")
	f.StringVar(&opts.notesVersion, "release-notes-version", "", "Version to extract release notes for")
	f.StringVar(&opts.notesOutput, "release-notes-output", "", "Path to write extracted release notes")

	cmd.AddCommand(
		newLatestCmd(opts),
		newExtractCmd(opts),
		newListCmd(opts),
		newCheckCmd(opts),
		newWatchCmd(opts),
		newTagCheckCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command and reports any failure on stderr.
// Validation failures print as a single diagnostic line; argument and
// configuration problems print with remediation guidance.
func Execute() error {
	err := NewRootCmd().Execute()
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		// Diagnostics were already written by the failing command.
		return err
	}

	if cliErr := errs.AsCLIError(err); cliErr != nil {
		errs.PrintError(cliErr)
		return err
	}

	fmt.Fprintln(os.Stderr, err)
	return err
}

// runRoot implements the flag-driven dispatch: validate, then either print
// the latest version, write release notes, or confirm validity.
func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	cfg, content, latest, err := loadValidated(opts)
	if err != nil {
		return err
	}

	if opts.latestVersion {
		fmt.Fprintln(cmd.OutOrStdout(), latest)
		return nil
	}

	if opts.notesVersion != "" {
		return writeReleaseNotes(cmd, content, opts.notesVersion, opts.notesOutput)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s format is valid. Latest version: %s\n", cfg.Changelog, latest)
	return nil
}

// writeReleaseNotes extracts notes for version and writes them verbatim to
// outputPath. The companion output flag is required.
func writeReleaseNotes(cmd *cobra.Command, content, version, outputPath string) error {
	if outputPath == "" {
		return errs.MissingNotesOutput()
	}

	notes, err := changelog.ExtractNotes(content, version)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(notes), 0o644); err != nil {
		return fmt.Errorf("writing release notes: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote release notes for v%s to %s\n", version, outputPath)
	return nil
}

// loadSettings loads configuration and applies flag overrides.
func loadSettings(opts *rootOptions) (*config.Configuration, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errs.Wrap(err, errs.Configuration)
	}
	if opts.file != "" {
		cfg.Changelog = opts.file
	}
	if opts.plain {
		cfg.Plain = true
	}
	return cfg, nil
}

// loadValidated loads settings, reads the configured changelog, and runs
// full validation. Returns the effective config, the raw document content,
// and the latest version.
func loadValidated(opts *rootOptions) (*config.Configuration, string, string, error) {
	cfg, err := loadSettings(opts)
	if err != nil {
		return nil, "", "", err
	}

	content, err := changelog.Load(cfg.Changelog)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", "", errs.ChangelogNotFound(cfg.Changelog)
		}
		return nil, "", "", err
	}

	latest, err := changelog.Validate(content)
	if err != nil {
		return nil, "", "", err
	}

	return cfg, content, latest, nil
}
