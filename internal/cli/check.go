package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ariel-frischer/chlog/internal/changelog"
	errs "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/output"
)

// newCheckCmd validates a local or remote changelog and reports the result.
func newCheckCmd(opts *rootOptions) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the changelog and report the result",
		Long: `Validate the changelog and print a pass/fail summary.

Without --url this checks the local file, like running chlog with no flags.
With --url the changelog is fetched over HTTP first, which lets CI verify
the changelog published on a main branch. The fetch timeout comes from the
remote_timeout config key.

Examples:
  chlog check
  chlog check --url https://raw.githubusercontent.com/acme/widget/main/CHANGELOG.md`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts, url)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Fetch and validate a remote changelog instead of the local file")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *rootOptions, url string) error {
	cfg, err := loadSettings(opts)
	if err != nil {
		return err
	}

	if url == "" {
		url = cfg.RemoteURL
	}

	var content, source string
	if url != "" {
		source = url
		content, err = fetchRemote(cfg.Plain, url, time.Duration(cfg.RemoteTimeout)*time.Second)
		if err != nil {
			return err
		}
	} else {
		source = cfg.Changelog
		content, err = changelog.Load(cfg.Changelog)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return errs.ChangelogNotFound(cfg.Changelog)
			}
			return err
		}
	}

	latest, err := changelog.Validate(content)
	if err != nil {
		if cfg.Plain {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not a valid changelog\n", source)
		} else {
			output.PrintFailure(cmd.OutOrStdout(), fmt.Sprintf("%s is not a valid changelog", source))
		}
		return err
	}

	summary := fmt.Sprintf("%s format is valid. Latest version: %s", source, latest)
	if cfg.Plain {
		fmt.Fprintln(cmd.OutOrStdout(), summary)
	} else {
		output.PrintSuccess(cmd.OutOrStdout(), summary)
	}
	return nil
}

// fetchRemote downloads a changelog over HTTP, showing a spinner when the
// output is an interactive terminal.
func fetchRemote(plain bool, url string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Fetching changelog..."
		s.Start()
		defer s.Stop()
	}

	content, err := changelog.FetchRemote(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetching remote changelog: %w", err)
	}
	return content, nil
}
