package cli

import (
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	errs "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/output"
)

// newTagCheckCmd verifies the changelog agrees with the repository's tags.
func newTagCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tag-check",
		Short: "Verify the latest changelog version matches the newest git tag",
		Long: `Verify that the newest release in the changelog matches the highest
semantic-version tag in the enclosing git repository.

Release pipelines tag commits with the version they ship; a changelog whose
topmost entry disagrees with the tags means someone forgot one or the other.
Tags that are not bare X.Y.Z versions (with an optional v prefix) are ignored.

Example:
  chlog tag-check`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTagCheck(cmd, opts)
		},
	}
}

func runTagCheck(cmd *cobra.Command, opts *rootOptions) error {
	cfg, _, latest, err := loadValidated(opts)
	if err != nil {
		return err
	}

	newest, err := newestSemverTag(".")
	if err != nil {
		return err
	}

	if newest == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No semver tags found; nothing to check.")
		return nil
	}

	if newest != latest {
		return errs.NewValidationError(
			fmt.Sprintf("changelog latest version %s does not match newest git tag v%s", latest, newest),
			fmt.Sprintf("Add a '## %s' entry to the changelog if the tag is right", newest),
			fmt.Sprintf("Or tag the release: git tag v%s", latest),
		)
	}

	summary := fmt.Sprintf("changelog version %s matches newest git tag", latest)
	if cfg.Plain {
		fmt.Fprintln(cmd.OutOrStdout(), summary)
	} else {
		output.PrintSuccess(cmd.OutOrStdout(), summary)
	}
	return nil
}

// newestSemverTag returns the highest bare X.Y.Z tag in the repository at or
// above dir, without any v prefix. Returns "" when no such tag exists.
func newestSemverTag(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", errs.NoRepository(dir)
		}
		return "", fmt.Errorf("opening repository: %w", err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("listing tags: %w", err)
	}
	defer tags.Close()

	newest := ""
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		version := strings.TrimPrefix(ref.Name().Short(), "v")
		if !isBareTriple(version) {
			return nil
		}
		if newest == "" || semver.Compare("v"+version, "v"+newest) > 0 {
			newest = version
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterating tags: %w", err)
	}

	return newest, nil
}

// isBareTriple reports whether s is a plain X.Y.Z version with no
// pre-release or build suffix, matching the changelog heading grammar.
func isBareTriple(s string) bool {
	return semver.IsValid("v"+s) && semver.Canonical("v"+s) == "v"+s && semver.Prerelease("v"+s) == ""
}
