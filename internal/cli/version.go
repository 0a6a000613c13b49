package cli

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/build"
)

// newVersionCmd displays version and build information.
func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for chlog",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if plain {
				printPlainVersion(cmd)
				return
			}
			printPrettyVersion(cmd)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")

	return cmd
}

// printPlainVersion prints a simple version output for scripting.
func printPlainVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "chlog %s\n", build.Version)
	fmt.Fprintf(out, "commit: %s\n", truncateCommit(build.Commit))
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints a styled version output.
func printPrettyVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(out, "%s %s\n", cyan("chlog"), build.Version)
	fmt.Fprintf(out, "%s\n", dim(fmt.Sprintf("commit %s, built %s", truncateCommit(build.Commit), build.BuildDate)))
	fmt.Fprintf(out, "%s\n", dim(fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)))
}

// truncateCommit shortens a commit hash if it's too long.
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
