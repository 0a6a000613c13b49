package cli

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/output"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// newWatchCmd re-validates the changelog on every change until interrupted.
func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-validate the changelog on every change",
		Long: `Watch the changelog file and re-validate it whenever it changes.

Each change prints a timestamped pass/fail line, so the file can stay open
in an editor while the terminal shows whether it is currently valid.
Runs until interrupted with Ctrl+C.

Example:
  chlog watch`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts)
		},
	}
}

func runWatch(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadSettings(opts)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory rather than the file itself: most editors
	// replace the file on save, which drops a direct file watch.
	path, err := filepath.Abs(cfg.Changelog)
	if err != nil {
		return fmt.Errorf("resolving changelog path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reportValidation(cmd, opts, path)

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			reportValidation(cmd, opts, path)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			return fmt.Errorf("watching changelog: %w", watchErr)
		}
	}
}

// reportValidation validates the file and prints a single timestamped line.
func reportValidation(cmd *cobra.Command, opts *rootOptions, path string) {
	timestamp := time.Now().Format("15:04:05")

	content, err := changelog.Load(path)
	if err != nil {
		output.PrintWatchEvent(cmd.OutOrStdout(), timestamp, fmt.Sprintf("✗ %v", err))
		return
	}

	latest, err := changelog.Validate(content)
	if err != nil {
		output.PrintWatchEvent(cmd.OutOrStdout(), timestamp, fmt.Sprintf("✗ %v", err))
		return
	}

	output.PrintWatchEvent(cmd.OutOrStdout(), timestamp, fmt.Sprintf("✓ valid, latest version %s", latest))
}
