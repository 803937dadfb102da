package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/routewalk/routewalk"
	"github.com/routewalk/routewalk/internal/dev"
	"github.com/routewalk/routewalk/internal/errors"
	"github.com/routewalk/routewalk/pkg/router"
)

func watchCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the route directory and re-resolve on change",
		Long: `Watch the route directory and print the updated route table whenever
handler files change. Resolution errors are reported without stopping
the watcher, so a broken file can be fixed and picked up in place.

Press Ctrl+C to stop.

Examples:
  routewalk watch
  routewalk watch --dir=web/routes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, err := loadEngine(dir)
			if err != nil {
				return err
			}

			watchDir := cfg.RoutesPath()
			if dir != "" {
				watchDir = dir
			}
			if _, err := os.Stat(watchDir); err != nil {
				errorMsg("routes directory %s does not exist", watchDir)
				return err
			}

			printBanner()
			info("watching %s", watchDir)
			fmt.Println()
			printRoutes(cmd.Context(), engine)

			watcher, err := dev.NewWatcher(dev.WatcherConfig{
				Root:     watchDir,
				Ignore:   cfg.Watch.Ignore,
				Debounce: cfg.Debounce(),
			})
			if err != nil {
				return err
			}
			watcher.OnChange(func(changes []dev.Change) {
				info("%d change(s) detected, re-resolving", len(changes))
				printRoutes(cmd.Context(), engine)
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			defer watcher.Stop()

			if err := watcher.Start(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
				return err
			}
			fmt.Println()
			info("stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Routes directory (default from routewalk.yaml)")

	return cmd
}

// printRoutes resolves and prints the current table, reporting errors
// without aborting watch mode.
func printRoutes(ctx context.Context, engine *routewalk.Engine) {
	routes, err := engine.Routes(ctx)
	if err != nil {
		var engineErr *errors.EngineError
		if stderrors.As(err, &engineErr) {
			fmt.Fprintln(os.Stderr, engineErr.Format())
		} else {
			errorMsg("%s", err)
		}
		warn("route table not updated")
		return
	}
	fmt.Println(router.FormatTable(routes))
	info(router.Summary(routes))
	fmt.Println()
}
