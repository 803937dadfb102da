package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/routewalk/routewalk/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┬ ┬┌┬┐┌─┐┬ ┬┌─┐┬  ┬┌─
  ├┬┘│ ││ │ │ ├┤ │││├─┤│  ├┴┐
  ┴└─└─┘└─┘ ┴ └─┘└┴┘┴ ┴┴─┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "routewalk",
		Short: "File-derived route resolution for Go services",
		Long: `Routewalk derives HTTP routes from a directory of handler files.

Files become URL patterns: [id] segments capture path parameters,
[...slug] segments capture the rest of the path, and index files
collapse to their parent path. Routewalk validates the resulting
table (duplicates, parameter names, handler shapes) and prints or
applies it in a stable, priority-ordered form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		routesCmd(),
		checkCmd(),
		watchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var engineErr *errors.EngineError
		if stderrors.As(err, &engineErr) {
			fmt.Fprintln(os.Stderr, engineErr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the routewalk ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
