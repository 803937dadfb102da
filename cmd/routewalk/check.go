package main

import (
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the route directory",
		Long: `Resolve the route directory and report the first problem found:
an invalid handler file, a reserved or malformed parameter name, or
two files mapping to the same URL pattern.

Exits 0 when the route table is clean, 1 otherwise. Suitable for CI.

Examples:
  routewalk check
  routewalk check --dir=web/routes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, err := loadEngine(dir)
			if err != nil {
				return err
			}

			routes, err := engine.Routes(cmd.Context())
			if err != nil {
				return err
			}

			shown := cfg.Routes
			if dir != "" {
				shown = dir
			}
			success("route table is clean")
			info("%d routes from %s", len(routes), shown)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Routes directory (default from routewalk.yaml)")

	return cmd
}
