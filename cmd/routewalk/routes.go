package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routewalk/routewalk/pkg/router"
)

func routesCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the resolved route table",
		Long: `Resolve the route directory and print the route table in dispatch
order: static routes first, then dynamic, then catch-all, with more
specific patterns ahead of less specific ones.

Handler files are inspected without being executed, so the table
reflects exactly what a service booting from this directory would
register.

Examples:
  routewalk routes
  routewalk routes --dir=web/routes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := loadEngine(dir)
			if err != nil {
				return err
			}

			routes, err := engine.Routes(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(router.FormatTable(routes))
			info(router.Summary(routes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Routes directory (default from routewalk.yaml)")

	return cmd
}
