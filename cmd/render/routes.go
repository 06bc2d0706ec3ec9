package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/canvas-lab/web/app"
)

func newRoutesCmd() *cobra.Command {
	var (
		basePath string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the page route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.Routes()
			if err != nil {
				return err
			}
			infos := app.RouteInfos(table, basePath)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPATH\tTITLE\tURL")
			for _, r := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Path, r.Title, r.URL)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&basePath, "base-path", "/", "base path the pages are mounted under")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}
