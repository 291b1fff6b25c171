package commands

import "github.com/spf13/cobra"

func (c *CLI) newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the subway routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.listRoutes(cmd.Context(), newPrinter(cmd.OutOrStdout()))
		},
	}
}

func (c *CLI) newRouteInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route-info",
		Short: "Show the routes with the most and fewest stops and every transfer stop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.routeInfo(cmd.Context(), newPrinter(cmd.OutOrStdout()))
		},
	}
}

func (c *CLI) newDirectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "directions <from> <to>",
		Short: "Print the routes to ride between two stops",
		Example: `  hop directions "Davis" "Kendall/MIT"
  hop directions Ashmont Arlington`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.directions(cmd.Context(), newPrinter(cmd.OutOrStdout()), args[0], args[1])
		},
	}
}
