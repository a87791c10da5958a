package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/switchboard/internal/routes"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Calculate a route with the configured strategy",
	RunE:  runRoute,
}

func init() {
	routeCmd.Flags().String("from", "", "start location (required)")
	routeCmd.Flags().String("to", "", "end location (required)")
	routeCmd.Flags().String("strategy", "", "override the configured strategy for this call")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	if strategy, _ := cmd.Flags().GetString("strategy"); strategy != "" {
		cfg.Route.Strategy = strategy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	calc, err := calculatorFor(cfg)
	if err != nil {
		return err
	}

	planner, err := routes.NewPlanner(calc)
	if err != nil {
		return err
	}

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	route, err := planner.Plan(cmd.Context(), from, to)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render(route.Mode))
	if route.Description == "" {
		fmt.Println(subtleStyle.Render("(no route: missing endpoint)"))
		return nil
	}
	fmt.Println(route.Description)
	return nil
}
