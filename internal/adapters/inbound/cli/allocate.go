package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockroute/stockroute/internal/adapters/outbound/dataset"
	"github.com/stockroute/stockroute/internal/adapters/outbound/tui"
)

func newAllocateCmd() *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
		ciMode      bool
	)

	cmd := &cobra.Command{
		Use:   "allocate FILE",
		Short: "Allocate an order across warehouses",
		Long: "Fill the order in FILE from saved stock, walking warehouses in priority order. " +
			"With --json the shipments are printed as a list of {warehouse: {item: quantity}} objects; " +
			"an order that cannot be filled prints [].",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(projectPath)
			if err != nil {
				return err
			}

			order, err := dataset.New().LoadOrder(args[0])
			if err != nil {
				return err
			}

			report, err := newService(newLogger(cmd)).Allocate(absPath, order)
			if err != nil {
				return fmt.Errorf("allocation failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report.Shipments); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAllocation(*report))
			}

			if ciMode && !report.Fulfilled() {
				return fmt.Errorf("order not fulfilled: %s", report.Shortfall)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output shipments as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the order cannot be fulfilled")

	return cmd
}
