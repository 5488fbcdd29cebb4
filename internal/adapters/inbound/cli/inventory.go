package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockroute/stockroute/internal/adapters/outbound/tui"
	"github.com/stockroute/stockroute/internal/domain"
)

func newInventoryCmd() *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show saved warehouse stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(projectPath)
			if err != nil {
				return err
			}

			warehouses, err := newService(newLogger(cmd)).Inventory(absPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, warehouses)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInventory(warehouses))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output inventory as JSON")

	return cmd
}

func newJournalCmd() *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
		opNames     []string
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the operation journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(projectPath)
			if err != nil {
				return err
			}

			ops, err := domain.ParseOperations(opNames)
			if err != nil {
				return err
			}

			entries, err := newService(newLogger(cmd)).Journal(absPath, ops...)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderJournal(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output journal as JSON")
	cmd.Flags().StringSliceVar(&opNames, "op", nil, "Only show these operations (seed, restock, allocate)")

	return cmd
}
