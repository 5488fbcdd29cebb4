package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockroute/stockroute/internal/adapters/outbound/dataset"
	"github.com/stockroute/stockroute/internal/adapters/outbound/tui"
)

func newRestockCmd() *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "restock FILE",
		Short: "Merge an inventory file into saved stock",
		Long: "Add the quantities in FILE to the saved inventory. Known warehouses are restocked in place; " +
			"new warehouses are appended at the lowest priority.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(projectPath)
			if err != nil {
				return err
			}

			updates, err := dataset.New().LoadInventory(args[0])
			if err != nil {
				return err
			}

			warehouses, err := newService(newLogger(cmd)).Restock(absPath, updates)
			if err != nil {
				return fmt.Errorf("restock failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, warehouses)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInventory(warehouses))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output resulting inventory as JSON")

	return cmd
}
