package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stockroute/stockroute/internal/adapters/outbound/config"
	"github.com/stockroute/stockroute/internal/adapters/outbound/dataset"
	"github.com/stockroute/stockroute/internal/application"
	"github.com/stockroute/stockroute/internal/domain"
)

const configHeader = "# stockroute configuration\n# commit_policy: immediate | atomic\n\n"

func newInitCmd() *cobra.Command {
	var (
		inventoryFile string
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Seed warehouse inventory for a project",
		Long: "Load an inventory file into the project's saved state and create a " + config.FileName +
			" with defaults when none exists. The file lists warehouses in priority order.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := resolvePath(path)
			if err != nil {
				return err
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			seedPath, err := application.ResolveInventoryFile(absPath, inventoryFile, cfg)
			if err != nil {
				return err
			}

			seed, err := dataset.New().LoadInventory(seedPath)
			if err != nil {
				return err
			}

			log := newLogger(cmd)
			warehouses, err := newService(log).Init(absPath, seed, force)
			if err != nil {
				return err
			}

			created, err := writeDefaultConfig(absPath, seedPath)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d warehouses from %s\n", len(warehouses), filepath.Base(seedPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&inventoryFile, "inventory", "", "Inventory file (YAML or JSON); defaults to inventory_file from config")
	cmd.Flags().BoolVar(&force, "force", false, "Replace existing inventory state")

	return cmd
}

// writeDefaultConfig creates the config file unless one exists. The seed
// path is recorded when it lives inside the project.
func writeDefaultConfig(projectPath, seedPath string) (bool, error) {
	dest := filepath.Join(projectPath, config.FileName)
	if _, err := os.Stat(dest); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("checking config: %w", err)
	}

	cfg := domain.DefaultConfig()
	if abs, err := filepath.Abs(seedPath); err == nil {
		seedPath = abs
	}
	if rel, err := filepath.Rel(projectPath, seedPath); err == nil && filepath.IsLocal(rel) {
		cfg.InventoryFile = filepath.ToSlash(rel)
	}

	data, err := config.Render(cfg)
	if err != nil {
		return false, fmt.Errorf("rendering config: %w", err)
	}
	if err := os.WriteFile(dest, append([]byte(configHeader), data...), 0644); err != nil {
		return false, fmt.Errorf("writing config: %w", err)
	}
	return true, nil
}
