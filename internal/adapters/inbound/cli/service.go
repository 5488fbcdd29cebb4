package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stockroute/stockroute/internal/adapters/outbound/config"
	"github.com/stockroute/stockroute/internal/adapters/outbound/gitinfo"
	"github.com/stockroute/stockroute/internal/adapters/outbound/journal"
	"github.com/stockroute/stockroute/internal/adapters/outbound/state"
	"github.com/stockroute/stockroute/internal/application"
	"github.com/stockroute/stockroute/internal/logging"
)

// newLogger builds the stderr logger honoring the global --verbose flag.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(cmd.ErrOrStderr(), verbose)
}

// newService wires the allocation service to the file-backed adapters.
func newService(log zerolog.Logger) *application.AllocationService {
	return application.NewAllocationService(
		state.New(),
		journal.New(),
		config.New(),
		gitinfo.New(),
		log,
	)
}

func resolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absPath, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
