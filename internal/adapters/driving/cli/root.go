// Package cli implements the kbserve command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	config "github.com/custodia-labs/kbserve/internal/adapters/driven/config/file"
	storage "github.com/custodia-labs/kbserve/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/kbserve/internal/core/ports/driving"
	"github.com/custodia-labs/kbserve/internal/core/services"
	"github.com/custodia-labs/kbserve/internal/logger"
)

// version is the CLI version, overridable at build time via -ldflags.
var version = "0.1.0"

// Shared services, wired once per invocation. Tests inject their own
// before calling Execute.
var (
	queryService driving.QueryService
	docStore     *storage.DocumentStore
)

var (
	verboseFlag   bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "kbserve",
	Short: "Knowledge-base MCP server",
	Long: `kbserve exposes a static JSON knowledge base (FAQ, sessions,
triggers, safety content) over the Model Context Protocol, with
deterministic keyword search, entity extraction and context tools.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config", "", "config directory (default ~/.kbserve)")
}

// initServices builds the document store and query service from
// configuration. Already-injected services are left alone.
func initServices() error {
	if queryService != nil {
		return nil
	}

	cfg, err := config.Load(configDirFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	docStore = storage.NewDocumentStore(cfg.Data.Path)

	svc := services.NewQueryService(docStore)
	svc.SetDefaultMaxResults(cfg.Search.MaxResults)
	queryService = svc

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
