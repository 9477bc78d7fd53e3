package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/bookshelf/internal/cache"
	"github.com/rshade/bookshelf/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the global file, the project
overlay and BOOKSHELF_* environment overrides.

This includes:
- YAML syntax of the config files
- Output format and logging settings
- Page size (1-1000), facet order and locale
- Cache TTL when the cache is enabled`,
		Example: `  # Validate current configuration
  bookshelf config validate

  # Validate and show detailed information
  bookshelf config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.LoadError(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	if projectDir := config.GetResolvedProjectDir(); projectDir != "" {
		cmd.Printf("  Project directory: %s\n", projectDir)
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Page size: %d\n", cfg.Browse.PageSize)
	cmd.Printf("  Locale: %s\n", cfg.Browse.Locale)

	printCatalogDetails(cmd, cfg)
	printCacheDetails(cmd, cfg)
}

func printCatalogDetails(cmd *cobra.Command, cfg *config.Config) {
	if cfg.Browse.Catalog == "" {
		cmd.Println("  No default catalog configured")
		return
	}
	cmd.Printf("  Default catalog: %s\n", cfg.Browse.Catalog)
}

func printCacheDetails(cmd *cobra.Command, cfg *config.Config) {
	if !cfg.Cache.Enabled {
		cmd.Println("  Catalog cache: disabled")
		return
	}
	store, err := catalogCache(cfg)
	if err != nil {
		cmd.Printf("  Catalog cache: unavailable (%v)\n", err)
		return
	}
	stats, err := store.Stats()
	if err != nil {
		cmd.Printf("  Catalog cache: %s (stats unavailable: %v)\n", store.Directory(), err)
		return
	}
	cmd.Printf("  Catalog cache: %s, TTL %s, %d entries (%d expired), %d bytes\n",
		store.Directory(), cache.FormatDuration(store.TTL()), stats.Entries, stats.Expired, stats.Bytes)
}
