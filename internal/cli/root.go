package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/bookshelf/internal/config"
	"github.com/rshade/bookshelf/internal/logging"
)

// logger is the package-level logger for CLI operations. It is replaced
// once configuration is loaded.
var logger = logging.NewLogger(logging.DefaultConfig()) //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the bookshelf CLI.
// It resolves the project directory, loads configuration, wires logging and
// tracing, and registers the list, facets, browse, config and version
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:          "bookshelf",
		Short:        "Browse a book catalog from the terminal",
		Long:         "bookshelf: search, filter, sort and page through a library book catalog",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			projectFlag, _ := cmd.Flags().GetString("project-dir")
			startDir, err := os.Getwd()
			if err != nil {
				startDir = "."
			}
			projectDir := config.ResolveProjectDir(cmd.Context(), projectFlag, startDir)
			config.SetResolvedProjectDir(projectDir)

			cfg := config.NewWithProjectDir(cmd.Context(), projectDir)
			config.SetGlobalConfig(cfg)
			if loadErr := cfg.LoadError(); loadErr != nil {
				cmd.PrintErrf("Warning: ignoring config file: %v\n", loadErr)
			}

			logResult = setupLogging(cmd)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .bookshelf/config.yaml")
	cmd.PersistentFlags().StringArray("catalog", nil,
		"catalog location: file path, http(s) URL or - for stdin (repeatable)")
	cmd.PersistentFlags().String("catalog-format", "", "catalog document format: json or yaml (default: detect)")
	cmd.PersistentFlags().Int("page-size", 0, "books per page (0 = use config)")

	cmd.AddCommand(NewListCmd(), NewFacetsCmd(), NewBrowseCmd(), newConfigCmd(), NewCacheCmd(), NewVersionCmd())
	return cmd
}

const rootCmdExample = `  # Browse a catalog interactively
  bookshelf browse --catalog books.json

  # Search and sort, printing one page as a table
  bookshelf list --catalog books.yaml --search austen --sort title-asc

  # Second page of available science fiction as JSON
  bookshelf list --catalog https://example.org/books.json --genre sci-fi --available --page 2 --output json

  # Merge two catalogs
  bookshelf list --catalog fiction.json --catalog kids.yaml

  # Show the genres and age ratings of a catalog
  bookshelf facets --catalog books.json

  # Remember a default catalog
  bookshelf config set browse.catalog ~/books.json`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
