package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/bookshelf/internal/cache"
	"github.com/rshade/bookshelf/internal/config"
)

// NewCacheCmd creates the cache command group for downloaded catalogs.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Manage cached remote catalogs"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "stats",
			Short: "Show cache location, TTL and size",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCache(cmd, func(store *cache.FileStore) error {
					stats, err := store.Stats()
					if err != nil {
						return err
					}
					cmd.Printf("Directory: %s\nTTL: %s\nEntries: %d (%d expired)\nSize: %d bytes\n",
						store.Directory(), cache.FormatDuration(store.TTL()),
						stats.Entries, stats.Expired, stats.Bytes)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "prune",
			Short: "Remove expired and unreadable entries",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCache(cmd, func(store *cache.FileStore) error {
					if err := store.CleanupExpired(); err != nil {
						return err
					}
					cmd.Println("Expired cache entries removed")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every cached catalog",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCache(cmd, func(store *cache.FileStore) error {
					if err := store.Clear(); err != nil {
						return err
					}
					cmd.Println("Cache cleared")
					return nil
				})
			},
		},
	)
	return cmd
}

func withCache(cmd *cobra.Command, fn func(store *cache.FileStore) error) error {
	cfg := config.GetGlobalConfig()
	if !cfg.Cache.Enabled {
		cmd.Println("Catalog cache is disabled (cache.enabled = false)")
		return nil
	}
	store, err := catalogCache(cfg)
	if err != nil {
		return fmt.Errorf("opening catalog cache: %w", err)
	}
	return fn(store)
}
