package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rshade/bookshelf/internal/ingest"
	"github.com/rshade/bookshelf/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintln(w, version.GetVersion())
				return err
			}

			release := "development build"
			if version.IsRelease() {
				release = "release"
			}
			_, err := fmt.Fprintf(w,
				"bookshelf %s (%s)\ncommit: %s\nbuilt: %s\ngo: %s %s/%s\ncatalog schema: %s\n",
				version.GetVersion(), release,
				version.GetGitCommit(), version.GetBuildDate(),
				runtime.Version(), runtime.GOOS, runtime.GOARCH,
				ingest.SupportedSchemaRange,
			)
			return err
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
