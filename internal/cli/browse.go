package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/render"
	"github.com/rshade/bookshelf/internal/tui"
)

// NewBrowseCmd creates the browse command, which runs the interactive
// catalog browser.
func NewBrowseCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Opens a full-screen browser over the catalog.

Keys: / search, g/G genre, a/A age rating, v available only, s/S sort,
left/right or h/l page, 1-9 jump to page, home/end first/last page,
up/down or j/k move, enter/space details, esc clear search, r reset, q quit.

When stdout is not a terminal, or the catalog is read from stdin, the first
page is printed instead.`,
		Example: `  bookshelf browse --catalog books.json
  bookshelf browse --catalog https://example.org/books.json --page-size 12`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print the first page as a plain table instead of browsing")
	return cmd
}

func runBrowse(cmd *cobra.Command, plain bool) error {
	run, err := newCatalogRun(cmd)
	if err != nil {
		return err
	}

	mode := tui.DetectOutputMode(false, false, plain)
	if mode == tui.OutputModeInteractive && run.usesStdin() {
		// The browser needs stdin for key input.
		mode = tui.OutputModeStyled
	}

	logger.Debug().Ctx(cmd.Context()).
		Str("operation", "browse").
		Str("mode", mode.String()).
		Msg("output mode selected")

	switch mode {
	case tui.OutputModeInteractive:
		return runInteractiveBrowse(cmd, run)
	case tui.OutputModeStyled, tui.OutputModePlain:
		return printFirstPage(cmd, run, mode)
	}
	return nil
}

func runInteractiveBrowse(cmd *cobra.Command, run *catalogRun) error {
	ctx := cmd.Context()
	model := tui.NewBrowserModel(ctx, run.session, run.load, run.printer).
		WithLoadingMessage(loadingMessage(run.locations))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running browser: %w", err)
	}

	if final, ok := finalModel.(tui.BrowserModel); ok && final.Err() != nil {
		return fmt.Errorf("failed to load catalog: %w", final.Err())
	}
	return nil
}

// loadingMessage names the catalog being fetched.
func loadingMessage(locations []string) string {
	switch len(locations) {
	case 0:
		return "Loading catalog..."
	case 1:
		return fmt.Sprintf("Loading %s...", locations[0])
	default:
		return fmt.Sprintf("Loading %s and %d more...", locations[0], len(locations)-1)
	}
}

func printFirstPage(cmd *cobra.Command, run *catalogRun, mode tui.OutputMode) error {
	if err := run.loadNow(cmd.Context()); err != nil {
		return err
	}
	page, err := run.session.GoTo(pagination.DefaultPage)
	if err != nil {
		return err
	}
	view := render.PageView{
		Page:        page,
		Criteria:    run.session.Criteria(),
		CatalogSize: run.session.CatalogSize(),
	}
	if mode == tui.OutputModeStyled {
		_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderStyledPage(view, run.printer, tui.TerminalWidth()))
		return err
	}
	return render.RenderTable(cmd.OutOrStdout(), view)
}
