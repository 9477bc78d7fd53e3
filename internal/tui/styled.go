package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/rshade/bookshelf/internal/render"
)

// RenderStyledPage renders one page of results as a bordered box for
// terminals that cannot, or should not, run the interactive browser.
func RenderStyledPage(view render.PageView, printer *message.Printer, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("Bookshelf"))
	content.WriteString("  ")
	content.WriteString(SubtleStyle.Render(render.CountSummary(printer, view.Page.TotalItems, view.CatalogSize)))
	content.WriteString("\n")
	content.WriteString(renderCriteria(view.Criteria))
	content.WriteString("\n\n")

	if view.Page.IsEmpty() {
		content.WriteString(SubtleStyle.Render(render.EmptyMessage))
	} else {
		rows := make([]string, 0, len(view.Page.Items))
		for _, b := range view.Page.Items {
			meta := strings.Join(nonEmpty(b.Genre, b.AgeRating), " · ")
			rows = append(rows, lipgloss.JoinVertical(lipgloss.Left,
				ValueStyle.Bold(true).Render(b.Title)+"  "+SubtleStyle.Render("by "+b.Author),
				detailIndent+LabelStyle.Render(meta)+"  "+availabilityStyle(b).Render(render.Availability(b)),
			))
		}
		content.WriteString(strings.Join(rows, "\n"))
	}

	content.WriteString("\n\n")
	content.WriteString(ValueStyle.Render(render.PageIndicator(view.Page.EffectivePage, view.Page.TotalPages)))

	return BoxStyle.Width(max(width-borderPadding, minWidth)).Render(content.String()) + "\n"
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
