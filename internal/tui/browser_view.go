package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/query"
	"github.com/rshade/bookshelf/internal/render"
)

const (
	borderPadding = 2
	detailIndent  = "    "
	markCollapsed = "▸"
	markExpanded  = "▾"
	cursorMark    = "›"
)

// View renders the current view (Bubble Tea interface).
func (m BrowserModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoading(m.loadingState)
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m BrowserModel) renderErrorView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		CriticalStyle.Render("failed to load catalog"),
		SubtleStyle.Render(fmt.Sprint(m.err)),
		"",
		LabelStyle.Render("Press q to quit."),
	)
}

func (m BrowserModel) renderListView() string {
	sections := []string{
		m.renderHeader(),
		renderCriteria(m.session.Criteria()),
	}

	if m.showSearch || m.textInput.Value() != "" {
		sections = append(sections, m.textInput.View())
	}

	sections = append(sections, "")
	if m.page.IsEmpty() {
		sections = append(sections, SubtleStyle.Render(render.EmptyMessage))
	} else {
		sections = append(sections, m.list.View())
	}

	sections = append(sections, "", m.renderPager(), SubtleStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BrowserModel) renderHeader() string {
	title := HeaderStyle.Render("Bookshelf")
	count := SubtleStyle.Render(render.CountSummary(m.printer, m.session.MatchCount(), m.session.CatalogSize()))
	return InfoStyle.
		Width(max(m.width-borderPadding, 0)).
		Padding(0, 1).
		Render(title + "  " + count)
}

// renderPager shows the page indicator between prev and next controls that
// dim at the edges.
func (m BrowserModel) renderPager() string {
	prev := LabelStyle.Render("‹ prev")
	if !m.page.HasPrevious() {
		prev = SubtleStyle.Render("‹ prev")
	}
	next := LabelStyle.Render("next ›")
	if !m.page.HasNext() {
		next = SubtleStyle.Render("next ›")
	}
	indicator := ValueStyle.Render(render.PageIndicator(m.page.EffectivePage, m.page.TotalPages))
	return prev + "  " + indicator + "  " + next
}

func renderCriteria(c query.Criteria) string {
	parts := []string{
		criterion("Genre", facetLabel(c.Genre)),
		criterion("Age", facetLabel(c.AgeRating)),
		criterion("Available only", onOff(c.AvailableOnly)),
		criterion("Sort", c.Sort.Label()),
	}
	return strings.Join(parts, SubtleStyle.Render("  |  "))
}

func criterion(label, value string) string {
	return LabelStyle.Render(label+": ") + ValueStyle.Render(value)
}

func facetLabel(v string) string {
	if v == "" {
		return query.AllValue
	}
	return v
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// renderBookRow draws one list row and, when expanded, its details.
func renderBookRow(b catalog.BookRecord, selected, expanded bool) string {
	cursor := " "
	if selected {
		cursor = cursorMark
	}
	mark := markCollapsed
	if expanded {
		mark = markExpanded
	}

	title := ValueStyle.Render(b.Title)
	if selected {
		title = TableSelectedStyle.Render(b.Title)
	}
	line := fmt.Sprintf("%s %s %s %s  %s",
		cursor, mark, title,
		SubtleStyle.Render("by "+b.Author),
		availabilityStyle(b).Render(render.Availability(b)),
	)
	if !expanded {
		return line
	}

	rows := []string{line}
	for _, d := range render.Details(b) {
		if d.Value == "" {
			continue
		}
		rows = append(rows, detailIndent+LabelStyle.Render(d.Label+": ")+ValueStyle.Render(d.Value))
	}
	return strings.Join(rows, "\n")
}

func availabilityStyle(b catalog.BookRecord) lipgloss.Style {
	if b.IsAvailable() {
		return OKStyle
	}
	return WarningStyle
}
