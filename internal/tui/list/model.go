package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// halfViewportDivisor centres the cursor in the window.
const halfViewportDivisor = 2

// RenderFunc renders one item. An expanded item may span several lines.
type RenderFunc[T any] func(item T, selected, expanded bool) string

// PageList is a cursor and expand/collapse state over the items of one page.
type PageList[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	expanded   map[int]bool

	cursor      int
	visibleFrom int
	visibleTo   int

	// height is the number of items shown at once, not terminal rows.
	height int
}

// New creates a list showing at most height items at a time.
func New[T any](items []T, height int, renderFunc RenderFunc[T]) *PageList[T] {
	l := &PageList[T]{
		renderFunc: renderFunc,
		height:     height,
	}
	l.SetItems(items)
	return l
}

// SetItems replaces the items, moves the cursor to the top and collapses
// everything.
func (l *PageList[T]) SetItems(items []T) {
	l.items = items
	l.cursor = 0
	l.expanded = make(map[int]bool)
	l.updateVisibleRange()
}

// SetHeight changes how many items fit in the window.
func (l *PageList[T]) SetHeight(height int) {
	l.height = height
	l.updateVisibleRange()
}

// Update moves the cursor and toggles expansion.
//
//nolint:exhaustive // Only navigation keys are handled.
func (l *PageList[T]) Update(msg tea.KeyMsg) bool {
	if len(l.items) == 0 {
		return false
	}

	switch msg.Type {
	case tea.KeyUp:
		return l.Move(-1)
	case tea.KeyDown:
		return l.Move(1)
	case tea.KeyEnter, tea.KeySpace:
		l.Toggle()
		return true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return false
		}
		switch msg.Runes[0] {
		case 'j':
			return l.Move(1)
		case 'k':
			return l.Move(-1)
		case ' ':
			l.Toggle()
			return true
		}
	}
	return false
}

// Move shifts the cursor by delta, stopping at either end. It reports
// whether the key was consumed.
func (l *PageList[T]) Move(delta int) bool {
	if len(l.items) == 0 {
		return false
	}
	next := l.cursor + delta
	switch {
	case next < 0:
		next = 0
	case next >= len(l.items):
		next = len(l.items) - 1
	}
	l.cursor = next
	l.updateVisibleRange()
	return true
}

// Toggle expands or collapses the item under the cursor.
func (l *PageList[T]) Toggle() {
	if len(l.items) == 0 {
		return
	}
	if l.expanded[l.cursor] {
		delete(l.expanded, l.cursor)
		return
	}
	l.expanded[l.cursor] = true
}

// IsExpanded reports whether the item at index is expanded.
func (l *PageList[T]) IsExpanded(index int) bool {
	return l.expanded[index]
}

// CollapseAll collapses every item.
func (l *PageList[T]) CollapseAll() {
	l.expanded = make(map[int]bool)
}

func (l *PageList[T]) updateVisibleRange() {
	if len(l.items) == 0 || l.height <= 0 {
		l.visibleFrom = 0
		l.visibleTo = len(l.items)
		return
	}

	from := l.cursor - l.height/halfViewportDivisor
	if from < 0 {
		from = 0
	}
	to := from + l.height
	if to > len(l.items) {
		to = len(l.items)
		from = max(to-l.height, 0)
	}

	l.visibleFrom = from
	l.visibleTo = to
}

// View renders the items inside the window.
func (l *PageList[T]) View() string {
	if len(l.items) == 0 {
		return ""
	}

	lines := make([]string, 0, l.visibleTo-l.visibleFrom)
	for i := l.visibleFrom; i < l.visibleTo; i++ {
		lines = append(lines, l.renderFunc(l.items[i], i == l.cursor, l.expanded[i]))
	}
	return strings.Join(lines, "\n")
}

// Len returns the number of items on the page.
func (l *PageList[T]) Len() int {
	return len(l.items)
}

// Cursor returns the index of the highlighted item.
func (l *PageList[T]) Cursor() int {
	return l.cursor
}

// VisibleFrom returns the first rendered index (inclusive).
func (l *PageList[T]) VisibleFrom() int {
	return l.visibleFrom
}

// VisibleTo returns the last rendered index (exclusive).
func (l *PageList[T]) VisibleTo() int {
	return l.visibleTo
}

// Selected returns the item under the cursor, or nil on an empty page.
func (l *PageList[T]) Selected() *T {
	if len(l.items) == 0 {
		return nil
	}
	return &l.items[l.cursor]
}
