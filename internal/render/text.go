package render

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/bookshelf/internal/catalog"
)

// EmptyMessage is shown in place of an empty page.
const EmptyMessage = "No books found."

// PageIndicator returns "Page X of Y".
func PageIndicator(effectivePage, totalPages int) string {
	return fmt.Sprintf("Page %d of %d", effectivePage, totalPages)
}

// Detail is one labelled line of the expanded record view.
type Detail struct {
	Label string
	Value string
}

// Details returns the expanded view of a record: the description followed
// by its genre, age rating and copy counts.
func Details(b catalog.BookRecord) []Detail {
	return []Detail{
		{Label: "Description", Value: b.Description},
		{Label: "Genre", Value: b.Genre},
		{Label: "Age Rating", Value: b.AgeRating},
		{Label: "Copies in Library", Value: strconv.Itoa(b.TotalCopies)},
		{Label: "Available Copies", Value: strconv.Itoa(b.AvailableCopies)},
	}
}

// Availability returns a short availability label.
func Availability(b catalog.BookRecord) string {
	if b.IsAvailable() {
		return fmt.Sprintf("%d/%d available", b.AvailableCopies, b.TotalCopies)
	}
	return fmt.Sprintf("0/%d checked out", b.TotalCopies)
}

// NewPrinter returns a printer for locale-formatted counts.
func NewPrinter(tag language.Tag) *message.Printer {
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// CountSummary returns "Showing 12 of 1,204 books" using p's digit grouping.
func CountSummary(p *message.Printer, matched, total int) string {
	noun := "books"
	if total == 1 {
		noun = "book"
	}
	return p.Sprintf("Showing %d of %d %s", matched, total, noun)
}
