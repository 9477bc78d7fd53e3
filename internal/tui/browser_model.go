package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/rshade/bookshelf/internal/browser"
	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/logging"
	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/query"
	listview "github.com/rshade/bookshelf/internal/tui/list"
)

// Rows of the list view taken by the header, criteria, pager and help.
const (
	chromeHeight  = 9
	minListHeight = 3
)

// CatalogLoadedMsg carries the result of the catalog load.
type CatalogLoadedMsg struct {
	Records []catalog.BookRecord
	Err     error
}

// LoadCatalogCmd runs load off the update loop and reports the outcome.
func LoadCatalogCmd(ctx context.Context, load browser.LoadFunc) tea.Cmd {
	return func() tea.Msg {
		records, err := load(ctx)
		return CatalogLoadedMsg{Records: records, Err: err}
	}
}

// BrowserModel is the Bubble Tea model of the interactive catalog browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowserModel struct {
	ctx     context.Context
	session *browser.Session
	load    browser.LoadFunc
	printer *message.Printer

	state  ViewState
	err    error
	page   pagination.Page[catalog.BookRecord]
	facets browser.Facets

	list       *listview.PageList[catalog.BookRecord]
	textInput  textinput.Model
	showSearch bool

	loadingState *LoadingState

	width  int
	height int
}

// NewBrowserModel creates a browser over session. When the session is still
// loading, Init runs load and the model shows a spinner until it returns.
func NewBrowserModel(
	ctx context.Context,
	session *browser.Session,
	load browser.LoadFunc,
	printer *message.Printer,
) BrowserModel {
	m := BrowserModel{
		ctx:          ctx,
		session:      session,
		load:         load,
		printer:      printer,
		state:        ViewStateLoading,
		textInput:    newTextInput(),
		loadingState: NewLoadingState(),
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.list = listview.New[catalog.BookRecord](nil, m.listHeight(), renderBookRow)

	switch session.State() {
	case browser.StateReady:
		m = m.enterList()
	case browser.StateFailed:
		m.state = ViewStateError
		m.err = session.Err()
	case browser.StateLoading:
	}
	return m
}

// WithLoadingMessage sets the text shown next to the spinner while loading.
func (m BrowserModel) WithLoadingMessage(msg string) BrowserModel {
	m.loadingState.SetMessage(msg)
	return m
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "title or author"
	ti.Prompt = "Search: "
	ti.CharLimit = 120
	return ti
}

// Init starts the spinner and the catalog load (Bubble Tea interface).
func (m BrowserModel) Init() tea.Cmd {
	if m.state != ViewStateLoading || m.load == nil {
		return nil
	}
	return tea.Batch(m.loadingState.Init(), LoadCatalogCmd(m.ctx, m.load))
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = max(m.width-len(m.textInput.Prompt)-borderPadding, 0)
		m.list.SetHeight(m.listHeight())
		return m, nil

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg), nil

	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		return m, m.loadingState.Update(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m BrowserModel) handleCatalogLoaded(msg CatalogLoadedMsg) BrowserModel {
	log := logging.FromContext(m.ctx)

	if msg.Err != nil {
		m.session.Fail(msg.Err)
		return m.fail(msg.Err)
	}
	if err := m.session.SetRecords(msg.Records); err != nil {
		return m.fail(err)
	}

	log.Debug().Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "catalog_loaded").
		Int("records", len(msg.Records)).
		Msg("catalog loaded into browser")
	return m.enterList()
}

func (m BrowserModel) enterList() BrowserModel {
	facets, err := m.session.Facets()
	if err != nil {
		return m.fail(err)
	}
	m.facets = facets
	m.state = ViewStateList
	return m.refresh()
}

func (m BrowserModel) fail(err error) BrowserModel {
	logging.FromContext(m.ctx).Error().Ctx(m.ctx).
		Str("component", "tui").
		Err(err).
		Msg("browser stopped on error")
	m.state = ViewStateError
	m.err = err
	return m
}

func (m BrowserModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateList:
		if m.showSearch {
			return m.handleSearchKeypress(msg)
		}
		return m.handleListKeypress(msg)
	case ViewStateLoading, ViewStateError:
		if msg.String() == keyQuit || msg.String() == keyEsc {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	case ViewStateQuitting:
	}
	return m, nil
}

// handleSearchKeypress feeds the search box; every edit re-runs the query.
func (m BrowserModel) handleSearchKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		return m.clearSearch(), nil
	case keyEnter:
		m.showSearch = false
		m.textInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	text := m.textInput.Value()
	if text == m.session.Criteria().SearchText {
		return m, cmd
	}
	m = m.updateCriteria(func(c query.Criteria) query.Criteria {
		c.SearchText = text
		return c
	})
	return m, cmd
}

//nolint:cyclop,funlen // One branch per key binding.
func (m BrowserModel) handleListKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case keyQuit:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keySlash:
		m.showSearch = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.session.Criteria().SearchText != "" {
			return m.clearSearch(), nil
		}
		m.list.CollapseAll()
		return m, nil
	case keyGenre, keyGenreBack:
		return m.cycleGenre(cycleDelta(key == keyGenre)), nil
	case keyAge, keyAgeBack:
		return m.cycleAge(cycleDelta(key == keyAge)), nil
	case keyAvailable:
		return m.updateCriteria(func(c query.Criteria) query.Criteria {
			c.AvailableOnly = !c.AvailableOnly
			return c
		}), nil
	case keySort, keySortBack:
		return m.updateCriteria(func(c query.Criteria) query.Criteria {
			if key == keySort {
				c.Sort = c.Sort.Next()
			} else {
				c.Sort = c.Sort.Prev()
			}
			return c
		}), nil
	case keyReset:
		m.textInput.SetValue("")
		if err := m.session.Reset(); err != nil {
			return m.fail(err), nil
		}
		return m.refresh(), nil
	case keyLeft, keyPrevVim:
		return m.navigate(m.session.Prev), nil
	case keyRight, keyNextVim:
		return m.navigate(m.session.Next), nil
	case keyHome:
		return m.navigate(func() (pagination.Page[catalog.BookRecord], error) {
			return m.session.GoTo(pagination.DefaultPage)
		}), nil
	case keyEnd:
		return m.navigate(m.session.Last), nil
	}

	if n, ok := pageJump(msg); ok {
		return m.navigate(func() (pagination.Page[catalog.BookRecord], error) {
			return m.session.GoTo(n)
		}), nil
	}

	m.list.Update(msg)
	return m, nil
}

func cycleDelta(forward bool) int {
	if forward {
		return 1
	}
	return -1
}

func pageJump(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < keyMinPageJump || r > keyMaxPageJump {
		return 0, false
	}
	return int(r-keyMinPageJump) + 1, true
}

func (m BrowserModel) clearSearch() BrowserModel {
	m.showSearch = false
	m.textInput.Blur()
	m.textInput.SetValue("")
	return m.updateCriteria(func(c query.Criteria) query.Criteria {
		c.SearchText = ""
		return c
	})
}

func (m BrowserModel) cycleGenre(delta int) BrowserModel {
	return m.updateCriteria(func(c query.Criteria) query.Criteria {
		c.Genre = cycleFacet(m.facets.Genres, c.Genre, delta)
		return c
	})
}

func (m BrowserModel) cycleAge(delta int) BrowserModel {
	return m.updateCriteria(func(c query.Criteria) query.Criteria {
		c.AgeRating = cycleFacet(m.facets.AgeRatings, c.AgeRating, delta)
		return c
	})
}

// cycleFacet steps through "all" followed by values, wrapping at both ends.
func cycleFacet(values []string, current string, delta int) string {
	options := make([]string, 0, len(values)+1)
	options = append(options, query.AllValue)
	options = append(options, values...)

	idx := 0
	for i, v := range options {
		if v == current {
			idx = i
			break
		}
	}
	n := len(options)
	next := options[((idx+delta)%n+n)%n]
	if next == query.AllValue {
		return ""
	}
	return next
}

func (m BrowserModel) updateCriteria(change func(query.Criteria) query.Criteria) BrowserModel {
	if err := m.session.Update(change); err != nil {
		return m.fail(err)
	}
	return m.refresh()
}

func (m BrowserModel) navigate(move func() (pagination.Page[catalog.BookRecord], error)) BrowserModel {
	page, err := move()
	if err != nil {
		return m.fail(err)
	}
	return m.setPage(page)
}

func (m BrowserModel) refresh() BrowserModel {
	page, err := m.session.Current()
	if err != nil {
		return m.fail(err)
	}
	return m.setPage(page)
}

func (m BrowserModel) setPage(page pagination.Page[catalog.BookRecord]) BrowserModel {
	m.page = page
	m.list.SetItems(page.Items)
	return m
}

func (m BrowserModel) listHeight() int {
	return max(m.height-chromeHeight, minListHeight)
}

// State returns the current view state.
func (m BrowserModel) State() ViewState {
	return m.state
}

// Page returns the page being shown.
func (m BrowserModel) Page() pagination.Page[catalog.BookRecord] {
	return m.page
}

// Err returns the load error shown by the error view.
func (m BrowserModel) Err() error {
	return m.err
}
