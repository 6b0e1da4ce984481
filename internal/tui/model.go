// Package tui is the interactive terminal host for the catalog: a search
// field, a category selector, a card grid and a detail overlay.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pokedex/internal/catalog"
	"pokedex/internal/present"
)

// LoadFunc produces the catalog. It runs once, off the UI loop.
type LoadFunc func(ctx context.Context) (*catalog.Catalog, error)

type focus int

const (
	focusSearch focus = iota
	focusGrid
)

// Screen rows above the grid: title, search, category bar, spacer.
const (
	searchRow   = 1
	categoryRow = 2
	gridTop     = 4
	footerLines = 1
)

type loadedMsg struct {
	cat *catalog.Catalog
}

type loadFailedMsg struct {
	err error
}

var _ present.Surface = (*Model)(nil)

type Model struct {
	ctx    context.Context
	load   LoadFunc
	logger *zap.Logger
	styles Styles

	loading bool
	failed  bool
	spin    spinner.Model
	search  textinput.Model
	grid    viewport.Model
	focus   focus

	ctrl      *present.Controller
	options   []catalog.Option
	optionIdx int

	list         present.Grid
	selected     int
	overlayOpen  bool
	scrollLocked bool
	panel        present.Panel
	overlay      string

	width  int
	height int
}

func New(ctx context.Context, load LoadFunc, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		ctx:     ctx,
		load:    load,
		logger:  logger,
		styles:  DefaultStyles(),
		loading: true,
		spin:    spinner.New(),
		search:  textinput.New(),
		grid:    viewport.New(80, 20),
		focus:   focusSearch,
	}
	m.spin.Spinner = spinner.Dot
	m.search.Placeholder = "Search by name or number..."
	m.search.Prompt = "Search: "
	m.search.CharLimit = 64
	m.search.Focus()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		cat, err := m.load(m.ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{cat: cat}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case loadedMsg:
		m.loading = false
		m.ctrl = present.NewController(msg.cat, m)
		m.options = m.ctrl.Options()
		m.optionIdx = 0
		m.ctrl.Start()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.failed = true
		m.logger.Error("loading catalog", zap.Error(msg.err))
		m.renderGrid()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.ctrl == nil {
		if key == "q" || key == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.overlayOpen {
		if key == "esc" {
			m.ctrl.Close(present.CloseEscape)
		}
		return m, nil
	}

	if key == "tab" {
		m.toggleFocus()
		return m, nil
	}

	if m.focus == focusSearch {
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			m.ctrl.SetSearch(m.search.Value())
		}
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "c":
		m.cycleCategory(1)
	case "C":
		m.cycleCategory(-1)
	case "left":
		m.moveSelection(-1)
	case "right":
		m.moveSelection(1)
	case "up":
		m.moveSelection(-m.columns())
	case "down":
		m.moveSelection(m.columns())
	case "enter":
		if !m.list.Empty && m.selected < len(m.list.Cards) {
			m.ctrl.Open(m.list.Cards[m.selected].ID)
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.ctrl == nil {
		return
	}

	if m.overlayOpen {
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
			return
		}
		switch {
		case m.closeButtonRect().contains(msg.X, msg.Y):
			m.ctrl.Close(present.CloseButton)
		case !m.overlayBounds().contains(msg.X, msg.Y):
			m.ctrl.Close(present.CloseBackdrop)
		}
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-1)
	case tea.MouseButtonWheelDown:
		m.scroll(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
		if msg.Y == categoryRow {
			m.cycleCategory(1)
			return
		}
		if msg.Y == searchRow {
			m.setFocus(focusSearch)
			return
		}
		if idx, ok := m.cardAt(msg.X, msg.Y); ok {
			m.selected = idx
			m.ctrl.Open(m.list.Cards[idx].ID)
		}
	}
}

// cardAt hit-tests a screen position against the card grid.
func (m *Model) cardAt(x, y int) (int, bool) {
	if m.list.Empty || y < gridTop || y >= gridTop+m.grid.Height {
		return 0, false
	}
	cols := m.columns()
	col := x / cardWidth
	if col >= cols {
		return 0, false
	}
	row := (y - gridTop + m.grid.YOffset) / cardHeight
	idx := row*cols + col
	if idx < 0 || idx >= len(m.list.Cards) {
		return 0, false
	}
	return idx, true
}

func (m *Model) scroll(lines int) {
	if m.scrollLocked {
		return
	}
	if lines < 0 {
		m.grid.LineUp(-lines)
	} else {
		m.grid.LineDown(lines)
	}
}

func (m *Model) toggleFocus() {
	if m.focus == focusSearch {
		m.setFocus(focusGrid)
	} else {
		m.setFocus(focusSearch)
	}
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
	m.renderGrid()
}

func (m *Model) cycleCategory(step int) {
	if len(m.options) == 0 {
		return
	}
	n := len(m.options)
	m.optionIdx = ((m.optionIdx+step)%n + n) % n
	m.ctrl.SetCategory(m.options[m.optionIdx].Value)
}

func (m *Model) moveSelection(delta int) {
	if m.list.Empty || m.scrollLocked {
		return
	}
	next := m.selected + delta
	if next < 0 || next >= len(m.list.Cards) {
		return
	}
	m.selected = next
	m.ensureVisible()
	m.renderGrid()
}

func (m *Model) ensureVisible() {
	top := (m.selected / m.columns()) * cardHeight
	switch {
	case top < m.grid.YOffset:
		m.grid.SetYOffset(top)
	case top+cardHeight > m.grid.YOffset+m.grid.Height:
		m.grid.SetYOffset(top + cardHeight - m.grid.Height)
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.grid.Width = width
	m.grid.Height = max(1, height-gridTop-footerLines)
	m.search.Width = max(10, width-len(m.search.Prompt)-1)
	if m.overlayOpen {
		m.overlay = m.renderPanel(m.panel)
	}
	m.renderGrid()
}

// ShowList replaces the grid contents and resets selection and scroll.
func (m *Model) ShowList(g present.Grid) {
	m.list = g
	m.selected = 0
	m.grid.GotoTop()
	m.renderGrid()
}

func (m *Model) ShowDetail(p present.Panel) {
	m.panel = p
	m.overlay = m.renderPanel(p)
	m.overlayOpen = true
	m.scrollLocked = true
}

func (m *Model) HideDetail() {
	m.overlayOpen = false
	m.scrollLocked = false
	m.overlay = ""
}

func (m *Model) View() string {
	if m.overlayOpen {
		return m.overlayView()
	}

	status := ""
	switch {
	case m.loading:
		status = m.spin.View() + " Loading..."
	case m.failed:
		status = "unavailable"
	case m.ctrl != nil:
		status = fmt.Sprintf("%d shown", len(m.ctrl.Visible()))
	}

	category := "All Types"
	if m.optionIdx < len(m.options) {
		category = m.options[m.optionIdx].Label
	}

	body := m.grid.View()
	if m.loading {
		body = m.spin.View() + " Loading Pokemon..."
	}

	return m.styles.Title.Render("Pokedex") + "  " + m.styles.Muted.Render(status) + "\n" +
		m.search.View() + "\n" +
		"Type: " + m.styles.Category.Render("‹ "+category+" ›") + "\n" +
		"\n" +
		body + "\n" +
		m.styles.Muted.Render("tab focus • c/C type • enter open • esc close • q quit")
}

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, load LoadFunc, logger *zap.Logger) error {
	m := New(ctx, load, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
