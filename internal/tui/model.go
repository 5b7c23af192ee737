// Package tui implements the interactive doc browser used by `ad browse`.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/render"
	"github.com/mkrogh/annodoc/internal/styles"
)

// kindFilter selects which entries the list shows.
type kindFilter int

const (
	kindFilterAll kindFilter = iota
	kindFilterDoc
	kindFilterInit
)

func (f kindFilter) String() string {
	switch f {
	case kindFilterDoc:
		return "doc"
	case kindFilterInit:
		return "init"
	default:
		return "all"
	}
}

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	listStyle     = lipgloss.NewStyle().PaddingRight(2)
	helpStyle     = styles.Dim
)

// Model is the bubbletea model for the doc browser.
type Model struct {
	entries []docstore.Entry
	filter  kindFilter
	cursor  int

	width  int
	height int

	detail viewport.Model
	ready  bool
}

// NewModel creates a browser over the given entries. Entries should already
// be sorted by location.
func NewModel(entries []docstore.Entry) Model {
	return Model{entries: entries}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail = viewport.New(detailWidth(msg.Width), msg.Height-2)
		m.ready = true
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.cursor = moveCursor(m.cursor, -1, len(m.visible()))
			m.refreshDetail()
		case "down", "j":
			m.cursor = moveCursor(m.cursor, 1, len(m.visible()))
			m.refreshDetail()
		case "f":
			m.filter = nextFilter(m.filter)
			m.cursor = 0
			m.refreshDetail()
		default:
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	visible := m.visible()
	var list strings.Builder
	for i, e := range visible {
		line := fmt.Sprintf("%s %s", styles.KindBadge(e.Kind), e.ID)
		if i == m.cursor {
			line = selectedStyle.Render("> " + e.ID + " ")
		}
		list.WriteString(line + "\n")
	}
	if len(visible) == 0 {
		list.WriteString(helpStyle.Render("no entries") + "\n")
	}

	left := listStyle.Width(listWidth(m.width)).Render(list.String())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, m.detail.View())
	help := helpStyle.Render(fmt.Sprintf("j/k move · f filter (%s) · q quit", m.filter))

	return body + "\n" + help
}

func (m *Model) refreshDetail() {
	if !m.ready {
		return
	}
	visible := m.visible()
	if len(visible) == 0 {
		m.detail.SetContent("")
		return
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	content := render.Terminal(visible[m.cursor])
	m.detail.SetContent(ansi.Hardwrap(content, m.detail.Width, true))
}

func (m Model) visible() []docstore.Entry {
	return applyKindFilter(m.entries, m.filter)
}

// applyKindFilter returns the entries matching the filter.
func applyKindFilter(entries []docstore.Entry, f kindFilter) []docstore.Entry {
	if f == kindFilterAll {
		return entries
	}
	want := f.String()
	out := make([]docstore.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == want {
			out = append(out, e)
		}
	}
	return out
}

func nextFilter(f kindFilter) kindFilter {
	switch f {
	case kindFilterAll:
		return kindFilterDoc
	case kindFilterDoc:
		return kindFilterInit
	default:
		return kindFilterAll
	}
}

// moveCursor clamps cursor movement to [0, n).
func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	next := cursor + delta
	if next < 0 {
		return 0
	}
	if next >= n {
		return n - 1
	}
	return next
}

func listWidth(total int) int {
	w := total / 3
	if w < 24 {
		w = 24
	}
	return w
}

func detailWidth(total int) int {
	w := total - listWidth(total) - 2
	if w < 20 {
		w = 20
	}
	return w
}
