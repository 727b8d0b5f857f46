package catalog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/danang/kuiskata/internal/router"
	"github.com/danang/kuiskata/internal/screen"
	"github.com/danang/kuiskata/internal/ui/components"
	"github.com/danang/kuiskata/internal/ui/layout"
	"github.com/danang/kuiskata/internal/ui/theme"
	"github.com/danang/kuiskata/internal/vocab"
)

// LoadFunc supplies the vocabulary list to browse.
type LoadFunc func() ([]vocab.Entry, error)

type vocabLoadedMsg struct {
	Entries []vocab.Entry
	Err     error
}

// CatalogScreen is a searchable, paginated browser over the word list.
// The search box has focus by default; tab toggles between typing and
// page navigation.
type CatalogScreen struct {
	load    LoadFunc
	entries []vocab.Entry
	search  components.SearchInput
	page    int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)

// New creates the catalog screen.
func New(load LoadFunc) *CatalogScreen {
	return &CatalogScreen{
		load:   load,
		search: components.NewSearchInput("kata...", 40),
		page:   1,
	}
}

func (s *CatalogScreen) Init() tea.Cmd {
	if s.loaded {
		return nil
	}
	load := s.load
	focus := s.search.Focus()
	return tea.Batch(focus, func() tea.Msg {
		entries, err := load()
		return vocabLoadedMsg{Entries: entries, Err: err}
	})
}

func (s *CatalogScreen) Title() string {
	return "Kosakata"
}

func (s *CatalogScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Halaman"},
	}
	if s.search.Focused() {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Stop mengetik"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Cari"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case vocabLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			if s.search.Focused() {
				s.search.Blur()
			} else {
				return s, s.search.Focus()
			}
			return s, nil
		case "left", "pgup":
			s.page--
			return s, nil
		case "right", "pgdown":
			s.page++
			return s, nil
		}

		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	return s, cmd
}

func (s *CatalogScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Memuat kosakata...")
	}

	filtered := vocab.Filter(s.entries, s.search.Value())
	page := vocab.Paginate(filtered, s.page)
	// The filter may have shrunk the list below the requested page.
	s.page = page.Number

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + s.search.View())
	b.WriteString("\n\n")

	if len(page.Entries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Tidak ada kata yang cocok"))
		return b.String()
	}

	for i, e := range page.Entries {
		num := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%5d.", page.Start+i))
		word := lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(fmt.Sprintf(" %-24s", e.English))
		translation := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(e.Indonesia)
		line := "  " + num + word + translation
		if e.Type != "" {
			line += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("  (" + e.Type + ")")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	pageLine := fmt.Sprintf("Halaman %d/%d   %d kata", page.Number, page.Total, len(filtered))
	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Foreground(theme.TextDim).Render(pageLine)))

	return b.String()
}
