package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/danang/kuiskata/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput for the catalog search box.
type SearchInput struct {
	Model   textinput.Model
	focused bool
}

// NewSearchInput creates a styled search input.
func NewSearchInput(placeholder string, charLimit int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return SearchInput{Model: ti}
}

// Focus gives the input keyboard focus.
func (s *SearchInput) Focus() tea.Cmd {
	s.focused = true
	return s.Model.Focus()
}

// Blur removes keyboard focus.
func (s *SearchInput) Blur() {
	s.focused = false
	s.Model.Blur()
}

// Focused reports whether the input is receiving keystrokes.
func (s SearchInput) Focused() bool {
	return s.focused
}

// Update handles messages while focused.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input with a search prefix.
func (s SearchInput) View() string {
	prefix := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Cari: ")
	return prefix + s.Model.View()
}

// Value returns the current search term.
func (s SearchInput) Value() string {
	return s.Model.Value()
}
