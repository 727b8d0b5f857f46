package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/danang/kuiskata/internal/ui/theme"
)

// OptionList renders the four answer choices of a quiz question. The
// owning screen drives all state: cursor movement, the reveal after an
// answer, and which option was chosen. After Revealed is set the correct
// option turns green, a wrong pick turns red and the rest are dimmed.
type OptionList struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	Revealed     bool
	ChosenIndex  int
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []string, correctIndex int) OptionList {
	return OptionList{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// MoveUp moves the cursor up. Ignored once the reveal is showing.
func (o *OptionList) MoveUp() {
	if o.Revealed {
		return
	}
	if o.Cursor > 0 {
		o.Cursor--
	}
}

// MoveDown moves the cursor down. Ignored once the reveal is showing.
func (o *OptionList) MoveDown() {
	if o.Revealed {
		return
	}
	if o.Cursor < len(o.Options)-1 {
		o.Cursor++
	}
}

// Reveal locks the list and shows the answer colors for chosen.
func (o *OptionList) Reveal(chosen int) {
	o.Revealed = true
	o.ChosenIndex = chosen
}

// View renders the options with 1-based number labels.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case o.Revealed && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Revealed && i == o.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
