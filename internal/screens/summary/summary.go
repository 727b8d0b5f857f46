package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/danang/kuiskata/internal/history"
	"github.com/danang/kuiskata/internal/router"
	"github.com/danang/kuiskata/internal/screen"
	"github.com/danang/kuiskata/internal/ui/layout"
	"github.com/danang/kuiskata/internal/ui/theme"
)

// RestartFunc builds a fresh quiz screen at the same level. Supplied by
// the quiz screen so this package does not import it back.
type RestartFunc func() screen.Screen

// SummaryScreen shows the outcome of a finished round.
type SummaryScreen struct {
	result  history.Result
	saveErr error
	restart RestartFunc
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. saveErr, when non-nil, is surfaced as a
// warning; the round's outcome is still shown.
func New(result history.Result, saveErr error, restart RestartFunc) *SummaryScreen {
	return &SummaryScreen{
		result:  result,
		saveErr: saveErr,
		restart: restart,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Hasil"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Main lagi"},
		{Key: "Enter/Esc", Description: "Menu utama"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R":
		if s.restart != nil {
			next := s.restart()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Kuis selesai!"))
	b.WriteString("\n\n")

	headline := fmt.Sprintf("Skor: %d/%d (%d%%)", r.Correct, r.Total, r.Percent())
	style := theme.Correct
	if r.Percent() < 60 {
		style = theme.Incorrect
	}
	b.WriteString(layout.Center(width, style.Render(headline)))
	b.WriteString("\n\n")

	if s.saveErr != nil {
		b.WriteString(layout.Center(width, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Riwayat tidak tersimpan: %s", s.saveErr))))
		b.WriteString("\n\n")
	}

	if len(r.Misses) == 0 {
		b.WriteString(layout.Center(width, theme.Hint.Render("Semua jawaban benar. Hebat!")))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Kata yang salah")))
	b.WriteString("\n")
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(layout.Center(width, divider))
	b.WriteString("\n\n")

	for _, m := range r.Misses {
		line := lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(fmt.Sprintf("  %s = %s", m.English, m.Correct))
		if m.Answered != "" {
			line += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("  (jawabanmu: %s)", m.Answered))
		}
		b.WriteString(layout.Center(width, line))
		b.WriteString("\n")
	}

	return b.String()
}
