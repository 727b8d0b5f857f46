package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/danang/kuiskata/internal/ui/components"
	"github.com/danang/kuiskata/internal/ui/layout"
	"github.com/danang/kuiskata/internal/ui/theme"
)

type questionView struct {
	Prompt   string
	Options  components.OptionList
	Number   int
	Total    int
	Correct  int
	Answered int
	Feedback string
	WasRight bool
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Menyiapkan soal...")
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\nTidak bisa memulai kuis:\n%s", msg))
}

func renderQuitConfirm(width int) string {
	box := theme.Card.Render(
		theme.Body.Render("Keluar dari kuis ini?") + "\n\n" +
			theme.Hint.Render("Jawaban ronde ini tidak akan disimpan.") + "\n\n" +
			theme.Selected.Render("Y") + theme.Body.Render(" ya    ") +
			theme.Selected.Render("N") + theme.Body.Render(" tidak"))
	return "\n\n" + layout.Center(width, box)
}

func renderQuestion(width int, v questionView) string {
	var b strings.Builder

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}
	progress := components.NewProgressBar(
		fmt.Sprintf("Soal %d/%d", v.Number, v.Total),
		float64(v.Answered)/float64(v.Total),
		false,
		barWidth,
	)
	b.WriteString(layout.Center(width, progress.View()))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Benar: %d", v.Correct))))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Apa arti kata ini?")))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(v.Prompt)))
	b.WriteString("\n\n")

	for _, line := range strings.Split(strings.TrimRight(v.Options.View(), "\n"), "\n") {
		b.WriteString(layout.Center(width, line))
		b.WriteString("\n")
	}

	if v.Feedback != "" {
		style := theme.Incorrect
		if v.WasRight {
			style = theme.Correct
		}
		b.WriteString("\n")
		b.WriteString(layout.Center(width, style.Render(v.Feedback)))
		b.WriteString("\n")
	}

	return b.String()
}
