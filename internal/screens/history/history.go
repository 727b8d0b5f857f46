package history

import (
	"context"
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

type historyLoadedMsg struct {
	Results []history.Result
	Skipped int
	Err     error
}

type historyClearedMsg struct {
	Err error
}

// HistoryScreen lists past rounds, newest first, with expandable rows
// showing the words missed in that round.
type HistoryScreen struct {
	repo         history.Repo
	results      []history.Result
	stats        history.Stats
	skipped      int
	selected     int
	expanded     map[int]bool
	loaded       bool
	confirmClear bool
	errMsg       string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen.
func New(repo history.Repo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		results, skipped, err := repo.Load(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Results: results, Skipped: skipped}
	}
}

func (s *HistoryScreen) Title() string {
	return "Riwayat"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirmClear {
		return []layout.KeyHint{
			{Key: "Y", Description: "Hapus semua"},
			{Key: "N", Description: "Batal"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Detail"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "C", Description: "Hapus riwayat"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			// Newest first for display.
			s.results = reversed(msg.Results)
			s.stats = history.Aggregate(msg.Results)
			s.skipped = msg.Skipped
			s.selected = 0
			s.expanded = make(map[int]bool)
		}
		s.loaded = true
		return s, nil

	case historyClearedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.Init()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmClear {
		switch key {
		case "y", "Y":
			s.confirmClear = false
			repo := s.repo
			return s, func() tea.Msg {
				return historyClearedMsg{Err: repo.Clear(context.Background())}
			}
		case "n", "N", "esc":
			s.confirmClear = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.results)-1 {
			s.selected++
		}
	case "enter":
		if len(s.results) > 0 {
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	case "c", "C":
		if len(s.results) > 0 {
			s.confirmClear = true
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Memuat riwayat...")
	}
	if s.confirmClear {
		box := theme.Card.Render(
			theme.Body.Render("Hapus semua riwayat kuis?") + "\n\n" +
				theme.Selected.Render("Y") + theme.Body.Render(" ya    ") +
				theme.Selected.Render("N") + theme.Body.Render(" tidak"))
		return "\n\n" + layout.Center(width, box)
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Belum ada kuis. Ayo mulai!")
	}

	var b strings.Builder
	b.WriteString("\n")

	statsLine := fmt.Sprintf("%d kuis   %d kata dijawab   rata-rata %d%%",
		s.stats.TotalQuizzes, s.stats.TotalWords, s.stats.AverageScore)
	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Foreground(theme.TextDim).Render(statsLine)))
	b.WriteString("\n")
	if s.skipped > 0 {
		b.WriteString(layout.Center(width, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%d catatan rusak dilewati", s.skipped))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, r := range s.results {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-6s  %d/%d  %d%%",
			prefix, r.CreatedAt.Local().Format("02 Jan 2006 15:04"),
			r.Level, r.Correct, r.Total, r.Percent())

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(layout.Center(width, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			if len(r.Misses) == 0 {
				b.WriteString(layout.Center(width, theme.Hint.Render("    Tidak ada kata yang salah")))
				b.WriteString("\n")
			}
			for _, m := range r.Misses {
				missLine := fmt.Sprintf("    %s = %s (jawabanmu: %s)",
					m.English, m.Correct, m.Answered)
				b.WriteString(layout.Center(width, lipgloss.NewStyle().
					Foreground(theme.TextDim).Render(missLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func reversed(results []history.Result) []history.Result {
	out := make([]history.Result, len(results))
	for i, r := range results {
		out[len(results)-1-i] = r
	}
	return out
}
