package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/danang/kuiskata/internal/history"
	"github.com/danang/kuiskata/internal/router"
	"github.com/danang/kuiskata/internal/screen"
	"github.com/danang/kuiskata/internal/screens/catalog"
	historyscreen "github.com/danang/kuiskata/internal/screens/history"
	"github.com/danang/kuiskata/internal/screens/levels"
	quizscreen "github.com/danang/kuiskata/internal/screens/quiz"
	"github.com/danang/kuiskata/internal/ui/components"
	"github.com/danang/kuiskata/internal/ui/theme"
)

// statsLoadedMsg carries the aggregates shown under the title.
type statsLoadedMsg struct {
	Stats history.Stats
	Err   error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu   components.Menu
	repo   history.Repo
	stats  history.Stats
	loaded bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with navigation into the quiz, catalog
// and history screens.
func New(loadVocab quizscreen.LoadVocabFunc, repo history.Repo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "MULAI KUIS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: levels.New(loadVocab, repo)}
			}
		}},
		{Label: "KOSAKATA", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: catalog.New(catalog.LoadFunc(loadVocab))}
			}
		}},
		{Label: "RIWAYAT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(repo)}
			}
		}},
		{Label: "KELUAR", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		repo: repo,
	}
}

// Init loads history aggregates in the background.
func (h *HomeScreen) Init() tea.Cmd {
	repo := h.repo
	return func() tea.Msg {
		results, _, err := repo.Load(context.Background())
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Stats: history.Aggregate(results)}
	}
}

func (h *HomeScreen) Title() string {
	return "Beranda"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			h.stats = msg.Stats
			h.loaded = true
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("KuisKata"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Kuis kosakata Inggris - Indonesia"))
	b.WriteString("\n\n")

	if h.loaded && h.stats.TotalQuizzes > 0 {
		statsLine := fmt.Sprintf("%d kuis   %d kata dijawab   rata-rata %d%%",
			h.stats.TotalQuizzes, h.stats.TotalWords, h.stats.AverageScore)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(statsLine))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}
