package levels

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/danang/kuiskata/internal/history"
	engine "github.com/danang/kuiskata/internal/quiz"
	"github.com/danang/kuiskata/internal/router"
	"github.com/danang/kuiskata/internal/screen"
	quizscreen "github.com/danang/kuiskata/internal/screens/quiz"
	"github.com/danang/kuiskata/internal/ui/components"
	"github.com/danang/kuiskata/internal/ui/layout"
	"github.com/danang/kuiskata/internal/ui/theme"
)

// LevelsScreen lets the player pick a difficulty before starting a round.
type LevelsScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)

func levelDetail(l engine.Level) string {
	start, end, count := l.Bounds()
	return fmt.Sprintf("%d soal dari kata #%d sampai #%d", count, start+1, end)
}

// New creates the level picker.
func New(loadVocab quizscreen.LoadVocabFunc, repo history.Repo) *LevelsScreen {
	levels := []struct {
		label string
		level engine.Level
	}{
		{"Kilat", engine.LevelQuick},
		{"Mudah", engine.LevelEasy},
		{"Sedang", engine.LevelMedium},
		{"Sulit", engine.LevelHard},
	}

	items := make([]components.MenuItem, 0, len(levels))
	for _, lv := range levels {
		level := lv.level
		items = append(items, components.MenuItem{
			Label:  lv.label,
			Detail: levelDetail(level),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(level, loadVocab, repo),
					}
				}
			},
		})
	}

	return &LevelsScreen{menu: components.NewMenu(items)}
}

func (s *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelsScreen) Title() string {
	return "Pilih Level"
}

func (s *LevelsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LevelsScreen) View(width, height int) string {
	header := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSeberapa jauh kosakatamu?\n")

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())
	return header + "\n" + menu
}
