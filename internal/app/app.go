package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/danang/kuiskata/internal/history"
	engine "github.com/danang/kuiskata/internal/quiz"
	"github.com/danang/kuiskata/internal/router"
	"github.com/danang/kuiskata/internal/screen"
	"github.com/danang/kuiskata/internal/screens/home"
	quizscreen "github.com/danang/kuiskata/internal/screens/quiz"
	"github.com/danang/kuiskata/internal/ui/layout"
	"github.com/danang/kuiskata/internal/vocab"
)

// Options wires the app's dependencies.
type Options struct {
	History   history.Repo
	LoadVocab func() ([]vocab.Entry, error)

	// StartLevel, when set, skips the menu and opens a round directly.
	StartLevel *engine.Level
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel with the home screen at the bottom of
// the stack, plus an optional quiz screen on top for `kuiskata play`.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.LoadVocab, opts.History)
	r := router.New(homeScreen)
	if opts.StartLevel != nil {
		r.Push(quizscreen.New(*opts.StartLevel, opts.LoadVocab, opts.History))
	}
	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	headerContext := ""
	if active != nil {
		title = active.Title()
		if cp, ok := active.(screen.ContextProvider); ok {
			headerContext = cp.HeaderContext()
		}
	}

	header := layout.RenderHeader(title, headerContext, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
