package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/danang/kuiskata/internal/history"
	engine "github.com/danang/kuiskata/internal/quiz"
	"github.com/danang/kuiskata/internal/router"
	"github.com/danang/kuiskata/internal/screen"
	"github.com/danang/kuiskata/internal/screens/summary"
	"github.com/danang/kuiskata/internal/ui/components"
	"github.com/danang/kuiskata/internal/ui/layout"
	"github.com/danang/kuiskata/internal/vocab"
)

// LoadVocabFunc supplies the vocabulary list a round draws from.
type LoadVocabFunc func() ([]vocab.Entry, error)

// QuizScreen runs one round: it generates the questions, walks them one
// at a time and hands over to the summary screen when the round is done.
type QuizScreen struct {
	level     engine.Level
	loadVocab LoadVocabFunc
	repo      history.Repo

	sess    *engine.Session
	options components.OptionList

	// seq identifies the latest submission's dwell timer. Bumping it
	// cancels any timer still in flight.
	seq         int
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ContextProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given level.
func New(level engine.Level, loadVocab LoadVocabFunc, repo history.Repo) *QuizScreen {
	return &QuizScreen{
		level:     level,
		loadVocab: loadVocab,
		repo:      repo,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.initRound()
}

func (s *QuizScreen) Title() string {
	return "Kuis"
}

func (s *QuizScreen) HeaderContext() string {
	return s.level.String()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit round"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

// initRound loads the vocabulary and generates the round off the UI loop.
func (s *QuizScreen) initRound() tea.Cmd {
	level := s.level
	load := s.loadVocab
	return func() tea.Msg {
		entries, err := load()
		if err != nil {
			return roundReadyMsg{Err: err}
		}

		pool := engine.SelectPool(entries, level)
		gen := engine.NewGenerator(time.Now().UnixNano())
		questions, err := gen.Generate(pool, level.QuestionCount())
		if err != nil {
			return roundReadyMsg{Err: err}
		}

		sess, err := engine.NewSession(questions)
		if err != nil {
			return roundReadyMsg{Err: err}
		}
		return roundReadyMsg{Session: sess}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.sess = msg.Session
		s.resetOptions()
		return s, nil

	case dwellDoneMsg:
		return s.handleDwellDone(msg)

	case roundSavedMsg:
		level := s.level
		load := s.loadVocab
		repo := s.repo
		restart := func() screen.Screen {
			return New(level, load, repo)
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(msg.Result, msg.SaveErr, restart),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// handleDwellDone advances after the reveal, unless the timer is stale.
func (s *QuizScreen) handleDwellDone(msg dwellDoneMsg) (screen.Screen, tea.Cmd) {
	if s.sess == nil || msg.Seq != s.seq {
		return s, nil
	}

	s.sess.Advance()
	if s.sess.State == engine.StateFinished {
		return s, s.finishRound()
	}
	s.resetOptions()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Load failure: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.sess == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "up", "k":
		s.options.MoveUp()
		return s, nil
	case "down", "j":
		s.options.MoveDown()
		return s, nil
	case "enter":
		return s, s.submit(s.options.Cursor)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		return s, s.submit(idx)
	}

	return s, nil
}

// submit records the answer and starts the dwell timer. During the
// reveal the session drops repeat submissions, so mashing keys does
// nothing.
func (s *QuizScreen) submit(choice int) tea.Cmd {
	if _, ok := s.sess.Submit(choice); !ok {
		return nil
	}

	s.options.Reveal(choice)
	s.seq++
	seq := s.seq
	return tea.Tick(engine.DwellInterval, func(time.Time) tea.Msg {
		return dwellDoneMsg{Seq: seq}
	})
}

// abandon ends the round without recording anything.
func (s *QuizScreen) abandon() {
	if s.sess != nil {
		s.sess.Abandon()
	}
	// Invalidate any dwell timer still pending.
	s.seq++
}

// finishRound summarizes the round and appends it to history.
func (s *QuizScreen) finishRound() tea.Cmd {
	sess := s.sess
	level := s.level
	repo := s.repo
	return func() tea.Msg {
		result, err := engine.Summarize(sess, level)
		if err != nil {
			return roundReadyMsg{Err: err}
		}
		saveErr := repo.Append(context.Background(), result)
		return roundSavedMsg{Result: result, SaveErr: saveErr}
	}
}

// resetOptions rebuilds the option list for the current question.
func (s *QuizScreen) resetOptions() {
	q, ok := s.sess.Current()
	if !ok {
		return
	}
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = opt.Indonesia
	}
	s.options = components.NewOptionList(labels, q.CorrectIndex())
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.sess == nil {
		return renderLoading(width)
	}

	q, ok := s.sess.Current()
	if !ok {
		// Between the last answer and the summary handoff.
		return renderLoading(width)
	}

	correct, total := s.sess.Score()
	answered := len(s.sess.Log)

	var feedback string
	if s.sess.Answered() {
		last := s.sess.Log[len(s.sess.Log)-1]
		if last.Correct {
			feedback = "Benar!"
		} else {
			feedback = fmt.Sprintf("Salah. %s berarti %q", q.Prompt.English, q.Prompt.Indonesia)
		}
	}

	return renderQuestion(width, questionView{
		Prompt:   q.Prompt.English,
		Options:  s.options,
		Number:   s.sess.Index + 1,
		Total:    total,
		Correct:  correct,
		Answered: answered,
		Feedback: feedback,
		WasRight: s.sess.Answered() && s.sess.Log[len(s.sess.Log)-1].Correct,
	})
}
