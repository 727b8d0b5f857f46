package quiz

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/danang/kuiskata/internal/history"
	engine "github.com/danang/kuiskata/internal/quiz"
	"github.com/danang/kuiskata/internal/router"
	"github.com/danang/kuiskata/internal/screens/summary"
	"github.com/danang/kuiskata/internal/vocab"
)

// fakeRepo implements history.Repo for testing.
type fakeRepo struct {
	results []history.Result
}

func (f *fakeRepo) Append(_ context.Context, r history.Result) error {
	f.results = append(f.results, r)
	return nil
}

func (f *fakeRepo) Load(_ context.Context) ([]history.Result, int, error) {
	return f.results, 0, nil
}

func (f *fakeRepo) Clear(_ context.Context) error {
	f.results = nil
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEntries(n int) []vocab.Entry {
	entries := make([]vocab.Entry, n)
	for i := range entries {
		entries[i] = vocab.Entry{
			English:   fmt.Sprintf("word-%d", i),
			Indonesia: fmt.Sprintf("kata-%d", i),
		}
	}
	return entries
}

// readyScreen builds a quiz screen with its round already generated.
func readyScreen(t *testing.T) (*QuizScreen, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	entries := testEntries(12)
	s := New(engine.LevelQuick, func() ([]vocab.Entry, error) { return entries, nil }, repo)

	msg := s.Init()()
	ready, ok := msg.(roundReadyMsg)
	if !ok {
		t.Fatalf("Init produced %T, want roundReadyMsg", msg)
	}
	if ready.Err != nil {
		t.Fatalf("round init: %v", ready.Err)
	}
	s.Update(ready)
	if s.sess == nil {
		t.Fatal("session not set after roundReadyMsg")
	}
	return s, repo
}

func TestQuizScreen_InitFailure(t *testing.T) {
	s := New(engine.LevelQuick, func() ([]vocab.Entry, error) {
		return nil, fmt.Errorf("boom")
	}, &fakeRepo{})

	msg := s.Init()()
	s.Update(msg)
	if s.errMsg == "" {
		t.Error("errMsg empty after failed load")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}

func TestQuizScreen_AnswerStartsDwell(t *testing.T) {
	s, _ := readyScreen(t)

	_, cmd := s.Update(keyPress('1'))
	if cmd == nil {
		t.Fatal("expected dwell timer command after answering")
	}
	if len(s.sess.Log) != 1 {
		t.Errorf("len(Log) = %d, want 1", len(s.sess.Log))
	}
	if !s.options.Revealed {
		t.Error("options not revealed after answering")
	}
}

func TestQuizScreen_RepeatAnswerIgnored(t *testing.T) {
	s, _ := readyScreen(t)

	s.Update(keyPress('1'))
	_, cmd := s.Update(keyPress('2'))
	if cmd != nil {
		t.Error("second answer during reveal produced a command")
	}
	if len(s.sess.Log) != 1 {
		t.Errorf("len(Log) = %d after double answer, want 1", len(s.sess.Log))
	}
	if s.sess.Log[0].Chosen != 0 {
		t.Errorf("recorded choice = %d, want 0 (first answer wins)", s.sess.Log[0].Chosen)
	}
}

func TestQuizScreen_DwellAdvances(t *testing.T) {
	s, _ := readyScreen(t)

	s.Update(keyPress('1'))
	s.Update(dwellDoneMsg{Seq: s.seq})

	if s.sess.Index != 1 {
		t.Errorf("Index = %d after dwell, want 1", s.sess.Index)
	}
	if s.options.Revealed {
		t.Error("options still revealed after advancing")
	}
}

func TestQuizScreen_StaleDwellIgnored(t *testing.T) {
	s, _ := readyScreen(t)

	s.Update(keyPress('1'))
	s.Update(dwellDoneMsg{Seq: s.seq - 1})

	if s.sess.Index != 0 {
		t.Errorf("Index = %d after stale dwell, want 0", s.sess.Index)
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s, _ := readyScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation after esc")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("quit confirmation not dismissed by n")
	}
	if s.sess.State != engine.StateInProgress {
		t.Errorf("State = %v after dismissing quit, want StateInProgress", s.sess.State)
	}
}

func TestQuizScreen_AbandonRecordsNothing(t *testing.T) {
	s, repo := readyScreen(t)

	s.Update(keyPress('1'))
	pendingSeq := s.seq

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command after confirming quit")
	}
	if s.sess.State != engine.StateAbandoned {
		t.Fatalf("State = %v, want StateAbandoned", s.sess.State)
	}

	// The dwell timer from the answered question fires after the quit.
	s.Update(dwellDoneMsg{Seq: pendingSeq})
	if s.sess.State != engine.StateAbandoned {
		t.Error("late dwell timer resurrected an abandoned session")
	}
	if len(repo.results) != 0 {
		t.Errorf("abandoned round persisted %d results, want 0", len(repo.results))
	}
}

func TestQuizScreen_FinishPersistsAndShowsSummary(t *testing.T) {
	s, repo := readyScreen(t)

	_, total := s.sess.Score()
	var finishCmd tea.Cmd
	for i := 0; i < total; i++ {
		s.Update(keyPress('1'))
		_, finishCmd = s.Update(dwellDoneMsg{Seq: s.seq})
	}

	if s.sess.State != engine.StateFinished {
		t.Fatalf("State = %v after last question, want StateFinished", s.sess.State)
	}
	if finishCmd == nil {
		t.Fatal("no finish command after the last dwell")
	}

	saved, ok := finishCmd().(roundSavedMsg)
	if !ok {
		t.Fatalf("finish command produced %T, want roundSavedMsg", finishCmd())
	}
	if saved.SaveErr != nil {
		t.Fatalf("save error: %v", saved.SaveErr)
	}
	if len(repo.results) != 1 {
		t.Fatalf("persisted %d results, want 1", len(repo.results))
	}
	if repo.results[0].Total != total {
		t.Errorf("persisted Total = %d, want %d", repo.results[0].Total, total)
	}

	_, cmd := s.Update(saved)
	if cmd == nil {
		t.Fatal("no navigation command after roundSavedMsg")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("navigation msg is %T, want ReplaceScreenMsg", cmd())
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement screen is %T, want *summary.SummaryScreen", replace.Screen)
	}
}

func TestQuizScreen_ViewStates(t *testing.T) {
	s, _ := readyScreen(t)

	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}

	s.confirmQuit = true
	if s.View(80, 24) == "" {
		t.Error("expected non-empty quit confirm view")
	}
}
