package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/danang/kuiskata/internal/screen"
)

type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string               { return s.name }
func (s *stubScreen) Title() string                               { return s.name }

func TestRouter_PushPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	second := &stubScreen{name: "second"}
	r.Update(PushScreenMsg{Screen: second})
	if r.Depth() != 2 {
		t.Fatalf("Depth after push = %d, want 2", r.Depth())
	}
	if !second.inited {
		t.Error("pushed screen was not initialized")
	}
	if r.Active() != second {
		t.Error("Active() is not the pushed screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Error("Active() after pop is not home")
	}
	if !home.inited {
		t.Error("exposed screen was not re-initialized on pop")
	}
}

func TestRouter_PopNeverEmpties(t *testing.T) {
	r := New(&stubScreen{name: "home"})
	r.Update(PopScreenMsg{})
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("Depth = %d after popping the root, want 1", r.Depth())
	}
}

func TestRouter_Replace(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "quiz"}})

	summary := &stubScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 2 {
		t.Fatalf("Depth after replace = %d, want 2", r.Depth())
	}
	if r.Active() != summary {
		t.Fatal("Active() is not the replacement screen")
	}
	if !summary.inited {
		t.Error("replacement screen was not initialized")
	}

	// One pop lands back on home, not on the replaced screen.
	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Error("Active() after pop is not home")
	}
}
