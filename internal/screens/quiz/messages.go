package quiz

import (
	"github.com/danang/kuiskata/internal/history"
	engine "github.com/danang/kuiskata/internal/quiz"
)

// roundReadyMsg is sent when the vocabulary has loaded and the round's
// questions are generated.
type roundReadyMsg struct {
	Session *engine.Session
	Err     error
}

// dwellDoneMsg is sent when the answer reveal period ends. Seq matches
// the submission that scheduled it; a stale Seq means the round moved on
// (or was abandoned) and the message is dropped.
type dwellDoneMsg struct {
	Seq int
}

// roundSavedMsg is sent after a finished round has been summarized and
// written to history. SaveErr is non-nil when persistence failed; the
// summary is still shown.
type roundSavedMsg struct {
	Result  history.Result
	SaveErr error
}
