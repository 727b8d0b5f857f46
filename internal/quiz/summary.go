package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/danang/kuiskata/internal/history"
)

// ErrNotFinished is returned when summarizing a session that has not
// reached StateFinished.
var ErrNotFinished = errors.New("quiz: session not finished")

// Summarize turns a finished session into a persistable result. Each
// call mints a fresh ID and timestamp; the rest is computed purely from
// the answer log.
func Summarize(s *Session, level Level) (history.Result, error) {
	if s.State != StateFinished {
		return history.Result{}, ErrNotFinished
	}

	r := history.Result{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Level:     level.String(),
		Total:     len(s.Questions),
	}
	for _, a := range s.Log {
		if a.Correct {
			r.Correct++
			continue
		}
		miss := history.Miss{
			English: a.Question.Prompt.English,
			Correct: a.Question.Prompt.Indonesia,
		}
		if a.Chosen >= 0 && a.Chosen < len(a.Question.Options) {
			miss.Answered = a.Question.Options[a.Chosen].Indonesia
		}
		r.Misses = append(r.Misses, miss)
	}
	return r, nil
}
