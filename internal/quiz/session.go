package quiz

import (
	"errors"
	"time"
)

// DwellInterval is how long the reveal colors stay on screen after an
// answer before the round advances to the next question.
const DwellInterval = 1200 * time.Millisecond

// ErrNoQuestions means a session was started with an empty question list.
var ErrNoQuestions = errors.New("quiz: session needs at least one question")

// State is the lifecycle of a session.
type State int

const (
	StateInProgress State = iota
	StateFinished
	// StateAbandoned means the player quit mid-round. An abandoned
	// session records nothing.
	StateAbandoned
)

// Answer is one recorded response.
type Answer struct {
	Question Question
	Chosen   int
	Correct  bool
}

// Session walks a player through a generated round one question at a
// time. Each question takes at most one answer; repeated submissions for
// the same question are ignored.
type Session struct {
	Questions []Question
	Index     int
	Log       []Answer
	State     State
}

// NewSession starts a round over the given questions.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{Questions: questions}, nil
}

// Current returns the question the session is waiting on. ok is false
// once the session has left StateInProgress.
func (s *Session) Current() (Question, bool) {
	if s.State != StateInProgress {
		return Question{}, false
	}
	return s.Questions[s.Index], true
}

// Answered reports whether the current question already has an answer
// recorded. While true the session is dwelling on the reveal and
// further submissions are dropped.
func (s *Session) Answered() bool {
	return len(s.Log) > s.Index
}

// Submit records the chosen option for the current question. The second
// return is false when nothing was recorded: the session is not in
// progress, the question was already answered, or chosen is out of range.
func (s *Session) Submit(chosen int) (Answer, bool) {
	if s.State != StateInProgress || s.Answered() {
		return Answer{}, false
	}
	q := s.Questions[s.Index]
	if chosen < 0 || chosen >= len(q.Options) {
		return Answer{}, false
	}
	a := Answer{Question: q, Chosen: chosen, Correct: q.IsCorrect(chosen)}
	s.Log = append(s.Log, a)
	return a, true
}

// Advance moves to the next question, or finishes the session after the
// last one. It does nothing until the current question is answered.
func (s *Session) Advance() {
	if s.State != StateInProgress || !s.Answered() {
		return
	}
	if s.Index+1 >= len(s.Questions) {
		s.State = StateFinished
		return
	}
	s.Index++
}

// Abandon ends the session without finishing it. Nothing is persisted
// and any pending advance must be dropped by the caller.
func (s *Session) Abandon() {
	if s.State != StateInProgress {
		return
	}
	s.State = StateAbandoned
}

// Score returns the number of correct answers recorded so far and the
// round size.
func (s *Session) Score() (correct, total int) {
	for _, a := range s.Log {
		if a.Correct {
			correct++
		}
	}
	return correct, len(s.Questions)
}
