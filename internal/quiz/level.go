package quiz

import "github.com/danang/kuiskata/internal/vocab"

// Level selects which slice of the frequency-ordered vocabulary list a
// round draws from, and how many questions the round asks.
type Level int

const (
	// LevelQuick is a short warm-up round over the most common words.
	LevelQuick Level = iota
	LevelEasy
	LevelMedium
	LevelHard
)

// ParseLevel maps a level name to a Level. Unknown names fall back to
// LevelQuick rather than erroring, so a mistyped flag still starts a round.
func ParseLevel(s string) Level {
	switch s {
	case "easy":
		return LevelEasy
	case "medium":
		return LevelMedium
	case "hard":
		return LevelHard
	default:
		return LevelQuick
	}
}

func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "easy"
	case LevelMedium:
		return "medium"
	case LevelHard:
		return "hard"
	default:
		return "quick"
	}
}

// Bounds returns the half-open [start, end) slice of the vocabulary list
// this level draws from, and the number of questions it asks.
func (l Level) Bounds() (start, end, count int) {
	switch l {
	case LevelEasy:
		return 0, 200, 200
	case LevelMedium:
		return 200, 700, 500
	case LevelHard:
		return 700, 1700, 1000
	default:
		return 0, 10, 10
	}
}

// QuestionCount is the number of questions a round at this level asks,
// before clamping against the available pool.
func (l Level) QuestionCount() int {
	_, _, count := l.Bounds()
	return count
}

// SelectPool slices the level's band out of the vocabulary list. Both
// bounds are clamped to the list length, so a list shorter than the band
// yields a smaller pool instead of an error.
func SelectPool(entries []vocab.Entry, l Level) []vocab.Entry {
	start, end, _ := l.Bounds()
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}
