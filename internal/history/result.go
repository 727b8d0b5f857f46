package history

import (
	"math"
	"time"
)

// Miss is one wrongly answered word in a finished round, kept so the
// summary and history screens can show what the right answer was.
type Miss struct {
	English  string `json:"english"`
	Correct  string `json:"correctIndonesia"`
	Answered string `json:"answeredIndonesia"`
}

// Result is the persisted record of one finished round.
type Result struct {
	ID        string
	CreatedAt time.Time
	Level     string
	Correct   int
	Total     int
	Misses    []Miss
}

// Incorrect returns the number of wrong answers.
func (r Result) Incorrect() int {
	return r.Total - r.Correct
}

// Percent returns the score as a rounded percentage. A round with no
// questions scores zero.
func (r Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(r.Correct) / float64(r.Total) * 100))
}
