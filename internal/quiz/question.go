package quiz

import "github.com/danang/kuiskata/internal/vocab"

// Question asks for the Indonesian translation of an English word.
// Options always contains the correct entry plus distractors, in
// shuffled order.
type Question struct {
	Prompt  vocab.Entry
	Options []vocab.Entry
}

// CorrectIndex returns the position of the correct option. Answers are
// matched on the Indonesian text, the same value shown to the player.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt.Indonesia == q.Prompt.Indonesia {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether choosing option i answers the question.
func (q Question) IsCorrect(i int) bool {
	if i < 0 || i >= len(q.Options) {
		return false
	}
	return q.Options[i].Indonesia == q.Prompt.Indonesia
}
