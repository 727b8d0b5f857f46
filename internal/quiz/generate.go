package quiz

import (
	"errors"
	"math/rand"

	"github.com/danang/kuiskata/internal/vocab"
)

// OptionCount is the number of options per question, one correct plus
// three distractors.
const OptionCount = 4

// maxDistractorDraws bounds the random draws per question before falling
// back to a linear scan of the pool.
const maxDistractorDraws = 64

// ErrInsufficientPool means the pool has fewer distinct English words
// than a single question needs for its options.
var ErrInsufficientPool = errors.New("quiz: pool too small to build question options")

// Generator builds quiz rounds from a vocabulary pool. The random source
// is injected so rounds are reproducible under test.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with the given value.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewGeneratorRand returns a Generator using the given random source.
func NewGeneratorRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds count questions from pool. Each question's correct
// entry is drawn without replacement, so no word is asked twice in one
// round. Distractors come from the whole pool and are unique by English
// word within a question, but may repeat across questions.
//
// When count exceeds the pool size the round shrinks to one question per
// pool entry. The returned slice's length is the round's real size.
func (g *Generator) Generate(pool []vocab.Entry, count int) ([]Question, error) {
	if distinctEnglish(pool) < OptionCount {
		return nil, ErrInsufficientPool
	}
	if count > len(pool) {
		count = len(pool)
	}
	if count <= 0 {
		return nil, ErrInsufficientPool
	}

	order := g.rng.Perm(len(pool))
	questions := make([]Question, 0, count)
	for _, idx := range order[:count] {
		q, err := g.buildQuestion(pool, pool[idx])
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (g *Generator) buildQuestion(pool []vocab.Entry, correct vocab.Entry) (Question, error) {
	opts := make([]vocab.Entry, 0, OptionCount)
	opts = append(opts, correct)
	seen := map[string]struct{}{correct.English: {}}

	for draws := 0; len(opts) < OptionCount && draws < maxDistractorDraws; draws++ {
		cand := pool[g.rng.Intn(len(pool))]
		if _, dup := seen[cand.English]; dup {
			continue
		}
		seen[cand.English] = struct{}{}
		opts = append(opts, cand)
	}

	// Unlucky draw streak on a small pool: finish deterministically.
	for i := 0; len(opts) < OptionCount && i < len(pool); i++ {
		cand := pool[i]
		if _, dup := seen[cand.English]; dup {
			continue
		}
		seen[cand.English] = struct{}{}
		opts = append(opts, cand)
	}
	if len(opts) < OptionCount {
		return Question{}, ErrInsufficientPool
	}

	g.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return Question{Prompt: correct, Options: opts}, nil
}

func distinctEnglish(pool []vocab.Entry) int {
	seen := make(map[string]struct{}, len(pool))
	for _, e := range pool {
		seen[e.English] = struct{}{}
	}
	return len(seen)
}
