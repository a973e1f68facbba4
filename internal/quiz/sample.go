package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/quizzer/internal/bank"
)

// DefaultCount is the size of a question set.
const DefaultCount = 15

// SelectSubset draws count questions uniformly at random without
// replacement from store. When store is smaller than count every question
// is returned, shuffled. count <= 0 selects DefaultCount. A nil rng uses
// the global source. store itself is left untouched.
func SelectSubset(store []bank.Question, count int, rng *rand.Rand) []bank.Question {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	n := len(store)
	k := SetSize(count, n)

	// Partial Fisher-Yates over the index permutation: after step i the
	// first i+1 slots hold a uniform sample.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + intN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]bank.Question, k)
	for i := 0; i < k; i++ {
		out[i] = store[idx[i]]
	}
	return out
}

// SetSize is the number of questions a session draws when count is
// requested from a store of available questions.
func SetSize(count, available int) int {
	if count <= 0 {
		count = DefaultCount
	}
	return min(count, available)
}

// Randomize starts a fresh session over a new sample of store. Answers,
// stars, visited positions and the score of any previous session are gone.
func Randomize(store []bank.Question, count int, rng *rand.Rand) State {
	return New(SelectSubset(store, count, rng))
}
