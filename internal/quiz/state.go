package quiz

import (
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/quizzer/internal/bank"
)

// Selection is the set of option indices a user picked for one question,
// kept in ascending order. A single-type selection has one element.
type Selection []int

// Contains reports whether option i is selected.
func (s Selection) Contains(i int) bool {
	_, found := slices.BinarySearch(s, i)
	return found
}

// toggle returns a new selection with option i added or removed.
func (s Selection) toggle(i int) Selection {
	pos, found := slices.BinarySearch(s, i)
	if found {
		return slices.Delete(slices.Clone(s), pos, pos+1)
	}
	return slices.Insert(slices.Clone(s), pos, i)
}

// Score is the graded outcome of a session.
type Score struct {
	Total   int
	Correct int
	Pass    bool
}

// Result records whether the answer at Position matched its key.
type Result struct {
	Position int
	Correct  bool
}

// State is the whole runtime state of one quiz session. Values are never
// modified in place: every transition returns a new State.
type State struct {
	// ID identifies the session in log lines.
	ID string

	// Questions is the sampled question set, in presentation order.
	Questions []bank.Question

	// Answers maps a position to the user's selection. A missing entry
	// means unanswered.
	Answers map[int]Selection

	// Current is the displayed position.
	Current int

	// Visited holds every position the user has navigated to.
	Visited map[int]bool

	// Starred holds bookmarked positions.
	Starred map[int]bool

	// Score is nil until the session is submitted.
	Score *Score

	// Results has one entry per position once graded.
	Results []Result
}

// New starts an in-progress session over questions.
func New(questions []bank.Question) State {
	return State{
		ID:        uuid.NewString(),
		Questions: questions,
		Answers:   map[int]Selection{},
		Current:   0,
		Visited:   map[int]bool{0: true},
		Starred:   map[int]bool{},
	}
}

// Len returns the number of questions in the set.
func (s State) Len() int {
	return len(s.Questions)
}

// Graded reports whether the session has been submitted.
func (s State) Graded() bool {
	return s.Score != nil
}

// IsLast reports whether the current position is the final question.
func (s State) IsLast() bool {
	return s.Current == len(s.Questions)-1
}

// CurrentQuestion returns the displayed question. ok is false for an
// empty set.
func (s State) CurrentQuestion() (q bank.Question, ok bool) {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return bank.Question{}, false
	}
	return s.Questions[s.Current], true
}

// Answered reports whether position has a non-empty selection.
func (s State) Answered(position int) bool {
	return len(s.Answers[position]) > 0
}

// AnsweredCount returns how many positions have a selection.
func (s State) AnsweredCount() int {
	n := 0
	for pos := range s.Answers {
		if s.Answered(pos) {
			n++
		}
	}
	return n
}

// StarredCount returns how many positions are starred.
func (s State) StarredCount() int {
	n := 0
	for _, on := range s.Starred {
		if on {
			n++
		}
	}
	return n
}

// ResultAt returns the graded result for position. ok is false before
// grading.
func (s State) ResultAt(position int) (r Result, ok bool) {
	if position < 0 || position >= len(s.Results) {
		return Result{}, false
	}
	return s.Results[position], true
}

// cloneMap copies m into a fresh, non-nil map.
func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
