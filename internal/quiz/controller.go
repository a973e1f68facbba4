package quiz

import (
	"slices"

	"github.com/abhisek/quizzer/internal/bank"
)

// RecordAnswer applies a click on option at position. Single questions
// overwrite the stored selection; multiple questions toggle the option.
// Removing the last option of a multiple selection leaves the position
// unanswered.
func RecordAnswer(state State, position, option int) State {
	if position < 0 || position >= len(state.Questions) {
		return state
	}
	answers := cloneMap(state.Answers)

	switch state.Questions[position].Type {
	case bank.TypeSingle:
		answers[position] = Selection{option}
	case bank.TypeMultiple:
		next := answers[position].toggle(option)
		if len(next) == 0 {
			delete(answers, position)
		} else {
			answers[position] = next
		}
	}

	state.Answers = answers
	return state
}

// Navigate moves to target, clamped to the question set, and marks it
// visited.
func Navigate(state State, target int) State {
	if len(state.Questions) == 0 {
		return state
	}
	target = max(0, min(target, len(state.Questions)-1))

	visited := cloneMap(state.Visited)
	visited[target] = true

	state.Current = target
	state.Visited = visited
	return state
}

// Next moves one question forward.
func Next(state State) State {
	return Navigate(state, state.Current+1)
}

// Prev moves one question back.
func Prev(state State) State {
	return Navigate(state, state.Current-1)
}

// ToggleStar flips the bookmark on position. Stars never affect grading.
func ToggleStar(state State, position int) State {
	starred := cloneMap(state.Starred)
	if starred[position] {
		delete(starred, position)
	} else {
		starred[position] = true
	}
	state.Starred = starred
	return state
}

// IsCorrect reports whether sel matches the key of q. Multiple questions
// compare as sets. An empty selection never matches.
func IsCorrect(q bank.Question, sel Selection) bool {
	if len(sel) == 0 {
		return false
	}
	switch q.Type {
	case bank.TypeSingle:
		return len(sel) == 1 && len(q.Answer) == 1 && sel[0] == q.Answer[0]
	case bank.TypeMultiple:
		a := slices.Clone(sel)
		slices.Sort(a)
		a = slices.Compact(a)
		b := slices.Clone([]int(q.Answer))
		slices.Sort(b)
		b = slices.Compact(b)
		return slices.Equal(a, b)
	}
	return false
}

// PassThreshold is the minimum number of correct answers needed to pass
// a set of total questions: ceil(total / 2).
func PassThreshold(total int) int {
	return (total + 1) / 2
}

// Grade scores answers against questions. Unanswered positions count as
// incorrect.
func Grade(questions []bank.Question, answers map[int]Selection) Score {
	score, _ := grade(questions, answers)
	return score
}

func grade(questions []bank.Question, answers map[int]Selection) (Score, []Result) {
	results := make([]Result, len(questions))
	correct := 0
	for i, q := range questions {
		ok := IsCorrect(q, answers[i])
		results[i] = Result{Position: i, Correct: ok}
		if ok {
			correct++
		}
	}
	total := len(questions)
	return Score{
		Total:   total,
		Correct: correct,
		Pass:    correct >= PassThreshold(total),
	}, results
}

// Submit grades the session and stores the score and per-question results.
func Submit(state State) State {
	score, results := grade(state.Questions, state.Answers)
	state.Score = &score
	state.Results = results
	return state
}
