package bank

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Type is how a question is answered.
type Type string

const (
	TypeSingle   Type = "single"   // exactly one option (radio)
	TypeMultiple Type = "multiple" // any set of options (checkbox)
)

// Key is the answer key of a question: option indices in ascending order.
// A single-type key holds exactly one index.
type Key []int

// UnmarshalJSON accepts either a bare index or an array of indices.
func (k *Key) UnmarshalJSON(data []byte) error {
	var one int
	if err := json.Unmarshal(data, &one); err == nil {
		*k = Key{one}
		return nil
	}
	var many []int
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("answer must be an index or a list of indices: %w", err)
	}
	sorted := slices.Clone(many)
	slices.Sort(sorted)
	*k = sorted
	return nil
}

// MarshalJSON writes a single-index key as a bare number.
func (k Key) MarshalJSON() ([]byte, error) {
	if len(k) == 1 {
		return json.Marshal(k[0])
	}
	return json.Marshal([]int(k))
}

// Contains reports whether option i is part of the key.
func (k Key) Contains(i int) bool {
	_, found := slices.BinarySearch(k, i)
	return found
}

// Question is one immutable entry of the bank.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Type    Type     `json:"type"`
	Answer  Key      `json:"answer"`
}

// IsMultiple reports whether the question accepts several options.
func (q Question) IsMultiple() bool {
	return q.Type == TypeMultiple
}

// CorrectOptions returns the option texts named by the answer key.
func (q Question) CorrectOptions() []string {
	out := make([]string, 0, len(q.Answer))
	for _, i := range q.Answer {
		if i >= 0 && i < len(q.Options) {
			out = append(out, q.Options[i])
		}
	}
	return out
}

// rawQuestion mirrors Question on the wire; "text" is accepted as an
// alias for "question".
type rawQuestion struct {
	Question string   `json:"question"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Type     Type     `json:"type"`
	Answer   Key      `json:"answer"`
}

func (r rawQuestion) toQuestion() Question {
	text := r.Question
	if text == "" {
		text = r.Text
	}
	return Question{
		Text:    text,
		Options: r.Options,
		Type:    r.Type,
		Answer:  r.Answer,
	}
}

// Bank is a loaded question store.
type Bank struct {
	// Source names where the bank was read from (file path or "embedded").
	Source string

	// Title is optional and only set by the object document layout.
	Title string

	// Format is the declared document format version, empty for bare arrays.
	Format string

	Questions []Question
}

// CountByType returns how many questions of each type the bank holds.
func (b *Bank) CountByType() map[Type]int {
	counts := make(map[Type]int, 2)
	for _, q := range b.Questions {
		counts[q.Type]++
	}
	return counts
}
