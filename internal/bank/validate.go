package bank

import (
	"fmt"
	"strings"
)

// Validate checks the invariants the schema cannot express: every answer
// index names an option, key indices are distinct, and single questions
// have exactly one key index.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyBank
	}
	for i, q := range questions {
		if err := validateQuestion(q); err != "" {
			return &InvariantError{Index: i, Reason: err}
		}
	}
	return nil
}

func validateQuestion(q Question) string {
	if strings.TrimSpace(q.Text) == "" {
		return "question text is empty"
	}
	if len(q.Options) < 2 {
		return fmt.Sprintf("needs at least 2 options, has %d", len(q.Options))
	}
	switch q.Type {
	case TypeSingle:
		if len(q.Answer) != 1 {
			return fmt.Sprintf("single question needs exactly one answer, has %d", len(q.Answer))
		}
	case TypeMultiple:
		if len(q.Answer) == 0 {
			return "multiple question has no answer"
		}
	default:
		return fmt.Sprintf("unknown type %q", q.Type)
	}
	for j, idx := range q.Answer {
		if idx < 0 || idx >= len(q.Options) {
			return fmt.Sprintf("answer index %d out of range [0, %d)", idx, len(q.Options))
		}
		if j > 0 && q.Answer[j-1] == idx {
			return fmt.Sprintf("answer index %d listed twice", idx)
		}
	}
	return ""
}
