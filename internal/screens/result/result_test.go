package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/bank"
	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/router"
)

func gradedState(answers ...int) quiz.State {
	questions := []bank.Question{
		{Text: "2+2?", Options: []string{"3", "4"}, Type: bank.TypeSingle, Answer: bank.Key{1}},
		{Text: "Primes?", Options: []string{"2", "4", "5"}, Type: bank.TypeMultiple, Answer: bank.Key{0, 2}},
		{Text: "Capital of France?", Options: []string{"Paris", "Rome"}, Type: bank.TypeSingle, Answer: bank.Key{0}},
	}
	st := quiz.New(questions)
	for pos, opt := range answers {
		if opt >= 0 {
			st = quiz.RecordAnswer(st, pos, opt)
		}
	}
	st = quiz.ToggleStar(st, 2)
	return quiz.Submit(st)
}

func TestResultScreen_Title(t *testing.T) {
	s := New(gradedState())
	if s.Title() != "Result" {
		t.Errorf("Title = %q, want %q", s.Title(), "Result")
	}
}

func TestResultScreen_Pass(t *testing.T) {
	s := New(gradedState(1, -1, 0))
	view := s.View(80, 24)
	if !strings.Contains(view, "Passed!") {
		t.Error("expected pass heading")
	}
	if !strings.Contains(view, "2 of 3 correct") {
		t.Errorf("expected score line in view:\n%s", view)
	}
	if !strings.Contains(view, "(skipped)") {
		t.Error("expected skipped marker for unanswered question")
	}
	if !strings.Contains(view, "★") {
		t.Error("expected starred marker")
	}
}

func TestResultScreen_Fail(t *testing.T) {
	s := New(gradedState(0))
	view := s.View(80, 24)
	if !strings.Contains(view, "Not passed") {
		t.Error("expected fail heading")
	}
	if !strings.Contains(view, "0 of 3 correct") {
		t.Errorf("expected score line in view:\n%s", view)
	}
}

func TestResultScreen_NotGraded(t *testing.T) {
	s := New(quiz.State{})
	if !strings.Contains(s.View(80, 24), "Not graded") {
		t.Error("expected not graded notice")
	}
}

func TestResultScreen_Navigation(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
	} {
		s := New(gradedState())
		_, cmd := s.Update(msg)
		if cmd == nil {
			t.Fatalf("expected command for %q", msg.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("expected PopScreenMsg for %q", msg.String())
		}
	}
}

func TestResultScreen_IgnoresOtherKeys(t *testing.T) {
	s := New(gradedState())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for unbound key")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a  long\nquestion text", 8); got != "a long …" {
		t.Errorf("truncate = %q, want %q", got, "a long …")
	}
}
