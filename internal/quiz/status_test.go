package quiz

import "testing"

func TestStatus(t *testing.T) {
	s := New(testStore(4))
	s = Navigate(s, 2)
	s = RecordAnswer(s, 2, 0)
	s = Navigate(s, 1)

	want := map[int]QuestionStatus{
		0: StatusUnanswered,
		1: StatusCurrent,
		2: StatusAnswered,
		3: StatusUnvisited,
	}
	for pos, status := range want {
		if got := s.Status(pos); got != status {
			t.Errorf("Status(%d) = %s, want %s", pos, got, status)
		}
	}
}

func TestOverview(t *testing.T) {
	s := New(testStore(3))
	s = ToggleStar(s, 1)

	slots := s.Overview()
	if len(slots) != 3 {
		t.Fatalf("len(Overview) = %d, want 3", len(slots))
	}
	if slots[0].Status != StatusCurrent {
		t.Errorf("slot 0 = %s, want current", slots[0].Status)
	}
	if !slots[1].Starred || slots[1].Status != StatusUnvisited {
		t.Errorf("slot 1 = %+v, want starred and unvisited", slots[1])
	}
	if slots[2].Starred {
		t.Error("slot 2 should not be starred")
	}
}

func TestQuestionStatusString(t *testing.T) {
	if StatusAnswered.String() != "answered" {
		t.Errorf("String = %q", StatusAnswered.String())
	}
	if QuestionStatus(42).String() != "unknown" {
		t.Errorf("String = %q", QuestionStatus(42).String())
	}
}
