package quiz

// QuestionStatus is the overview-panel status of one position.
type QuestionStatus int

const (
	StatusUnvisited QuestionStatus = iota
	StatusUnanswered
	StatusAnswered
	StatusCurrent
)

func (s QuestionStatus) String() string {
	switch s {
	case StatusUnvisited:
		return "unvisited"
	case StatusUnanswered:
		return "unanswered"
	case StatusAnswered:
		return "answered"
	case StatusCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// Status derives the status of position. The current position wins over
// everything else; an answered position is Answered; a visited one without
// a selection is Unanswered.
func (s State) Status(position int) QuestionStatus {
	switch {
	case position == s.Current:
		return StatusCurrent
	case s.Answered(position):
		return StatusAnswered
	case s.Visited[position]:
		return StatusUnanswered
	default:
		return StatusUnvisited
	}
}

// Slot is one cell of the overview panel.
type Slot struct {
	Position int
	Status   QuestionStatus
	Starred  bool
}

// Overview lists every position with its status and star marker.
func (s State) Overview() []Slot {
	slots := make([]Slot, len(s.Questions))
	for i := range s.Questions {
		slots[i] = Slot{
			Position: i,
			Status:   s.Status(i),
			Starred:  s.Starred[i],
		}
	}
	return slots
}
