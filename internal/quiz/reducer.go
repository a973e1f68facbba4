package quiz

// Action is a user intent dispatched to Reduce.
type Action interface {
	isAction()
}

// AnswerAction selects or toggles Option on the question at Position.
type AnswerAction struct {
	Position int
	Option   int
}

// NavigateAction jumps to Target (clamped).
type NavigateAction struct {
	Target int
}

// StarAction toggles the bookmark on Position.
type StarAction struct {
	Position int
}

// SubmitAction grades the session.
type SubmitAction struct{}

func (AnswerAction) isAction()   {}
func (NavigateAction) isAction() {}
func (StarAction) isAction()     {}
func (SubmitAction) isAction()   {}

// Reduce applies an action to the session state. A graded session keeps
// its answers: AnswerAction and SubmitAction are ignored once Score is set,
// while navigation and stars still work for review.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AnswerAction:
		if state.Graded() {
			return state
		}
		return RecordAnswer(state, a.Position, a.Option)
	case NavigateAction:
		return Navigate(state, a.Target)
	case StarAction:
		return ToggleStar(state, a.Position)
	case SubmitAction:
		if state.Graded() {
			return state
		}
		return Submit(state)
	}
	return state
}
