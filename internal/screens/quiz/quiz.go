package quiz

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/bank"
	qz "github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/screens/result"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
)

// QuizScreen presents one question at a time and dispatches key presses
// to the session reducer.
type QuizScreen struct {
	store  []bank.Question
	count  int
	rng    *rand.Rand
	logger *slog.Logger

	state    qz.State
	options  components.OptionList
	overview bool
	jumping  bool
	jump     components.NumberInput
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New samples count questions from store and starts a session. rng may be
// nil to use the global source.
func New(store []bank.Question, count int, rng *rand.Rand, logger *slog.Logger) *QuizScreen {
	s := &QuizScreen{
		store:  store,
		count:  count,
		rng:    rng,
		logger: logger,
	}
	s.start()
	return s
}

// State returns the current session state.
func (s *QuizScreen) State() qz.State {
	return s.state
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	if s.state.Score != nil {
		return fmt.Sprintf("Score %d/%d", s.state.Score.Correct, s.state.Score.Total)
	}
	return fmt.Sprintf("✎ %d/%d  ★ %d", s.state.AnsweredCount(), s.state.Len(), s.state.StarredCount())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.jumping {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Number"},
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Prev/Next"},
	}
	if !s.state.Graded() {
		hints = append(hints, layout.KeyHint{Key: "↑↓ Space", Description: "Select"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "s", Description: "Star"},
		layout.KeyHint{Key: "o", Description: "Overview"},
		layout.KeyHint{Key: "g", Description: "Go to"},
		layout.KeyHint{Key: "r", Description: "Randomize"},
	)
	switch {
	case s.state.Graded():
		hints = append(hints, layout.KeyHint{Key: "v", Description: "Result"})
	case s.state.IsLast():
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit"})
	}
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.jumping {
			var cmd tea.Cmd
			s.jump, cmd = s.jump.Update(msg)
			return s, cmd
		}
		return s, nil
	}
	if s.jumping {
		return s.handleJumpKey(kmsg)
	}
	return s.handleKey(kmsg)
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case "up", "k", "down", "j":
		s.options, _ = s.options.Update(msg)
	case "space", "enter", "x":
		s.dispatch(qz.AnswerAction{Position: s.state.Current, Option: s.options.Cursor})
	case "left", "h", "p":
		s.navigate(s.state.Current - 1)
	case "right", "l", "n":
		s.navigate(s.state.Current + 1)
	case "s":
		s.dispatch(qz.StarAction{Position: s.state.Current})
	case "o":
		s.overview = !s.overview
	case "g":
		s.jumping = true
		s.jump = components.NewNumberInput(fmt.Sprintf("1-%d", s.state.Len()), 3)
		return s, s.jump.Init()
	case "r":
		s.start()
	case "ctrl+s":
		return s, s.submit()
	case "v":
		if s.state.Graded() {
			return s, s.showResult()
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			opt := int(key[0] - '1')
			if opt < len(s.options.Options) {
				s.options.Cursor = opt
				s.dispatch(qz.AnswerAction{Position: s.state.Current, Option: opt})
			}
		}
	}
	return s, nil
}

func (s *QuizScreen) handleJumpKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.jumping = false
		return s, nil
	case "enter":
		s.jumping = false
		if n, err := s.jump.Number(); err == nil {
			s.navigate(n - 1)
		}
		return s, nil
	}
	var cmd tea.Cmd
	s.jump, cmd = s.jump.Update(msg)
	return s, cmd
}

// start draws a new question set, discarding the current session.
func (s *QuizScreen) start() {
	previous := s.state.ID
	s.state = qz.Randomize(s.store, s.count, s.rng)
	s.overview = false
	s.jumping = false
	s.resetOptions()
	if previous != "" {
		s.logger.Info("quiz randomized", "session", s.state.ID, "previous", previous, "size", s.state.Len())
		return
	}
	s.logger.Info("session started", "session", s.state.ID, "size", s.state.Len(), "store", len(s.store))
}

func (s *QuizScreen) dispatch(a qz.Action) {
	s.state = qz.Reduce(s.state, a)
}

func (s *QuizScreen) navigate(target int) {
	before := s.state.Current
	s.dispatch(qz.NavigateAction{Target: target})
	if s.state.Current != before {
		s.resetOptions()
	}
}

// resetOptions rebuilds the option list for the current question.
func (s *QuizScreen) resetOptions() {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		s.options = components.OptionList{}
		return
	}
	s.options = components.NewOptionList(q.Options, q.IsMultiple())
}

// submit grades the session. It is only offered on the last question.
func (s *QuizScreen) submit() tea.Cmd {
	if !s.state.IsLast() || s.state.Graded() {
		return nil
	}
	s.dispatch(qz.SubmitAction{})
	score := s.state.Score
	s.logger.Info("quiz submitted",
		"session", s.state.ID,
		"total", score.Total,
		"correct", score.Correct,
		"pass", score.Pass,
		"answered", s.state.AnsweredCount(),
	)
	return s.showResult()
}

func (s *QuizScreen) showResult() tea.Cmd {
	res := result.New(s.state)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: res}
	}
}
