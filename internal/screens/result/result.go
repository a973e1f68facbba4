package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// ResultScreen displays the score of a graded session and the outcome of
// each question.
type ResultScreen struct {
	state quiz.State
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a graded state.
func New(state quiz.State) *ResultScreen {
	return &ResultScreen{state: state}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Review answers"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	score := s.state.Score
	if score == nil {
		return layout.Centered(theme.Hint, width, "\n\nNot graded yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	heading := "Passed!"
	headingStyle := theme.Correct
	if !score.Pass {
		heading = "Not passed"
		headingStyle = theme.Incorrect
	}
	b.WriteString(layout.Centered(headingStyle, width, heading))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(theme.Body, width, fmt.Sprintf(
		"%d of %d correct  ·  %d needed to pass",
		score.Correct, score.Total, quiz.PassThreshold(score.Total))))
	b.WriteString("\n\n")

	barWidth := min(width-8, 50)
	bar := components.NewProgressBar("Score", score.Correct, score.Total, barWidth)
	if !score.Pass {
		bar.Fill = theme.Error
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderQuestions(width)))
	return b.String()
}

// renderQuestions lists every position with its verdict. Long question
// texts are truncated to keep one line per position.
func (s *ResultScreen) renderQuestions(width int) string {
	textWidth := max(min(width-16, 60), 10)

	var rows []string
	for _, r := range s.state.Results {
		mark := theme.Correct.Render("✔")
		if !r.Correct {
			mark = theme.Incorrect.Render("✘")
		}
		star := " "
		if s.state.Starred[r.Position] {
			star = lipgloss.NewStyle().Foreground(theme.Warning).Render("★")
		}
		text := truncate(s.state.Questions[r.Position].Text, textWidth)
		if !s.state.Answered(r.Position) {
			text += theme.Hint.Render("  (skipped)")
		}
		rows = append(rows, fmt.Sprintf("%s %s %2d. %s", mark, star, r.Position+1, text))
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
