package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.state.Len() == 0 {
		return layout.Centered(theme.Hint, width, "\n\nThe question bank is empty.")
	}

	// The overview sits beside the question when there is room, below it
	// otherwise.
	if s.overview {
		panel := components.RenderOverview(s.state.Overview())
		mainWidth := width - lipgloss.Width(panel) - 2
		if mainWidth >= layout.MinWidth-layout.OverviewWidth {
			return lipgloss.JoinHorizontal(lipgloss.Top, s.renderQuestion(mainWidth), "  ", panel)
		}
		return s.renderQuestion(width) + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, panel)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	state := s.state
	q, _ := state.CurrentQuestion()

	var b strings.Builder

	// Position line.
	kind := "single choice"
	if q.IsMultiple() {
		kind = "select all that apply"
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", state.Current+1, state.Len()))
	if state.Starred[state.Current] {
		infoLeft += lipgloss.NewStyle().Foreground(theme.Warning).Render(" ★")
	}
	infoRight := theme.Hint.Render(kind)

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 2; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-2, 0))))
	b.WriteString("\n\n")

	b.WriteString(theme.Question.Width(max(width-4, 10)).PaddingLeft(2).Render(q.Text))
	b.WriteString("\n\n")

	marks := components.OptionMarks{
		Chosen: state.Answers[state.Current].Contains,
	}
	if state.Graded() {
		marks.Key = q.Answer.Contains
	}
	b.WriteString(s.options.View(marks))

	if state.Graded() {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback())
	}

	b.WriteString("\n")
	b.WriteString(s.renderNav())

	if s.jumping {
		b.WriteString("\n\n  ")
		b.WriteString(s.jump.View())
	}

	return b.String()
}

// renderFeedback shows whether the current answer was right, and the key
// when it was not.
func (s *QuizScreen) renderFeedback() string {
	res, ok := s.state.ResultAt(s.state.Current)
	if !ok {
		return ""
	}
	if res.Correct {
		return "  " + theme.Correct.Render("✔ Correct") + "\n"
	}

	q, _ := s.state.CurrentQuestion()
	verdict := "✘ Incorrect"
	if !s.state.Answered(s.state.Current) {
		verdict = "✘ Not answered"
	}
	return "  " + theme.Incorrect.Render(verdict) + "\n" +
		"  " + theme.Hint.Render("Correct answer: "+strings.Join(q.CorrectOptions(), " / ")) + "\n"
}

// renderNav renders the Prev / Next / Submit buttons and, once graded,
// the score line.
func (s *QuizScreen) renderNav() string {
	state := s.state
	buttons := []string{
		components.NewButton("◀ Prev", "←", state.Current > 0).View(),
		" ",
	}
	if state.IsLast() {
		buttons = append(buttons, components.NewButton("Submit", "Ctrl+S", !state.Graded()).View())
	} else {
		buttons = append(buttons, components.NewButton("Next ▶", "→", true).View())
	}
	nav := "  " + lipgloss.JoinHorizontal(lipgloss.Center, buttons...)

	if !state.Graded() {
		return nav
	}
	verdict := theme.Correct.Render("✅ Pass")
	if !state.Score.Pass {
		verdict = theme.Incorrect.Render("❌ Fail")
	}
	return nav + "\n\n" + fmt.Sprintf("  Score: %d / %d   %s",
		state.Score.Correct, state.Score.Total, verdict)
}
