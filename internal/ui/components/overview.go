package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// overviewPerRow is how many position cells fit on one panel row.
const overviewPerRow = 5

// RenderOverview renders the jump-to panel: one numbered cell per
// position, colored by status, with a star for bookmarked positions.
func RenderOverview(slots []quiz.Slot) string {
	var rows []string
	var row []string
	for _, slot := range slots {
		row = append(row, renderSlot(slot))
		if len(row) == overviewPerRow {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}

	legend := strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Current).Render("■") + " current",
		lipgloss.NewStyle().Foreground(theme.Warning).Render("■") + " unanswered",
		lipgloss.NewStyle().Foreground(theme.Text).Render("■") + " answered",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("■") + " unvisited",
	}, "\n")

	body := theme.Title.Render("Jump to") + "\n\n" +
		strings.Join(rows, "\n") + "\n\n" +
		theme.Hint.Render(legend)
	return theme.Panel.Render(body)
}

func renderSlot(slot quiz.Slot) string {
	star := " "
	if slot.Starred {
		star = "★"
	}
	cell := fmt.Sprintf("%2d%s", slot.Position+1, star)
	return lipgloss.NewStyle().Foreground(slotColor(slot.Status)).Bold(slot.Status == quiz.StatusCurrent).Render(cell)
}

func slotColor(s quiz.QuestionStatus) color.Color {
	switch s {
	case quiz.StatusCurrent:
		return theme.Current
	case quiz.StatusUnanswered:
		return theme.Warning
	case quiz.StatusAnswered:
		return theme.Text
	default:
		return theme.TextDim
	}
}
