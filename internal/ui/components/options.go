package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

// OptionMarks tells OptionList which options to mark. Key is nil until the
// quiz is graded; once set, options are colored against it.
type OptionMarks struct {
	Chosen func(int) bool
	Key    func(int) bool
}

// OptionList renders the options of one question as radio buttons or
// checkboxes and tracks the cursor. Selection state lives in the quiz
// state, not here.
type OptionList struct {
	Options  []string
	Multiple bool
	Cursor   int
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []string, multiple bool) OptionList {
	return OptionList{
		Options:  options,
		Multiple: multiple,
	}
}

// Update moves the cursor.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	}
	return l, nil
}

// View renders every option on its own line.
func (l OptionList) View(marks OptionMarks) string {
	var b strings.Builder
	for i, opt := range l.Options {
		chosen := marks.Chosen != nil && marks.Chosen(i)

		prefix := "  "
		if i == l.Cursor && marks.Key == nil {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %d. %s", prefix, l.box(chosen), i+1, opt)

		switch {
		case marks.Key != nil && marks.Key(i):
			b.WriteString(theme.Correct.Render(line))
		case marks.Key != nil && chosen:
			b.WriteString(theme.Incorrect.Render(line))
		case marks.Key != nil:
			b.WriteString(theme.Locked.Render(line))
		case i == l.Cursor:
			b.WriteString(theme.Cursor.Render(line))
		case chosen:
			b.WriteString(theme.Chosen.Render(line))
		default:
			b.WriteString(theme.Body.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (l OptionList) box(chosen bool) string {
	switch {
	case l.Multiple && chosen:
		return "[x]"
	case l.Multiple:
		return "[ ]"
	case chosen:
		return "(•)"
	default:
		return "( )"
	}
}
