package welcome

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/bank"
	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	totalDur     = 1000 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen shows the banner and a summary of the loaded bank, then
// offers to start the quiz.
type WelcomeScreen struct {
	bank         *bank.Bank
	count        int
	quizFactory  func() screen.Screen
	menu         components.Menu
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen for b. count is the configured set size;
// quizFactory builds the quiz screen when the user starts.
func New(b *bank.Bank, count int, quizFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		bank:        b,
		count:       count,
		quizFactory: quizFactory,
	}
	w.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start quiz", Action: w.transition},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if !w.ready() {
		return []layout.KeyHint{{Key: "any key", Description: "Skip"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) ready() bool {
	return w.elapsed >= totalDur
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.ready() {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.ready() {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		// A key during the animation only skips it.
		if !w.ready() {
			w.elapsed = totalDur
			return w, nil
		}
		if msg.String() == "q" {
			return w, tea.Quit
		}
		var cmd tea.Cmd
		w.menu, cmd = w.menu.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	quizScreen := w.quizFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quizScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width)}

	if w.elapsed >= phase1End {
		sections = append(sections, "", w.renderBankInfo())
	}

	if w.ready() {
		sections = append(sections, "", w.menu.View())
	} else {
		sections = append(sections, "", theme.Hint.Render("press any key"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) renderBankInfo() string {
	if w.bank == nil {
		return ""
	}
	title := w.bank.Title
	if title == "" {
		title = "Untitled bank"
	}
	byType := w.bank.CountByType()
	total := len(w.bank.Questions)
	size := quiz.SetSize(w.count, total)

	lines := []string{
		theme.Title.Render(title),
		theme.Hint.Render(w.bank.Source),
		"",
		theme.Body.Render(fmt.Sprintf("%d questions  ·  %d single  ·  %d multiple",
			total, byType[bank.TypeSingle], byType[bank.TypeMultiple])),
		theme.Body.Render(fmt.Sprintf("%d per session, pass with %d correct",
			size, quiz.PassThreshold(size))),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
