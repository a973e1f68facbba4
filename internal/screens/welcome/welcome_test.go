package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/bank"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "quiz" }
func (s *stubScreen) Title() string                          { return "Quiz" }

func testBank() *bank.Bank {
	return &bank.Bank{
		Source: "testdata/go.json5",
		Title:  "Go Basics",
		Questions: []bank.Question{
			{Text: "a", Options: []string{"x", "y"}, Type: bank.TypeSingle, Answer: bank.Key{0}},
			{Text: "b", Options: []string{"x", "y"}, Type: bank.TypeMultiple, Answer: bank.Key{0, 1}},
			{Text: "c", Options: []string{"x", "y"}, Type: bank.TypeSingle, Answer: bank.Key{1}},
		},
	}
}

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(testBank(), 15, factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhases(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	view := w.View(80, 24)
	if strings.Contains(view, "Go Basics") {
		t.Error("bank info should not be visible at start")
	}
	if strings.Contains(view, "Start quiz") {
		t.Error("menu should not be visible at start")
	}

	sendTicks(w, 4)
	view = w.View(80, 24)
	if !strings.Contains(view, "Go Basics") {
		t.Error("bank info should be visible after the first phase")
	}
	if !strings.Contains(view, "3 questions") {
		t.Errorf("expected question count in view:\n%s", view)
	}
	if !strings.Contains(view, "3 per session, pass with 2 correct") {
		t.Errorf("expected session size clamped to the bank:\n%s", view)
	}

	if cmd := sendTicks(w, 6); cmd != nil {
		t.Error("ticking should stop once the animation is done")
	}
	if !strings.Contains(w.View(80, 24), "Start quiz") {
		t.Error("menu should be visible after the animation")
	}
}

func TestKeypressDuringAnimationSkips(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("keypress during animation should only skip it")
	}
	if !w.ready() {
		t.Error("expected animation finished")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}
}

func TestStartEmitsReplace(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 10)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Start quiz")
	}
	replaceMsg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}

	// Selecting again does not build a second quiz.
	if _, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("second start should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestQuit(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	sendTicks(w, 10)

	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quit command for q")
	}
}

func TestRenderBanner(t *testing.T) {
	if got := RenderBanner(40); !strings.Contains(got, bannerCompact) {
		t.Errorf("expected compact banner on narrow terminals, got %q", got)
	}
	if got := RenderBanner(100); !strings.Contains(got, "██████╗") {
		t.Error("expected block banner on wide terminals")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}

func TestBankInfo_DefaultCount(t *testing.T) {
	b := testBank()
	for i := 0; len(b.Questions) < 20; i++ {
		b.Questions = append(b.Questions, b.Questions[i%3])
	}
	w := New(b, 0, func() screen.Screen { return &stubScreen{} })
	sendTicks(w, 10)
	if view := w.View(80, 30); !strings.Contains(view, "15 per session, pass with 8 correct") {
		t.Errorf("expected the default set size for count 0:\n%s", view)
	}
}
