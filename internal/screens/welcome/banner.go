package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

var bannerLetters = map[rune][]string{
	'Q': {
		" ██████╗ ",
		"██╔═══██╗",
		"██║   ██║",
		"██║▄▄ ██║",
		"╚██████╔╝",
		" ╚══▀▀═╝ ",
	},
	'U': {
		"██╗   ██╗",
		"██║   ██║",
		"██║   ██║",
		"██║   ██║",
		"╚██████╔╝",
		" ╚═════╝ ",
	},
	'I': {
		"██╗",
		"██║",
		"██║",
		"██║",
		"██║",
		"╚═╝",
	},
	'Z': {
		"███████╗",
		"╚══███╔╝",
		"  ███╔╝ ",
		" ███╔╝  ",
		"███████╗",
		"╚══════╝",
	},
	'E': {
		"███████╗",
		"██╔════╝",
		"█████╗  ",
		"██╔══╝  ",
		"███████╗",
		"╚══════╝",
	},
	'R': {
		"██████╗ ",
		"██╔══██╗",
		"██████╔╝",
		"██╔══██╗",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
}

const bannerCompact = "Q U I Z Z E R"

// bannerMinWidth is the narrowest terminal that fits the block banner.
const bannerMinWidth = 56

// bannerArt lays out the block letters side by side.
func bannerArt() string {
	blocks := make([]string, 0, len(bannerCompact))
	for _, r := range strings.ReplaceAll(bannerCompact, " ", "") {
		blocks = append(blocks, strings.Join(bannerLetters[r], "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// RenderBanner returns the QUIZZER banner styled in the primary color,
// falling back to spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt())
}
