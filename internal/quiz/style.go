package quiz

import "github.com/charmbracelet/lipgloss"

// Palette colors for quiz output.
var (
	colorCorrect   = lipgloss.Color("42")
	colorIncorrect = lipgloss.Color("203")
	colorResult    = lipgloss.Color("33")
	colorPrompt    = lipgloss.Color("244")
)

// stylize applies a foreground color unless color output is disabled.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold renders emphasized text for headings and results.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
