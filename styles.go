package figmagen

import "github.com/charmbracelet/lipgloss"

// Terminal styles for the inspect report. Lipgloss degrades colors based
// on terminal capabilities.
var (
	// StyleHeader is used for section headers and the component name.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleWarn is used for warnings and unhandled-declaration notes.
	StyleWarn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGood is used for success lines and emitted class strings.
	StyleGood = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleDim is used for selectors, hints, and counts.
	StyleDim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
