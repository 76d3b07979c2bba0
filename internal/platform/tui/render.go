package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui48/internal/core"
)

// paletteCodes holds the ANSI 256-color code for each core.Color.
// ColorDefault uses the terminal's own foreground.
var paletteCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorHighlight:     "213",
}

var colorStyles = buildColorStyles()

func buildColorStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(paletteCodes))
	for c, code := range paletteCodes {
		s := lipgloss.NewStyle()
		if code != "" {
			s = s.Foreground(lipgloss.Color(code))
		}
		if core.Color(c) == core.ColorHighlight {
			s = s.Bold(true)
		}
		styles[c] = s
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen turns a screen buffer into a styled string, one line per
// row. Each run of same-colored cells is rendered with a single style.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runColor := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if x > 0 && cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
			}
			runColor = cell.Color
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
