package inspect

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StyleInfo is the part of a lipgloss style worth reporting.
type StyleInfo struct {
	Foreground  string `json:"foreground,omitempty"`
	Background  string `json:"background,omitempty"`
	Bold        bool   `json:"bold,omitempty"`
	Underline   bool   `json:"underline,omitempty"`
	Border      bool   `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	// Padding is [top, right, bottom, left].
	Padding []int `json:"padding,omitempty"`
}

// ExtractStyleInfo extracts style information from a lipgloss style.
func ExtractStyleInfo(style lipgloss.Style) *StyleInfo {
	info := &StyleInfo{
		Foreground: colorToString(style.GetForeground()),
		Background: colorToString(style.GetBackground()),
		Bold:       style.GetBold(),
		Underline:  style.GetUnderline(),
	}

	top, right, bottom, left := style.GetPadding()
	if top > 0 || right > 0 || bottom > 0 || left > 0 {
		info.Padding = []int{top, right, bottom, left}
	}

	if style.GetBorderTop() || style.GetBorderRight() || style.GetBorderBottom() || style.GetBorderLeft() {
		info.Border = true
		info.BorderColor = colorToString(style.GetBorderTopForeground())
	}

	return info
}

func colorToString(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return ""
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return fmt.Sprintf("adaptive(light=%s, dark=%s)", v.Light, v.Dark)
	case lipgloss.CompleteColor:
		return fmt.Sprintf("complete(true=%s, ansi=%s, ansi256=%s)", v.TrueColor, v.ANSI, v.ANSI256)
	default:
		return fmt.Sprintf("%v", c)
	}
}
