package overlay

import (
	"github.com/charmbracelet/lipgloss"
)

// WhitespaceOption styles the area around a placed overlay.
type WhitespaceOption = lipgloss.WhitespaceOption

// PlaceOverlay centers fg in a width x height area. The background is
// replaced rather than blended so the modal reads cleanly on any terminal.
func PlaceOverlay(width, height int, fg string, opts ...WhitespaceOption) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, fg, opts...)
}
