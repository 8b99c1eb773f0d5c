package ui

import (
	"tvfov/fov"

	"github.com/charmbracelet/lipgloss"
)

// Semantic Color Palette

// Rating colors match the hex colors the fov package assigns to each band.
var (
	RatingIdeal     = lipgloss.Color(fov.RatingIdeal.Color)
	RatingGood      = lipgloss.Color(fov.RatingGood.Color)
	RatingImmersive = lipgloss.Color(fov.RatingImmersive.Color)
	RatingTooFar    = lipgloss.Color(fov.RatingTooFar.Color)
	RatingVeryClose = lipgloss.Color(fov.RatingVeryClose.Color)
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#334155"}

	// BorderFocus is the border color for focused elements
	BorderFocus = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F1F5F9"}

	// TextSecondary is for labels
	TextSecondary = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#64748B"}

	// Track is the unfilled part of a slider
	Track = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#334155"}

	// BackgroundSubtle is for overlays
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#1E293B"}

	// ErrorColor is used by the error box
	ErrorColor = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
)

// RatingColor returns the terminal color for a rating.
func RatingColor(r fov.Rating) lipgloss.TerminalColor {
	return lipgloss.Color(r.Color)
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Title     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Title:     lipgloss.NewStyle().Foreground(TextPrimary).Bold(true),
}

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0F172A")).
		Background(color).
		Bold(true).
		Padding(0, 1)
}

// RatingBadge returns the rating label rendered as a badge.
func RatingBadge(r fov.Rating) string {
	return BadgeStyle(RatingColor(r)).Render(r.Label)
}

// Spacing constants for consistent layout
const (
	SpaceXS = 1
	SpaceSM = 2
)

// CardStyle creates a style for card-like containers
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, SpaceSM)
}

// FocusedCardStyle creates a style for focused card-like containers
func FocusedCardStyle() lipgloss.Style {
	return CardStyle().BorderForeground(BorderFocus)
}

// OverlayStyle creates a style for overlay/modal containers
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocus).
		Padding(1, SpaceSM).
		Background(BackgroundSubtle)
}

// cardInnerWidth is the content width of a card rendered at width.
func cardInnerWidth(width int) int {
	w := width - 2 - 2*SpaceSM
	if w < 1 {
		return 1
	}
	return w
}
