package ui

import (
	"fmt"

	"tvfov/fov"
	"tvfov/log"

	"github.com/charmbracelet/lipgloss"
)

// Readout shows the horizontal FOV, its rating and the vertical FOV.
type Readout struct {
	result fov.Result
	rating fov.Rating
	width  int
}

func NewReadout() *Readout {
	return &Readout{width: 40}
}

// SetResult updates the values shown.
func (r *Readout) SetResult(result fov.Result) {
	r.result = result
	r.rating = fov.Classify(result.HorizontalFOV)
}

func (r *Readout) SetWidth(width int) {
	r.width = width
}

// FormatDegrees renders an angle the way the readout shows it.
func FormatDegrees(deg float64) string {
	return fmt.Sprintf("%.1f°", deg)
}

func (r *Readout) String() string {
	inner := cardInnerWidth(r.width)
	log.RenderTrace("Readout", "width=%d rating=%s", inner, r.rating.Label)
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	angle := lipgloss.NewStyle().
		Foreground(RatingColor(r.rating)).
		Bold(true).
		Render(FormatDegrees(r.result.HorizontalFOV))

	content := lipgloss.JoinVertical(lipgloss.Center,
		center.Render(TextStyles.Secondary.Render("Horizontal Field of View")),
		center.Render(angle),
		center.Render(RatingBadge(r.rating)),
		center.Render(TextStyles.Secondary.Render("Vertical FOV: "+FormatDegrees(r.result.VerticalFOV))),
	)
	return CardStyle().Width(r.width - 2).Render(content)
}
