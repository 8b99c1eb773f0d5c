package ui

import (
	"fmt"
	"math"
	"strings"

	"tvfov/fov"
	"tvfov/log"

	"github.com/charmbracelet/lipgloss"
)

const (
	coneViewer = 'O'
	coneFill   = '░'
	coneScreen = '█'
	coneEmpty  = ' '

	// cellAspect is how many columns one row spans on screen.
	cellAspect = 2.0
)

// RenderCone draws a top-down view of the viewer's horizontal field of view:
// the viewer on the left of the middle row and a cone opening toward the
// screen on the right with a half-angle of horizontalFOV/2. Rows are returned
// unstyled; height is rounded up to an odd number.
func RenderCone(horizontalFOV float64, width, height int) []string {
	if width < 3 {
		width = 3
	}
	if height < 1 {
		height = 1
	}
	if height%2 == 0 {
		height++
	}

	mid := height / 2
	half := horizontalFOV / 2 * math.Pi / 180
	screenCol := width - 1
	length := float64(screenCol - 1)
	screenHalf := int(math.Round(float64(mid) * 0.8))

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		dy := float64(row-mid) * cellAspect
		line := make([]rune, width)
		for col := 0; col < width; col++ {
			dx := float64(col)
			switch {
			case col == 0 && row == mid:
				line[col] = coneViewer
			case col == screenCol:
				if abs(row-mid) <= screenHalf {
					line[col] = coneScreen
				} else {
					line[col] = coneEmpty
				}
			case col > 0 && math.Hypot(dx, dy) <= length && math.Abs(math.Atan2(dy, dx)) <= half:
				line[col] = coneFill
			default:
				line[col] = coneEmpty
			}
		}
		rows[row] = string(line)
	}
	return rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cone is the diagram card.
type Cone struct {
	result   fov.Result
	distance float64
	unit     fov.Unit
	width    int
	height   int
}

func NewCone() *Cone {
	return &Cone{width: 40, height: 9}
}

// SetState updates what the diagram shows.
func (c *Cone) SetState(setup fov.ViewingSetup, result fov.Result) {
	c.result = result
	c.distance = setup.Distance
	c.unit = setup.Unit
}

// SetSize sets the card width and the diagram height in rows.
func (c *Cone) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Caption is the label shown under the diagram.
func (c *Cone) Caption() string {
	return fmt.Sprintf("%s %s viewing distance", FormatValue(c.distance, fov.RangeFor(c.unit).Step), c.unit.Abbrev())
}

func (c *Cone) String() string {
	inner := cardInnerWidth(c.width)
	color := RatingColor(fov.Classify(c.result.HorizontalFOV))

	fill := lipgloss.NewStyle().Foreground(color)
	viewer := lipgloss.NewStyle().Foreground(Primary).Bold(true)
	screen := TextStyles.Muted

	rows := RenderCone(c.result.HorizontalFOV, inner, c.height)
	log.RenderTrace("Cone", "%dx%d hfov=%.1f", inner, len(rows), c.result.HorizontalFOV)
	styled := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, r := range row {
			switch r {
			case coneViewer:
				b.WriteString(viewer.Render(string(r)))
			case coneFill:
				b.WriteString(fill.Render(string(r)))
			case coneScreen:
				b.WriteString(screen.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		styled[i] = b.String()
	}

	caption := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).
		Render(TextStyles.Secondary.Render(c.Caption()))
	content := lipgloss.JoinVertical(lipgloss.Left, strings.Join(styled, "\n"), caption)
	return CardStyle().Width(c.width - 2).Render(content)
}
