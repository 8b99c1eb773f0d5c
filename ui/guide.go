package ui

import (
	"fmt"
	"strings"

	"tvfov/fov"
	"tvfov/log"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Guide is the FOV reference card: the guideline bands, the current band
// highlighted, and the ideal distance for the 40° reference angle.
type Guide struct {
	setup  fov.ViewingSetup
	result fov.Result
	width  int
}

func NewGuide() *Guide {
	return &Guide{width: 40}
}

func (g *Guide) SetState(setup fov.ViewingSetup, result fov.Result) {
	g.setup = setup
	g.result = result
}

func (g *Guide) SetWidth(width int) {
	g.width = width
}

// IdealDistanceText is the headline of the ideal distance box.
func IdealDistanceText(result fov.Result, unit fov.Unit) string {
	return fmt.Sprintf("Ideal distance: %.1f %s", result.IdealDistance, unit.Abbrev())
}

// GuideLines renders the reference bands as plain lines, marking current.
func GuideLines(current fov.Level) []string {
	lines := make([]string, 0, len(fov.Guidelines()))
	for _, r := range fov.Guidelines() {
		marker := " "
		if r.Level == current {
			marker = "▸"
		}
		lines = append(lines, fmt.Sprintf("%s ● %-8s %s", marker, r.Range, r.Description))
	}
	return lines
}

func (g *Guide) String() string {
	inner := cardInnerWidth(g.width)
	current := fov.Classify(g.result.HorizontalFOV)
	log.RenderTrace("Guide", "width=%d band=%s", inner, current.Label)

	var b strings.Builder
	b.WriteString(TextStyles.Title.Render("FOV Reference Guide"))
	b.WriteString("\n")
	for i, line := range GuideLines(current.Level) {
		band := fov.Guidelines()[i]
		line = runewidth.Truncate(line, inner, "…")
		style := TextStyles.Secondary
		if band.Level == current.Level {
			style = TextStyles.Primary.Bold(true)
		}
		// Color just the dot.
		dot := strings.IndexRune(line, '●')
		if dot >= 0 {
			b.WriteString(style.Render(line[:dot]))
			b.WriteString(lipgloss.NewStyle().Foreground(RatingColor(band)).Render("●"))
			b.WriteString(style.Render(line[dot+len("●"):]))
		} else {
			b.WriteString(style.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(TextStyles.Muted.Render(runewidth.Truncate(
		fmt.Sprintf("For THX-recommended 40° FOV with your %s\" TV:", FormatValue(g.setup.DiagonalInches, fov.DiagonalRange.Step)),
		inner, "…")))
	b.WriteString("\n")
	b.WriteString(TextStyles.Title.Render(IdealDistanceText(g.result, g.setup.Unit)))

	return CardStyle().Width(g.width - 2).Render(b.String())
}

// DimensionsText is the screen size footer.
func DimensionsText(result fov.Result) string {
	return fmt.Sprintf("Screen dimensions: %.1f\" × %.1f\" (16:9)", result.ScreenWidthInches, result.ScreenHeightInches)
}
