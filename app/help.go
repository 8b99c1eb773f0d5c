package app

import (
	"fmt"
	"strings"

	"tvfov/fov"
	"tvfov/ui"
)

// helpText is the body of the guide overlay: how the numbers are worked out
// and what each band means for the current screen.
func helpText(setup fov.ViewingSetup, result fov.Result) string {
	var b strings.Builder

	b.WriteString("Field of view is the angle your screen fills from where you sit. ")
	b.WriteString("THX recommends about 40° horizontally for a cinematic picture; ")
	b.WriteString("SMPTE suggests at least 30°.\n\n")

	for _, line := range ui.GuideLines(fov.Classify(result.HorizontalFOV).Level) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("For a %s\" 16:9 screen (%.1f\" × %.1f\") the 40° distance is %.1f %s.\n\n",
		ui.FormatValue(setup.DiagonalInches, fov.DiagonalRange.Step),
		result.ScreenWidthInches, result.ScreenHeightInches,
		result.IdealDistance, setup.Unit.Abbrev()))

	b.WriteString("Keys: tab or ↑/↓ picks a control, ←/→ adjust it (H/L by ten steps), ")
	b.WriteString("e types a value, f/c/u change the unit, y copies a summary, q quits.")
	return b.String()
}
