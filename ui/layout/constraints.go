package layout

// Constraints holds the computed layout constraints for all components.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// ColumnWidth is the width of each content column.
	ColumnWidth int
	// ContentHeight is what remains after header, menu and error box.
	ContentHeight int
	SliderWidth   int
	ConeWidth     int
	ConeHeight    int
	MenuWidth     int
	MenuHeight    int
	ErrBoxWidth   int
	ErrBoxHeight  int

	// Layout flags
	SideBySide     bool // Controls left, diagram and guide right
	ShowMinWarning bool // Terminal is below minimum size
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
	}

	c.Mode = DetermineMode(width, height)
	c.ShowMinWarning = width < MinWidth || height < MinHeight

	c.ErrBoxHeight = ErrBoxHeight
	c.ErrBoxWidth = width
	c.MenuHeight = computeMenuHeight(c.Mode)
	c.MenuWidth = width

	c.ContentHeight = max(height-HeaderHeight-c.MenuHeight-c.ErrBoxHeight, 1)

	c.SideBySide = width >= StandardWidth && c.Mode != LayoutMinimal
	if c.SideBySide {
		c.ColumnWidth = clamp((width-ColumnGap)/2, CardMinWidth, CardMaxWidth)
	} else {
		c.ColumnWidth = clamp(width, min(CardMinWidth, max(width, 1)), CardMaxWidth)
	}

	// Cards have a rounded border and horizontal padding of 2.
	inner := max(c.ColumnWidth-6, 1)
	c.SliderWidth = inner
	c.ConeWidth = clamp(inner, ConeMinWidth, ConeMaxWidth)
	c.ConeHeight = computeConeHeight(c.Mode)

	return c
}

// computeMenuHeight calculates the menu height based on mode.
func computeMenuHeight(mode LayoutMode) int {
	switch mode {
	case LayoutFull:
		return MenuMaxHeight
	case LayoutStandard:
		return MenuStandardHeight
	default:
		return MenuMinHeight
	}
}

// computeConeHeight picks an odd height so the viewer sits on the middle row.
func computeConeHeight(mode LayoutMode) int {
	switch mode {
	case LayoutFull:
		return ConeMaxHeight
	case LayoutStandard:
		return 9
	case LayoutCompact:
		return 7
	default:
		return ConeMinHeight
	}
}

// ComputeOverlayWidth calculates a constrained overlay width.
func ComputeOverlayWidth(termWidth, preferredWidth int) int {
	maxW := max(termWidth-OverlayMargin*2, 1)
	return clamp(preferredWidth, min(OverlayMinWidth, maxW), min(maxW, OverlayMaxWidth))
}

// Helper functions

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
