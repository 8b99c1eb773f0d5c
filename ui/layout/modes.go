// Package layout provides responsive layout calculations for the TUI.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals (>= 120w x 44h).
	// Shows all components with generous spacing.
	LayoutFull LayoutMode = iota

	// LayoutStandard is for medium terminals (>= 100w x 32h).
	LayoutStandard

	// LayoutCompact is for smaller terminals (>= 50w x 16h).
	// Reduced spacing, smaller diagram.
	LayoutCompact

	// LayoutMinimal is for terminals below minimum size.
	// Shows a warning above whatever still fits.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode calculates the appropriate layout mode for the given dimensions.
func DetermineMode(width, height int) LayoutMode {
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}

	// Use the more restrictive dimension
	widthMode := determineWidthMode(width)
	heightMode := determineHeightMode(height)
	if widthMode > heightMode {
		return widthMode
	}
	return heightMode
}

func determineWidthMode(width int) LayoutMode {
	switch {
	case width >= FullWidth:
		return LayoutFull
	case width >= StandardWidth:
		return LayoutStandard
	case width >= MinWidth:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

func determineHeightMode(height int) LayoutMode {
	switch {
	case height >= FullHeight:
		return LayoutFull
	case height >= StandardHeight:
		return LayoutStandard
	case height >= MinHeight:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}
