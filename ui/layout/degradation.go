package layout

// Degradation holds flags indicating which UI features should be hidden or simplified.
// Features are listed in order of degradation priority (first to hide).
type Degradation struct {
	HideGuide      bool // Reference guide card
	HideCone       bool // Cone diagram card
	HideDimensions bool // Screen dimensions footer
	CompactSliders bool // Drop slider end labels (width < 70)
	HideSubtitle   bool // Header subtitle line
	HideHeaderGap  bool // Blank line under the header

	// Critical degradation
	ShowMinWarning bool // Terminal too small warning (below MinWidth/MinHeight)
}

// Threshold constants for degradation. Side-by-side layout stacks fewer cards
// per column, so it tolerates shorter terminals.
const (
	GuideHideHeight           = 44
	GuideHideHeightSideBySide = 30
	ConeHideHeight            = 34
	ConeHideHeightSideBySide  = 20
	DimensionsHideHeight      = 22
	SubtitleHideHeight        = 20
	HeaderGapHideHeight       = MinHeight + 1
	CompactSliderWidth        = CompactWidth
)

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	guideHeight, coneHeight := GuideHideHeight, ConeHideHeight
	if c.SideBySide {
		guideHeight, coneHeight = GuideHideHeightSideBySide, ConeHideHeightSideBySide
	}

	return Degradation{
		HideGuide:      c.TerminalHeight < guideHeight,
		HideCone:       c.TerminalHeight < coneHeight,
		HideDimensions: c.TerminalHeight < DimensionsHideHeight,
		CompactSliders: c.TerminalWidth < CompactSliderWidth,
		HideSubtitle:   c.TerminalHeight < SubtitleHideHeight || (c.TerminalHeight < CompactHeight && !c.SideBySide),
		HideHeaderGap:  c.TerminalHeight < HeaderGapHideHeight,

		ShowMinWarning: c.ShowMinWarning,
	}
}

// IsCompactMode returns true if any card is hidden.
func (d Degradation) IsCompactMode() bool {
	return d.HideGuide || d.HideCone
}

// ShouldShowCone returns true if the cone diagram should be rendered.
func (d Degradation) ShouldShowCone() bool {
	return !d.HideCone
}

// ShouldShowGuide returns true if the reference guide should be rendered.
func (d Degradation) ShouldShowGuide() bool {
	return !d.HideGuide
}
