package inspect

import (
	"fmt"
	"strings"
	"time"

	"tvfov/fov"
	"tvfov/ui/layout"
)

// SnapshotVersion is bumped when the JSON shape changes.
const SnapshotVersion = "1.0.0"

// Snapshot is the full UI state at one point in time.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`

	Terminal TerminalInfo `json:"terminal"`
	AppState AppStateInfo `json:"app_state"`

	// Calculation holds the inputs and everything derived from them.
	Calculation CalculationInfo `json:"calculation"`

	Layout      LayoutInfo       `json:"layout"`
	Components  *Node            `json:"components,omitempty"`
	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// State is the current app state ("default", "edit", "unit", "help").
	State string `json:"state"`

	HasOverlay  bool   `json:"has_overlay"`
	OverlayType string `json:"overlay_type,omitempty"`

	// Focus is the control adjusted by the arrow keys.
	Focus string `json:"focus"`

	ErrorMessage  string `json:"error_message,omitempty"`
	StatusMessage string `json:"status_message,omitempty"`
}

// CalculationInfo mirrors what the readout and guide cards display.
type CalculationInfo struct {
	Inputs fov.ViewingSetup `json:"inputs"`
	Result fov.Result       `json:"result"`
	Rating fov.Rating       `json:"rating"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	Mode        string          `json:"mode"`
	ColumnWidth int             `json:"column_width"`
	SideBySide  bool            `json:"side_by_side"`
	ConeWidth   int             `json:"cone_width"`
	ConeHeight  int             `json:"cone_height"`
	MenuHeight  int             `json:"menu_height"`
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideGuide      bool `json:"hide_guide"`
	HideCone       bool `json:"hide_cone"`
	HideDimensions bool `json:"hide_dimensions"`
	CompactSliders bool `json:"compact_sliders"`
	HideSubtitle   bool `json:"hide_subtitle"`
	HideHeaderGap  bool `json:"hide_header_gap"`
	ShowMinWarning bool `json:"show_min_warning"`
}

// BreakpointInfo describes one responsive threshold and whether it is hit.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`
	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   SnapshotVersion,
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

func (s *Snapshot) WithAppState(state AppStateInfo) *Snapshot {
	s.AppState = state
	return s
}

// WithCalculation records the inputs and the result computed from them.
func (s *Snapshot) WithCalculation(setup fov.ViewingSetup, result fov.Result) *Snapshot {
	s.Calculation = CalculationInfo{
		Inputs: setup,
		Result: result,
		Rating: fov.Classify(result.HorizontalFOV),
	}
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:        c.Mode.String(),
		ColumnWidth: c.ColumnWidth,
		SideBySide:  c.SideBySide,
		ConeWidth:   c.ConeWidth,
		ConeHeight:  c.ConeHeight,
		MenuHeight:  c.MenuHeight,
		Degradation: DegradationInfo{
			HideGuide:      d.HideGuide,
			HideCone:       d.HideCone,
			HideDimensions: d.HideDimensions,
			CompactSliders: d.CompactSliders,
			HideSubtitle:   d.HideSubtitle,
			HideHeaderGap:  d.HideHeaderGap,
			ShowMinWarning: d.ShowMinWarning,
		},
	}

	guideHeight, coneHeight := layout.GuideHideHeight, layout.ConeHideHeight
	if c.SideBySide {
		guideHeight, coneHeight = layout.GuideHideHeightSideBySide, layout.ConeHideHeightSideBySide
	}
	s.Breakpoints = []BreakpointInfo{
		{Name: "side_by_side", Threshold: layout.StandardWidth, Active: c.SideBySide, Dimension: "width"},
		{Name: "compact_sliders", Threshold: layout.CompactSliderWidth, Active: d.CompactSliders, Dimension: "width"},
		{Name: "hide_guide", Threshold: guideHeight, Active: d.HideGuide, Dimension: "height"},
		{Name: "hide_cone", Threshold: coneHeight, Active: d.HideCone, Dimension: "height"},
		{Name: "hide_dimensions", Threshold: layout.DimensionsHideHeight, Active: d.HideDimensions, Dimension: "height"},
		{Name: "hide_subtitle", Threshold: layout.SubtitleHideHeight, Active: d.HideSubtitle, Dimension: "height"},
		{Name: "hide_header_gap", Threshold: layout.HeaderGapHideHeight, Active: d.HideHeaderGap, Dimension: "height"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("State: %s (focus: %s)\n", s.AppState.State, s.AppState.Focus))
	if s.AppState.ErrorMessage != "" {
		b.WriteString(fmt.Sprintf("Error: %s\n", s.AppState.ErrorMessage))
	}
	if s.AppState.StatusMessage != "" {
		b.WriteString(fmt.Sprintf("Status: %s\n", s.AppState.StatusMessage))
	}

	calc := s.Calculation
	b.WriteString("\n--- Calculation ---\n")
	b.WriteString(fmt.Sprintf("Distance: %g %s\n", calc.Inputs.Distance, calc.Inputs.Unit.Abbrev()))
	b.WriteString(fmt.Sprintf("Diagonal: %g in\n", calc.Inputs.DiagonalInches))
	b.WriteString(fmt.Sprintf("Horizontal FOV: %.1f° (%s)\n", calc.Result.HorizontalFOV, calc.Rating.Label))
	b.WriteString(fmt.Sprintf("Vertical FOV: %.1f°\n", calc.Result.VerticalFOV))

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Column width: %d\n", s.Layout.ColumnWidth))
	b.WriteString(fmt.Sprintf("Side by side: %v\n", s.Layout.SideBySide))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))
	if !node.Visible {
		b.WriteString(" hidden")
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
