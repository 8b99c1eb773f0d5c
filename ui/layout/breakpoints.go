package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the calculator renders properly in.
	MinWidth = 50

	// CompactWidth triggers compact mode features.
	CompactWidth = 70

	// StandardWidth is the threshold for placing the diagram beside the controls.
	StandardWidth = 100

	// FullWidth is the threshold for full layout with all features.
	FullWidth = 120
)

// Height breakpoints
const (
	// MinHeight is the absolute minimum terminal height.
	MinHeight = 16

	// CompactHeight triggers compact mode features.
	CompactHeight = 24

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 32

	// FullHeight is the threshold for full layout.
	FullHeight = 44
)

// Card constraints
const (
	// CardMinWidth is the narrowest a content column gets.
	CardMinWidth = 40

	// CardMaxWidth keeps a single column from stretching across wide terminals.
	CardMaxWidth = 72

	// ColumnGap separates the two columns in side-by-side layout.
	ColumnGap = 2
)

// Cone diagram constraints
const (
	ConeMinWidth  = 20
	ConeMaxWidth  = 60
	ConeMinHeight = 5
	ConeMaxHeight = 13
)

// Menu constraints
const (
	// MenuMinHeight is a single line of key hints.
	MenuMinHeight = 1

	// MenuStandardHeight is the standard menu height.
	MenuStandardHeight = 2

	// MenuMaxHeight is the maximum menu height.
	MenuMaxHeight = 3
)

// Component constraints
const (
	// ErrBoxHeight is the fixed error box height.
	ErrBoxHeight = 1

	// HeaderHeight is the title and subtitle.
	HeaderHeight = 3
)

// Overlay constraints
const (
	// OverlayMaxWidth is the maximum overlay width.
	OverlayMaxWidth = 70

	// OverlayMinWidth is the minimum overlay width.
	OverlayMinWidth = 30

	// OverlayMargin is the minimum margin from terminal edges.
	OverlayMargin = 2
)
