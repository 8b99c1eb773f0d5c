package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyTab
	KeyLeft
	KeyRight
	KeyBigLeft
	KeyBigRight
	KeyEdit
	KeyFeet
	KeyCentimeters
	KeyUnit
	KeyCopy
	KeyHelp
	KeyQuit

	// Keys used inside overlays, not in the global map.
	KeySubmit
	KeyCancel
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":          KeyUp,
	"k":           KeyUp,
	"down":        KeyDown,
	"j":           KeyDown,
	"tab":         KeyTab,
	"shift+tab":   KeyTab,
	"left":        KeyLeft,
	"h":           KeyLeft,
	"right":       KeyRight,
	"l":           KeyRight,
	"shift+left":  KeyBigLeft,
	"H":           KeyBigLeft,
	"shift+right": KeyBigRight,
	"L":           KeyBigRight,
	"e":           KeyEdit,
	"enter":       KeyEdit,
	"f":           KeyFeet,
	"c":           KeyCentimeters,
	"u":           KeyUnit,
	"y":           KeyCopy,
	"?":           KeyHelp,
	"q":           KeyQuit,
	"ctrl+c":      KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch control"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "less"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "more"),
	),
	KeyBigLeft: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("H", "much less"),
	),
	KeyBigRight: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("L", "much more"),
	),
	KeyEdit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "type value"),
	),
	KeyFeet: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "feet"),
	),
	KeyCentimeters: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "centimeters"),
	),
	KeyUnit: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "unit"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "guide"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),

	// -- Special keybindings --

	KeySubmit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	KeyCancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}
