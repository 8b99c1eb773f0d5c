package ui

import (
	"strings"

	"tvfov/keys"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(Primary)

var separator = " • "
var verticalSeparator = " │ "

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	// StateEdit is shown while a value is being typed in.
	StateEdit
	// StateOverlay is shown while the guide or unit selector is open.
	StateOverlay
)

// menuGroup is a run of options separated from the next by a vertical bar.
type menuGroup []keys.KeyName

var (
	adjustGroup = menuGroup{keys.KeyLeft, keys.KeyRight, keys.KeyBigLeft, keys.KeyBigRight, keys.KeyTab, keys.KeyEdit}
	unitGroup   = menuGroup{keys.KeyFeet, keys.KeyCentimeters, keys.KeyUnit}
	systemGroup = menuGroup{keys.KeyCopy, keys.KeyHelp, keys.KeyQuit}

	defaultMenuGroups = []menuGroup{adjustGroup, unitGroup, systemGroup}
	editMenuGroups    = []menuGroup{{keys.KeySubmit, keys.KeyCancel}}
	overlayMenuGroups = []menuGroup{{keys.KeySubmit, keys.KeyCancel}}
)

type Menu struct {
	groups        []menuGroup
	height, width int
	state         MenuState

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

func NewMenu() *Menu {
	return &Menu{
		groups:  defaultMenuGroups,
		state:   StateDefault,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// KeyDown returns the highlighted key, or -1.
func (m *Menu) KeyDown() keys.KeyName {
	return m.keyDown
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	switch state {
	case StateEdit:
		m.groups = editMenuGroups
	case StateOverlay:
		m.groups = overlayMenuGroups
	default:
		m.groups = defaultMenuGroups
	}
}

// State returns the current menu state.
func (m *Menu) State() MenuState {
	return m.state
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// compactMenuGroups is used when the full menu does not fit on one line.
var compactMenuGroups = []menuGroup{{keys.KeyLeft, keys.KeyRight, keys.KeyEdit}, {keys.KeyHelp, keys.KeyQuit}}

func (m *Menu) String() string {
	text := m.render(m.groups)
	if m.state == StateDefault && m.width > 0 && lipgloss.Width(text) > m.width {
		text = m.render(compactMenuGroups)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, text)
}

func (m *Menu) render(groups []menuGroup) string {
	var s strings.Builder

	for gi, group := range groups {
		// The first group holds the actions used most and is highlighted.
		inActionGroup := gi == 0 && m.state == StateDefault

		for i, k := range group {
			binding := keys.GlobalkeyBindings[k]

			localKeyStyle, localDescStyle := keyStyle, descStyle
			if inActionGroup {
				localKeyStyle, localDescStyle = actionGroupStyle, actionGroupStyle
			}
			if m.keyDown == k {
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if gi != len(groups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}
	return s.String()
}
