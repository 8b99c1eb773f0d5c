package overlay

import (
	"strings"

	"tvfov/fov"
	"tvfov/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UnitOption represents a selectable unit system
type UnitOption struct {
	Unit        fov.Unit
	Name        string
	Description string
}

// UnitSelectorOverlay lets the user pick the distance unit.
type UnitSelectorOverlay struct {
	Dismissed bool
	Selected  fov.Unit
	confirmed bool
	options   []UnitOption
	cursor    int
	width     int
}

// NewUnitSelectorOverlay creates a selector with the cursor on current.
func NewUnitSelectorOverlay(current fov.Unit) *UnitSelectorOverlay {
	options := []UnitOption{
		{
			Unit:        fov.Feet,
			Name:        "Feet",
			Description: "Distance from 3 to 20 ft in 0.5 ft steps.",
		},
		{
			Unit:        fov.Centimeters,
			Name:        "Centimeters",
			Description: "Distance from 75 to 600 cm in 10 cm steps.",
		},
	}

	cursor := 0
	for i, opt := range options {
		if opt.Unit == current {
			cursor = i
		}
	}

	return &UnitSelectorOverlay{
		Selected: current,
		options:  options,
		cursor:   cursor,
		width:    50,
	}
}

// HandleKeyPress processes a key press and returns true when the overlay
// should close.
func (m *UnitSelectorOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k", "left", "h", "shift+tab":
		m.moveCursor(-1)
		return false
	case "down", "j", "right", "l", "tab":
		m.moveCursor(1)
		return false
	case "enter", " ", "space":
		m.Selected = m.options[m.cursor].Unit
		m.confirmed = true
		m.Dismissed = true
		return true
	case "esc", "q":
		m.Dismissed = true
		return true
	default:
		return false
	}
}

// moveCursor moves the cursor up or down, wrapping around
func (m *UnitSelectorOverlay) moveCursor(delta int) {
	m.cursor = (m.cursor + delta + len(m.options)) % len(m.options)
}

// Confirmed reports whether a unit was picked rather than the dialog dismissed.
func (m *UnitSelectorOverlay) Confirmed() bool {
	return m.confirmed
}

// Render renders the unit selector overlay
func (m *UnitSelectorOverlay) Render() string {
	titleStyle := ui.TextStyles.Title

	selectedStyle := lipgloss.NewStyle().
		Foreground(ui.Primary).
		Bold(true)

	normalStyle := ui.TextStyles.Secondary
	descStyle := ui.TextStyles.Muted.PaddingLeft(4)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Distance Unit"))
	content.WriteString("\n\n")

	for i, opt := range m.options {
		prefix, nameStyle := "  ", normalStyle
		if i == m.cursor {
			prefix, nameStyle = "> ", selectedStyle
		}

		content.WriteString(prefix)
		content.WriteString(nameStyle.Render(opt.Name))
		content.WriteString("\n")
		content.WriteString(descStyle.Render(opt.Description))
		content.WriteString("\n\n")
	}

	content.WriteString(ui.TextStyles.Muted.Render(
		"[Enter] Select  [Esc] Cancel  [↑/↓] Navigate"))

	borderStyle := ui.OverlayStyle().Width(m.width)

	return borderStyle.Render(content.String())
}

// SetWidth sets the width of the overlay
func (m *UnitSelectorOverlay) SetWidth(width int) {
	m.width = width
}

// GetSelected returns the selected unit
func (m *UnitSelectorOverlay) GetSelected() fov.Unit {
	return m.Selected
}
