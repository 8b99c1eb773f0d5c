package overlay

import (
	"strings"

	"tvfov/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInputOverlay is a single-line numeric entry dialog.
type TextInputOverlay struct {
	input     textinput.Model
	title     string
	hint      string
	width     int
	submitted bool
	canceled  bool
}

// NewTextInputOverlay creates a dialog pre-filled with initialValue.
func NewTextInputOverlay(title, initialValue string) *TextInputOverlay {
	ti := textinput.New()
	ti.SetValue(initialValue)
	ti.CharLimit = 12
	ti.Prompt = "> "
	ti.Focus()
	ti.CursorEnd()

	return &TextInputOverlay{
		input: ti,
		title: title,
		width: 40,
	}
}

// numericRunes are the characters a typed number may contain. Partial input
// like "-" is kept and parsed to 0 on submit.
const numericRunes = "0123456789.-+eE"

func isNumeric(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune(numericRunes, r) {
			return false
		}
	}
	return true
}

// SetHint sets the muted line shown under the input, e.g. the allowed range.
func (t *TextInputOverlay) SetHint(hint string) {
	t.hint = hint
}

func (t *TextInputOverlay) SetWidth(width int) {
	t.width = width
	t.input.Width = width - 10
}

// HandleKeyPress processes a key press and returns true when the overlay
// should close.
func (t *TextInputOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		t.submitted = true
		return true
	case tea.KeyEsc, tea.KeyCtrlC:
		t.canceled = true
		return true
	case tea.KeyRunes:
		if !isNumeric(msg.Runes) {
			return false
		}
	}

	t.input, _ = t.input.Update(msg)
	return false
}

// IsSubmitted reports whether the value was confirmed with enter.
func (t *TextInputOverlay) IsSubmitted() bool {
	return t.submitted
}

// IsCanceled reports whether the dialog was dismissed.
func (t *TextInputOverlay) IsCanceled() bool {
	return t.canceled
}

// GetValue returns the text typed so far.
func (t *TextInputOverlay) GetValue() string {
	return t.input.Value()
}

// Render renders the dialog.
func (t *TextInputOverlay) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.Primary)
	hintStyle := ui.TextStyles.Muted

	var content strings.Builder
	content.WriteString(titleStyle.Render(t.title))
	content.WriteString("\n\n")
	content.WriteString(t.input.View())
	content.WriteString("\n\n")
	if t.hint != "" {
		content.WriteString(hintStyle.Render(t.hint))
		content.WriteString("\n")
	}
	content.WriteString(hintStyle.Render("[Enter] Apply  [Esc] Cancel"))

	return ui.OverlayStyle().Width(t.width).Render(content.String())
}
