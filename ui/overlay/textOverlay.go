package overlay

import (
	"strings"

	"tvfov/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// TextOverlay shows read-only text until any key is pressed.
type TextOverlay struct {
	Dismissed bool
	title     string
	content   string
	width     int
}

// NewTextOverlay creates a text overlay. content may contain styled text;
// plain paragraphs are wrapped to the overlay width.
func NewTextOverlay(title, content string) *TextOverlay {
	return &TextOverlay{
		title:   title,
		content: content,
		width:   60,
	}
}

// HandleKeyPress dismisses the overlay on any key.
func (t *TextOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	t.Dismissed = true
	return true
}

func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

// Render renders the text overlay
func (t *TextOverlay) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.Primary)
	hintStyle := ui.TextStyles.Muted

	// Width includes the horizontal padding.
	inner := t.width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	if t.title != "" {
		b.WriteString(titleStyle.Render(t.title))
		b.WriteString("\n\n")
	}
	b.WriteString(wordwrap.String(t.content, inner))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Press any key to close"))

	return ui.OverlayStyle().Width(t.width).Render(b.String())
}
