package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// recorder is a model that remembers the messages it was sent.
type recorder struct {
	keys   []string
	width  int
	height int
}

func (r *recorder) Init() tea.Cmd { return nil }

func (r *recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height
	case tea.KeyMsg:
		r.keys = append(r.keys, msg.String())
		if msg.String() == "x" {
			return r, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")} }
		}
	}
	return r, nil
}

func (r *recorder) View() string { return "\x1b[1mview\x1b[0m" }

func TestHarness(t *testing.T) {
	rec := &recorder{}
	h := New(t, rec, 80, 24)
	assert.Equal(t, 80, rec.width)

	h.SendKeys("tab", "shift+right", "l")
	h.Type("12")
	assert.Equal(t, []string{"tab", "shift+right", "l", "1", "2"}, rec.keys)

	h.RunCmd(h.SendKey("x"))
	assert.Equal(t, []string{"x", "y"}, rec.keys[len(rec.keys)-2:])

	h.Resize(120, 40)
	assert.Equal(t, 120, h.Width())
	assert.Equal(t, 40, rec.height)

	assert.Equal(t, "view", h.PlainView())
}

func TestNewKeySequence(t *testing.T) {
	rec := &recorder{}
	h := New(t, rec, 80, 24)
	NewKeySequence("e", "backspace", "enter").Play(h)
	assert.Equal(t, []string{"e", "backspace", "enter"}, rec.keys)
}
