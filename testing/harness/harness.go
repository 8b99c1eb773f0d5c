// Package harness drives a Bubble Tea model from tests: it feeds key
// presses and resizes straight into Update and exposes the rendered view.
package harness

import (
	"testing"

	"tvfov/testing/snapshot"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing.
type Harness struct {
	t      *testing.T
	model  tea.Model
	width  int
	height int
}

// New creates a Harness for the given model and sends it an initial
// window size.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	h := &Harness{
		t:      t,
		model:  model,
		width:  width,
		height: height,
	}
	h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// SendMsg sends a tea.Msg to the model and returns the command it produced.
// Commands are not run; tests that care about them call RunCmd.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// specialKeys maps key names, as bubbletea prints them, to key types.
var specialKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEsc,
	"tab":         tea.KeyTab,
	"shift+tab":   tea.KeyShiftTab,
	"backspace":   tea.KeyBackspace,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"ctrl+c":      tea.KeyCtrlC,
	" ":           tea.KeySpace,
}

// KeyMsg builds the message bubbletea would deliver for the named key.
// Names it does not know are sent as typed runes.
func KeyMsg(key string) tea.KeyMsg {
	if t, ok := specialKeys[key]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: t, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// SendKey sends one key press by name, e.g. "l", "tab" or "shift+right".
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(KeyMsg(key))
}

// SendKeys sends each named key in order.
func (h *Harness) SendKeys(keys ...string) {
	for _, k := range keys {
		h.SendKey(k)
	}
}

// Type sends text one rune at a time, the way a terminal delivers typing.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendSpecialKey sends a special key (Enter, Tab, etc.)
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// RunCmd runs cmd and feeds its message back into the model. Batches are
// not unpacked. Do not pass commands that wait on timers.
func (h *Harness) RunCmd(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	return h.SendMsg(msg)
}

// Resize simulates a terminal resize
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// View returns the current rendered view
func (h *Harness) View() string {
	return h.model.View()
}

// PlainView returns the view with ANSI codes stripped.
func (h *Harness) PlainView() string {
	return snapshot.StripANSI(h.model.View())
}

// Model returns the underlying model (for type assertions)
func (h *Harness) Model() tea.Model {
	return h.model
}

func (h *Harness) Width() int {
	return h.width
}

func (h *Harness) Height() int {
	return h.height
}

// CommonSizes are the terminal sizes the layout breakpoints care about.
var CommonSizes = []TerminalSize{
	{Name: "tiny", Width: 40, Height: 12},
	{Name: "minimum", Width: 80, Height: 24},
	{Name: "compact", Width: 100, Height: 30},
	{Name: "standard", Width: 120, Height: 40},
	{Name: "large", Width: 200, Height: 50},
	{Name: "wide", Width: 200, Height: 24},
	{Name: "tall", Width: 60, Height: 60},
}

// TerminalSize represents a terminal size for testing
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// RunWithSizes runs a test function for each terminal size
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

// RunWithCommonSizes runs a test function for all common terminal sizes
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}

// KeySequence represents a sequence of key presses
type KeySequence []tea.Msg

// NewKeySequence creates a key sequence from key names.
func NewKeySequence(keys ...string) KeySequence {
	var seq KeySequence
	for _, key := range keys {
		seq = append(seq, KeyMsg(key))
	}
	return seq
}

// Play sends all messages in the sequence to the harness
func (seq KeySequence) Play(h *Harness) {
	for _, msg := range seq {
		h.SendMsg(msg)
	}
}
