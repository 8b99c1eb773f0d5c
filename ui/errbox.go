package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(ErrorColor)
	infoStyle = lipgloss.NewStyle().Foreground(TextSecondary)
)

// ErrBox is a single line that shows the latest error or status message.
type ErrBox struct {
	height, width int
	err           error
	info          string
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
	e.info = ""
}

// SetInfo shows a status message in place of any error.
func (e *ErrBox) SetInfo(msg string) {
	e.info = msg
	e.err = nil
}

func (e *ErrBox) Clear() {
	e.err = nil
	e.info = ""
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// Err returns the error currently shown, if any.
func (e *ErrBox) Err() error {
	return e.err
}

// Info returns the status message currently shown, if any.
func (e *ErrBox) Info() string {
	return e.info
}

func (e *ErrBox) String() string {
	msg, style := e.info, infoStyle
	if e.err != nil {
		msg, style = e.err.Error(), errStyle
	}
	if e.width > 0 {
		msg = runewidth.Truncate(msg, e.width, "...")
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Top, style.Render(msg))
}
