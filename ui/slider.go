package ui

import (
	"fmt"
	"strconv"
	"strings"

	"tvfov/fov"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	sliderFillStyle   = lipgloss.NewStyle().Foreground(Primary)
	sliderTrackStyle  = lipgloss.NewStyle().Foreground(Track)
	sliderThumbStyle  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	sliderValueStyle  = lipgloss.NewStyle().Foreground(TextPrimary).Bold(true)
	sliderFocusMarker = lipgloss.NewStyle().Foreground(Primary).Bold(true).Render("▸ ")
)

// Slider renders a labelled value with a horizontal track.
type Slider struct {
	label   string
	value   float64
	unit    string
	rng     fov.Range
	focused bool
	compact bool
	width   int
}

// NewSlider creates a slider for the given range.
func NewSlider(label string, rng fov.Range) *Slider {
	return &Slider{label: label, rng: rng, width: 40}
}

// SetValue sets the displayed value. Values outside the range are shown as
// typed but the thumb is pinned to the nearest end.
func (s *Slider) SetValue(v float64) {
	s.value = v
}

// SetRange updates the bounds, e.g. after a unit change.
func (s *Slider) SetRange(rng fov.Range) {
	s.rng = rng
}

// SetUnit sets the unit label shown after the slider title.
func (s *Slider) SetUnit(unit string) {
	s.unit = unit
}

func (s *Slider) SetFocused(focused bool) {
	s.focused = focused
}

// SetCompact hides the min/max labels at either end of the track.
func (s *Slider) SetCompact(compact bool) {
	s.compact = compact
}

func (s *Slider) SetWidth(width int) {
	s.width = width
}

// Focused reports whether the slider has keyboard focus.
func (s *Slider) Focused() bool {
	return s.focused
}

// FormatValue renders v with the precision of step: 0.5 steps show one
// decimal, whole steps none.
func FormatValue(v, step float64) string {
	if step == float64(int64(step)) && v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (s *Slider) title() string {
	if s.unit == "" {
		return s.label
	}
	return fmt.Sprintf("%s (%s)", s.label, s.unit)
}

// Track returns the unstyled track of the given width with the thumb at the
// slider's position.
func (s *Slider) Track(width int) string {
	if width < 1 {
		return ""
	}
	pos := int(s.rng.Fraction(s.value)*float64(width-1) + 0.5)
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", width-1-pos)
}

func (s *Slider) String() string {
	prefix := "  "
	if s.focused {
		prefix = sliderFocusMarker
	}

	value := sliderValueStyle.Render(FormatValue(s.value, s.rng.Step))
	titleWidth := s.width - 2 - lipgloss.Width(value) - 1
	title := runewidth.Truncate(s.title(), max(titleWidth, 1), "…")
	titleStyle := TextStyles.Secondary
	if s.focused {
		titleStyle = TextStyles.Primary
	}
	gap := max(s.width-2-runewidth.StringWidth(title)-lipgloss.Width(value), 1)
	header := prefix + titleStyle.Render(title) + strings.Repeat(" ", gap) + value

	var minLabel, maxLabel string
	if !s.compact {
		minLabel = FormatValue(s.rng.Min, s.rng.Step) + " "
		maxLabel = " " + FormatValue(s.rng.Max, s.rng.Step)
	}
	trackWidth := max(s.width-2-len(minLabel)-len(maxLabel), 1)
	track := s.Track(trackWidth)
	thumb := strings.IndexRune(track, '●')
	styled := sliderFillStyle.Render(track[:thumb]) +
		sliderThumbStyle.Render("●") +
		sliderTrackStyle.Render(track[thumb+len("●"):])

	body := "  " + TextStyles.Muted.Render(minLabel) + styled + TextStyles.Muted.Render(maxLabel)
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
