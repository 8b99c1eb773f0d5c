package ui

import (
	"tvfov/fov"
	"tvfov/inspect"

	"github.com/charmbracelet/lipgloss"
)

func (s *Slider) InspectNode() *inspect.Node {
	return inspect.NewNode("Slider").
		WithSize(s.width, 2).
		WithContent(s.title()).
		WithState("value", s.value).
		WithState("min", s.rng.Min).
		WithState("max", s.rng.Max).
		WithState("step", s.rng.Step).
		WithState("focused", s.focused).
		WithState("compact", s.compact)
}

func (r *Readout) InspectNode() *inspect.Node {
	angle := lipgloss.NewStyle().Foreground(RatingColor(r.rating)).Bold(true)
	return inspect.NewNode("Readout").
		WithSize(r.width, lipgloss.Height(r.String())).
		WithContent(FormatDegrees(r.result.HorizontalFOV)).
		WithState("horizontal_fov", r.result.HorizontalFOV).
		WithState("vertical_fov", r.result.VerticalFOV).
		WithState("rating", r.rating.Label).
		WithStyles(inspect.ExtractStyleInfo(angle))
}

func (c *Cone) InspectNode() *inspect.Node {
	return inspect.NewNode("Cone").
		WithSize(c.width, c.height+3).
		WithContent(c.Caption()).
		WithState("horizontal_fov", c.result.HorizontalFOV)
}

func (g *Guide) InspectNode() *inspect.Node {
	current := fov.Classify(g.result.HorizontalFOV)
	return inspect.NewNode("Guide").
		WithSize(g.width, lipgloss.Height(g.String())).
		WithContent(IdealDistanceText(g.result, g.setup.Unit)).
		WithState("current_band", current.Level.String()).
		WithState("ideal_distance", g.result.IdealDistance)
}

func (m *Menu) InspectNode() *inspect.Node {
	n := inspect.NewNode("Menu").
		WithSize(m.width, m.height).
		WithState("state", int(m.state))
	if m.keyDown >= 0 {
		n.WithState("key_down", int(m.keyDown))
	}
	return n
}

func (e *ErrBox) InspectNode() *inspect.Node {
	n := inspect.NewNode("ErrBox").WithSize(e.width, e.height).WithVisible(e.err != nil)
	if e.err != nil {
		n.WithContent(e.err.Error())
	}
	return n
}
