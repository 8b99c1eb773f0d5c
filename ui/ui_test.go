package ui

import (
	"errors"
	"strings"
	"testing"

	"tvfov/fov"
	"tvfov/keys"
	"tvfov/testing/snapshot"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleSetup = fov.ViewingSetup{Distance: 8, DiagonalInches: 65, Unit: fov.Feet}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value, step float64
		expected    string
	}{
		{8, 0.5, "8.0"},
		{8.5, 0.5, "8.5"},
		{65, 1, "65"},
		{240, 10, "240"},
		{12.34, 1, "12.3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatValue(tt.value, tt.step))
	}
}

func TestSlider_Track(t *testing.T) {
	s := NewSlider("Viewing Distance", fov.RangeFor(fov.Feet))

	s.SetValue(3)
	assert.Equal(t, "●"+strings.Repeat("─", 9), s.Track(10))

	s.SetValue(20)
	assert.Equal(t, strings.Repeat("━", 9)+"●", s.Track(10))

	s.SetValue(11.5)
	track := s.Track(11)
	assert.Equal(t, 5, strings.Index(track, "●")/len("━"))

	s.SetValue(100)
	assert.True(t, strings.HasSuffix(s.Track(10), "●"), "out of range values pin the thumb")

	assert.Empty(t, s.Track(0))
}

func TestSlider_String(t *testing.T) {
	s := NewSlider("Viewing Distance", fov.RangeFor(fov.Feet))
	s.SetUnit("ft")
	s.SetValue(8)
	s.SetWidth(40)

	snap := snapshot.New(t)
	out := s.String()
	assert.Equal(t, 2, snapshot.Lines(out))
	snap.AssertContains(out, "Viewing Distance (ft)")
	snap.AssertContains(out, "8.0")
	snap.AssertContains(out, "3.0 ")
	snap.AssertContains(out, " 20.0")
	snap.AssertNotContains(out, "▸")
	snap.AssertMaxWidth(out, 40)

	s.SetFocused(true)
	s.SetCompact(true)
	out = s.String()
	snap.AssertContains(out, "▸ Viewing Distance")
	snap.AssertNotContains(out, "20.0")
}

func TestRenderCone(t *testing.T) {
	rows := RenderCone(40, 30, 8)
	require.Len(t, rows, 9, "height is rounded up to odd")

	for i, row := range rows {
		assert.Equal(t, 30, runewidth.StringWidth(row))
		if i == 4 {
			assert.True(t, strings.HasPrefix(row, "O"))
		} else {
			assert.False(t, strings.ContainsRune(row, 'O'))
		}
	}
	assert.True(t, strings.HasSuffix(rows[4], "█"))

	count := func(rows []string) int {
		n := 0
		for _, r := range rows {
			n += strings.Count(r, "░")
		}
		return n
	}
	narrow := count(RenderCone(20, 30, 9))
	wide := count(RenderCone(60, 30, 9))
	assert.Greater(t, wide, narrow)
	assert.Greater(t, narrow, 0)
}

func TestCone_Caption(t *testing.T) {
	c := NewCone()
	c.SetState(sampleSetup, fov.Compute(sampleSetup))
	assert.Equal(t, "8.0 ft viewing distance", c.Caption())

	cm := fov.ViewingSetup{Distance: 240, DiagonalInches: 65, Unit: fov.Centimeters}
	c.SetState(cm, fov.Compute(cm))
	assert.Equal(t, "240 cm viewing distance", c.Caption())

	c.SetSize(44, 7)
	snapshot.New(t).AssertMaxWidth(c.String(), 44)
}

func TestReadout(t *testing.T) {
	r := NewReadout()
	r.SetWidth(44)
	r.SetResult(fov.Compute(sampleSetup))

	snap := snapshot.New(t)
	out := r.String()
	snap.AssertContains(out, "Horizontal Field of View")
	snap.AssertContains(out, "32.9°")
	snap.AssertContains(out, "Good")
	snap.AssertContains(out, "Vertical FOV: 18.8°")
	snap.AssertMaxWidth(out, 44)
}

func TestFormatDegrees(t *testing.T) {
	assert.Equal(t, "40.0°", FormatDegrees(40))
	assert.Equal(t, "180.0°", FormatDegrees(fov.MaxFOV))
}

func TestGuideLines(t *testing.T) {
	lines := GuideLines(fov.LevelGood)
	require.Len(t, lines, len(fov.Guidelines()))

	marked := 0
	for i, line := range lines {
		if strings.HasPrefix(line, "▸") {
			marked++
			assert.Equal(t, fov.LevelGood, fov.Guidelines()[i].Level)
		}
		assert.Contains(t, line, fov.Guidelines()[i].Description)
	}
	assert.Equal(t, 1, marked)
}

func TestGuide_String(t *testing.T) {
	g := NewGuide()
	g.SetWidth(60)
	g.SetState(sampleSetup, fov.Compute(sampleSetup))

	snap := snapshot.New(t)
	out := g.String()
	snap.AssertContains(out, "FOV Reference Guide")
	snap.AssertContains(out, `your 65" TV`)
	snap.AssertContains(out, "Ideal distance: 6.5 ft")
	snap.AssertMaxWidth(out, 60)
}

func TestIdealDistanceText(t *testing.T) {
	cm := fov.ViewingSetup{Distance: 240, DiagonalInches: 65, Unit: fov.Centimeters}
	assert.Equal(t, "Ideal distance: 197.7 cm", IdealDistanceText(fov.Compute(cm), fov.Centimeters))
}

func TestDimensionsText(t *testing.T) {
	assert.Equal(t, `Screen dimensions: 56.7" × 31.9" (16:9)`, DimensionsText(fov.Compute(sampleSetup)))
}

func TestMenu(t *testing.T) {
	t.Run("full menu when wide", func(t *testing.T) {
		m := NewMenu()
		m.SetSize(200, 1)
		out := snapshot.StripANSI(m.String())
		assert.Contains(t, out, "centimeters")
		assert.Contains(t, out, "copy")
		assert.Contains(t, out, "H much less")
		assert.Contains(t, out, "L much more")
	})

	t.Run("compact menu when narrow", func(t *testing.T) {
		m := NewMenu()
		m.SetSize(60, 1)
		out := snapshot.StripANSI(m.String())
		assert.NotContains(t, out, "centimeters")
		assert.Contains(t, out, "quit")
		assert.LessOrEqual(t, snapshot.Width(out), 60)
	})

	t.Run("edit state", func(t *testing.T) {
		m := NewMenu()
		m.SetSize(80, 1)
		m.SetState(StateEdit)
		assert.Equal(t, StateEdit, m.State())
		out := snapshot.StripANSI(m.String())
		assert.Contains(t, out, "apply")
		assert.NotContains(t, out, "quit")
	})

	t.Run("keydown", func(t *testing.T) {
		m := NewMenu()
		assert.Equal(t, keys.KeyName(-1), m.KeyDown())
		m.Keydown(keys.KeyCopy)
		assert.Equal(t, keys.KeyCopy, m.KeyDown())
		m.ClearKeydown()
		assert.Equal(t, keys.KeyName(-1), m.KeyDown())
	})
}

func TestErrBox(t *testing.T) {
	e := NewErrBox()
	e.SetSize(20, 1)
	assert.Empty(t, strings.TrimSpace(snapshot.StripANSI(e.String())))

	e.SetError(errors.New("clipboard unavailable on this system"))
	out := snapshot.StripANSI(e.String())
	assert.Contains(t, out, "...")
	assert.LessOrEqual(t, snapshot.Width(out), 20)

	e.SetInfo("copied summary")
	assert.NoError(t, e.Err(), "a status message replaces the error")
	assert.Equal(t, "copied summary", e.Info())
	assert.Contains(t, snapshot.StripANSI(e.String()), "copied summary")

	e.Clear()
	assert.NoError(t, e.Err())
	assert.Empty(t, e.Info())
}
