package report

import (
	"bytes"
	"strings"
	"testing"

	"tvfov/fov"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = fov.ViewingSetup{Distance: 8, DiagonalInches: 65, Unit: fov.Feet}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"yml", FormatYAML},
		{" yaml ", FormatYAML},
		{"toml", FormatTOML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, json, yaml, toml")
}

func TestWrite_RoundTrip(t *testing.T) {
	want := New(fov.ViewingSetup{Distance: 240, DiagonalInches: 77, Unit: fov.Centimeters})

	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, want, format))
			assert.Contains(t, buf.String(), "cm")

			got, err := Decode(buf.Bytes(), format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestWrite_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(sample), FormatJSON))

	out := buf.String()
	assert.Contains(t, out, `"unit": "feet"`)
	assert.Contains(t, out, `"horizontal_fov_degrees":`)
	assert.Contains(t, out, `"label": "Good (SMPTE)"`)
	assert.NotContains(t, out, "Level")
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(sample), FormatText))

	out := buf.String()
	assert.Contains(t, out, "8.0 ft")
	assert.Contains(t, out, `56.7" × 31.9" (16:9)`)
	assert.Contains(t, out, "32.9°")
	assert.Contains(t, out, "Good (SMPTE)")
	assert.Contains(t, out, "18.8°")
	assert.Contains(t, out, "6.5 ft")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, New(sample), Format("xml")))

	_, err := Decode([]byte("x"), FormatText)
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	assert.Equal(t,
		`65" TV at 8.0 ft: 32.9° horizontal, 18.8° vertical FOV (Good (SMPTE)). Ideal distance for 40°: 6.5 ft.`,
		Summary(New(sample)))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "8.5 ft", FormatDistance(8.5, fov.Feet))
	assert.Equal(t, "240 cm", FormatDistance(240, fov.Centimeters))
}

func TestWriteGuide(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGuide(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+len(fov.Guidelines()))
	assert.Contains(t, lines[0], "RANGE")
	assert.Contains(t, lines[1], fov.Guidelines()[0].Label)
}
