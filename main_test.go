package main

import (
	"bytes"
	"testing"

	"tvfov/config"
	"tvfov/fov"
	"tvfov/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSetup(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		name     string
		in       inputFlags
		expected fov.ViewingSetup
	}{
		{
			name:     "config defaults",
			expected: fov.ViewingSetup{Distance: 8, DiagonalInches: 65, Unit: fov.Feet},
		},
		{
			name:     "distance and diagonal",
			in:       inputFlags{distance: 10, distanceSet: true, diagonal: 77, diagonalSet: true},
			expected: fov.ViewingSetup{Distance: 10, DiagonalInches: 77, Unit: fov.Feet},
		},
		{
			name:     "unit alone converts the default distance",
			in:       inputFlags{unit: "cm", unitSet: true},
			expected: fov.ViewingSetup{Distance: 240, DiagonalInches: 65, Unit: fov.Centimeters},
		},
		{
			name:     "unit with distance takes the distance as given",
			in:       inputFlags{unit: "centimeters", unitSet: true, distance: 300, distanceSet: true},
			expected: fov.ViewingSetup{Distance: 300, DiagonalInches: 65, Unit: fov.Centimeters},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSetup(cfg, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := resolveSetup(cfg, inputFlags{unit: "yards", unitSet: true})
	assert.Error(t, err)
}

func TestGuideCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"guide"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), fov.RatingIdeal.Label)
}

func TestWriteReport(t *testing.T) {
	t.Run("valid setup", func(t *testing.T) {
		var out bytes.Buffer
		setup := fov.ViewingSetup{Distance: 8, DiagonalInches: 65, Unit: fov.Feet}
		require.NoError(t, writeReport(&out, setup, report.FormatText))
		assert.Contains(t, out.String(), "32.9°")
	})

	t.Run("zero distance is rejected", func(t *testing.T) {
		var out bytes.Buffer
		setup := fov.ViewingSetup{Distance: 0, DiagonalInches: 65, Unit: fov.Feet}
		err := writeReport(&out, setup, report.FormatJSON)
		assert.ErrorIs(t, err, fov.ErrInvalidDistance)
		assert.Empty(t, out.String())
	})

	t.Run("zero diagonal is rejected", func(t *testing.T) {
		var out bytes.Buffer
		setup := fov.ViewingSetup{Distance: 8, DiagonalInches: 0, Unit: fov.Feet}
		assert.ErrorIs(t, writeReport(&out, setup, report.FormatText), fov.ErrInvalidDiagonal)
	})
}
