package fov

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

// Reference: 65" 16:9 screen viewed from 8 ft.
// width  = 65 * 16 / sqrt(337) ~ 56.652"
// height = 65 * 9 / sqrt(337)  ~ 31.867"
// hFOV   = 2 * atan(56.652 / 192) ~ 32.879 deg
// vFOV   = 2 * atan(31.867 / 192) ~ 18.847 deg
// ideal  = 56.652 / (2 * tan(20 deg)) / 12 ~ 6.485 ft
func TestCompute_65InchAt8Feet(t *testing.T) {
	r := Compute(ViewingSetup{Distance: 8, DiagonalInches: 65, Unit: Feet})

	assert.InDelta(t, 56.652, r.ScreenWidthInches, 0.001)
	assert.InDelta(t, 31.867, r.ScreenHeightInches, 0.001)
	assert.InDelta(t, 32.879, r.HorizontalFOV, 0.001)
	assert.InDelta(t, 18.847, r.VerticalFOV, 0.001)
	assert.InDelta(t, 6.485, r.IdealDistance, 0.001)
	assert.Equal(t, RatingGood, Classify(r.HorizontalFOV))
}

func TestCompute_MatchesClosedForm(t *testing.T) {
	r := Compute(ViewingSetup{Distance: 10, DiagonalInches: 77, Unit: Feet})

	diag := math.Sqrt(16*16 + 9*9)
	width := 77 * 16 / diag
	height := 77 * 9 / diag
	wantH := 2 * math.Atan(width/(2*120)) * (180 / math.Pi)
	wantV := 2 * math.Atan(height/(2*120)) * (180 / math.Pi)
	wantIdeal := width / (2 * math.Tan((40*math.Pi/180)/2)) / 12

	assert.InDelta(t, width, r.ScreenWidthInches, 1e-12)
	assert.InDelta(t, height, r.ScreenHeightInches, 1e-12)
	assert.InDelta(t, wantH, r.HorizontalFOV, 1e-12)
	assert.InDelta(t, wantV, r.VerticalFOV, 1e-12)
	assert.InDelta(t, wantIdeal, r.IdealDistance, 1e-12)
}

func TestCompute_VerticalBelowHorizontal(t *testing.T) {
	for diag := DiagonalRange.Min; diag <= DiagonalRange.Max; diag += 7 {
		for d := 3.0; d <= 20; d += 1.5 {
			r := Compute(ViewingSetup{Distance: d, DiagonalInches: diag, Unit: Feet})
			assert.Less(t, r.VerticalFOV, r.HorizontalFOV, "diag=%v distance=%v", diag, d)
			assert.Greater(t, r.VerticalFOV, 0.0)
			assert.Less(t, r.HorizontalFOV, 180.0)
		}
	}
}

func TestCompute_DecreasesWithDistance(t *testing.T) {
	prev := math.Inf(1)
	for d := 3.0; d <= 20; d += 0.5 {
		r := Compute(ViewingSetup{Distance: d, DiagonalInches: 65, Unit: Feet})
		assert.Less(t, r.HorizontalFOV, prev, "distance=%v", d)
		prev = r.HorizontalFOV
	}
}

func TestCompute_IncreasesWithDiagonal(t *testing.T) {
	prev := 0.0
	for diag := 32.0; diag <= 100; diag++ {
		r := Compute(ViewingSetup{Distance: 8, DiagonalInches: diag, Unit: Feet})
		assert.Greater(t, r.HorizontalFOV, prev, "diagonal=%v", diag)
		prev = r.HorizontalFOV
	}
}

func TestScreenSize_AspectRatio(t *testing.T) {
	for _, diag := range []float64{1, 32, 55, 65, 77.5, 100, 150} {
		w, h := ScreenSize(diag)
		assert.InDelta(t, 16.0/9.0, w/h, 1e-12, "diagonal=%v", diag)
		assert.InDelta(t, diag, math.Hypot(w, h), 1e-9, "diagonal=%v", diag)
	}
}

func TestCompute_UnitInvariance(t *testing.T) {
	for _, feet := range []float64{3, 6.5, 8, 12, 20} {
		cm := feet * CentimetersPerFoot
		inFeet := Compute(ViewingSetup{Distance: feet, DiagonalInches: 65, Unit: Feet})
		inCm := Compute(ViewingSetup{Distance: cm, DiagonalInches: 65, Unit: Centimeters})

		assert.InDelta(t, inFeet.HorizontalFOV, inCm.HorizontalFOV, tolerance, "feet=%v", feet)
		assert.InDelta(t, inFeet.VerticalFOV, inCm.VerticalFOV, tolerance, "feet=%v", feet)
		assert.InDelta(t, inFeet.IdealDistance*CentimetersPerFoot, inCm.IdealDistance, tolerance)
	}
}

func TestCompute_IdealDistanceYieldsReferenceAngle(t *testing.T) {
	for _, unit := range []Unit{Feet, Centimeters} {
		for _, diag := range []float64{32, 43, 65, 85, 100} {
			ideal := Compute(ViewingSetup{Distance: 1, DiagonalInches: diag, Unit: unit}).IdealDistance
			r := Compute(ViewingSetup{Distance: ideal, DiagonalInches: diag, Unit: unit})
			assert.InDelta(t, ReferenceFOV, r.HorizontalFOV, tolerance, "unit=%v diagonal=%v", unit, diag)
		}
	}
}

func TestCompute_IdealDistanceIndependentOfInputDistance(t *testing.T) {
	a := Compute(ViewingSetup{Distance: 3, DiagonalInches: 65, Unit: Feet})
	b := Compute(ViewingSetup{Distance: 20, DiagonalInches: 65, Unit: Feet})
	assert.Equal(t, a.IdealDistance, b.IdealDistance)
}

func TestCompute_ZeroDistanceDoesNotDivideByZero(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
	}{
		{name: "zero", distance: 0},
		{name: "negative", distance: -4},
		{name: "nan", distance: math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Result
			require.NotPanics(t, func() {
				r = Compute(ViewingSetup{Distance: tt.distance, DiagonalInches: 65, Unit: Feet})
			})
			assert.Equal(t, MaxFOV, r.HorizontalFOV)
			assert.Equal(t, MaxFOV, r.VerticalFOV)
			assert.False(t, math.IsNaN(r.IdealDistance))
			assert.Equal(t, RatingVeryClose, Classify(r.HorizontalFOV))
		})
	}
}

func TestCompute_ZeroDiagonal(t *testing.T) {
	r := Compute(ViewingSetup{Distance: 8, DiagonalInches: 0, Unit: Feet})
	assert.Zero(t, r.ScreenWidthInches)
	assert.Zero(t, r.ScreenHeightInches)
	assert.Zero(t, r.HorizontalFOV)
	assert.Zero(t, r.VerticalFOV)
	assert.Zero(t, r.IdealDistance)
}

func TestCompute_Deterministic(t *testing.T) {
	setup := ViewingSetup{Distance: 250, DiagonalInches: 75, Unit: Centimeters}
	assert.Equal(t, Compute(setup), Compute(setup))
}

func TestIdealDistanceFor_SMPTE(t *testing.T) {
	ideal := IdealDistanceFor(65, Feet, 30)
	r := Compute(ViewingSetup{Distance: ideal, DiagonalInches: 65, Unit: Feet})
	assert.InDelta(t, 30.0, r.HorizontalFOV, tolerance)

	assert.Zero(t, IdealDistanceFor(65, Feet, 0))
	assert.Zero(t, IdealDistanceFor(65, Feet, 180))
}

func TestViewingSetup_Validate(t *testing.T) {
	tests := []struct {
		name    string
		setup   ViewingSetup
		wantErr error
	}{
		{name: "valid", setup: ViewingSetup{Distance: 8, DiagonalInches: 65}},
		{name: "zero distance", setup: ViewingSetup{Distance: 0, DiagonalInches: 65}, wantErr: ErrInvalidDistance},
		{name: "nan distance", setup: ViewingSetup{Distance: math.NaN(), DiagonalInches: 65}, wantErr: ErrInvalidDistance},
		{name: "infinite distance", setup: ViewingSetup{Distance: math.Inf(1), DiagonalInches: 65}, wantErr: ErrInvalidDistance},
		{name: "negative diagonal", setup: ViewingSetup{Distance: 8, DiagonalInches: -1}, wantErr: ErrInvalidDiagonal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
