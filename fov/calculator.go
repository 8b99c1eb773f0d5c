// Package fov computes the field of view a screen covers from a viewing
// position and rates it against THX and SMPTE viewing-angle guidelines.
//
// The screen is always assumed to be 16:9.
package fov

import (
	"errors"
	"fmt"
	"math"
)

const (
	// AspectWidth and AspectHeight define the fixed 16:9 screen shape.
	AspectWidth  = 16.0
	AspectHeight = 9.0

	// ReferenceFOV is the THX recommended horizontal angle, in degrees.
	ReferenceFOV = 40.0

	// MaxFOV is reported when the viewer is at (or behind) the screen.
	MaxFOV = 180.0
)

// aspectDiagonal is sqrt(16² + 9²).
var aspectDiagonal = math.Hypot(AspectWidth, AspectHeight)

var (
	ErrInvalidDistance = errors.New("distance must be greater than zero")
	ErrInvalidDiagonal = errors.New("diagonal must be greater than zero")
)

// ViewingSetup is the complete input of a calculation.
type ViewingSetup struct {
	// Distance from the viewer to the screen, in Unit.
	Distance float64 `json:"distance" yaml:"distance" toml:"distance"`
	// DiagonalInches is the screen diagonal, always in inches.
	DiagonalInches float64 `json:"diagonal_inches" yaml:"diagonal_inches" toml:"diagonal_inches"`
	Unit           Unit    `json:"unit" yaml:"unit" toml:"unit"`
}

// Validate reports whether the setup satisfies distance > 0 and diagonal > 0.
func (s ViewingSetup) Validate() error {
	if !(s.Distance > 0) || math.IsInf(s.Distance, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDistance, s.Distance)
	}
	if !(s.DiagonalInches > 0) || math.IsInf(s.DiagonalInches, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDiagonal, s.DiagonalInches)
	}
	return nil
}

// Result holds the values derived from a ViewingSetup.
type Result struct {
	HorizontalFOV      float64 `json:"horizontal_fov_degrees" yaml:"horizontal_fov_degrees" toml:"horizontal_fov_degrees"`
	VerticalFOV        float64 `json:"vertical_fov_degrees" yaml:"vertical_fov_degrees" toml:"vertical_fov_degrees"`
	ScreenWidthInches  float64 `json:"screen_width_inches" yaml:"screen_width_inches" toml:"screen_width_inches"`
	ScreenHeightInches float64 `json:"screen_height_inches" yaml:"screen_height_inches" toml:"screen_height_inches"`
	// IdealDistance is in the same unit as the input distance and yields
	// exactly ReferenceFOV horizontally.
	IdealDistance float64 `json:"ideal_distance" yaml:"ideal_distance" toml:"ideal_distance"`
}

// ScreenSize returns the width and height of a 16:9 screen with the given
// diagonal. Non-positive or NaN diagonals give a zero size.
func ScreenSize(diagonalInches float64) (width, height float64) {
	if !(diagonalInches > 0) {
		return 0, 0
	}
	width = diagonalInches * AspectWidth / aspectDiagonal
	height = diagonalInches * AspectHeight / aspectDiagonal
	return width, height
}

// Compute derives the field of view for a setup. It never panics: a distance
// of zero or less yields MaxFOV instead of dividing by zero.
func Compute(setup ViewingSetup) Result {
	width, height := ScreenSize(setup.DiagonalInches)
	distanceInches := ToInches(setup.Distance, setup.Unit)

	return Result{
		HorizontalFOV:      subtendedAngle(width, distanceInches),
		VerticalFOV:        subtendedAngle(height, distanceInches),
		ScreenWidthInches:  width,
		ScreenHeightInches: height,
		IdealDistance:      IdealDistanceFor(setup.DiagonalInches, setup.Unit, ReferenceFOV),
	}
}

// IdealDistanceFor returns the distance, in unit, at which a screen with the
// given diagonal spans targetDegrees horizontally.
func IdealDistanceFor(diagonalInches float64, unit Unit, targetDegrees float64) float64 {
	width, _ := ScreenSize(diagonalInches)
	if !(targetDegrees > 0) || targetDegrees >= MaxFOV {
		return 0
	}
	inches := width / (2 * math.Tan(radians(targetDegrees)/2))
	return FromInches(inches, unit)
}

// subtendedAngle returns the angle in degrees that an extent covers when seen
// from distance straight on.
func subtendedAngle(extent, distance float64) float64 {
	if extent <= 0 {
		return 0
	}
	if !(distance > 0) {
		return MaxFOV
	}
	return degrees(2 * math.Atan(extent/(2*distance)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
