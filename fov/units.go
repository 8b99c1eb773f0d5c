package fov

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the unit system the viewing distance is expressed in.
type Unit int

const (
	Feet Unit = iota
	Centimeters
)

const (
	// InchesPerFoot converts feet to inches.
	InchesPerFoot = 12.0
	// CentimetersPerInch is exact by definition of the inch.
	CentimetersPerInch = 2.54
	// CentimetersPerFoot is used when the unit toggle converts a distance.
	CentimetersPerFoot = 30.48
)

// String returns the long name of the unit.
func (u Unit) String() string {
	switch u {
	case Feet:
		return "feet"
	case Centimeters:
		return "cm"
	default:
		return "unknown"
	}
}

// Abbrev returns the short label shown next to distances.
func (u Unit) Abbrev() string {
	switch u {
	case Feet:
		return "ft"
	case Centimeters:
		return "cm"
	default:
		return "?"
	}
}

// Other returns the unit the toggle switches to.
func (u Unit) Other() Unit {
	if u == Feet {
		return Centimeters
	}
	return Feet
}

// ParseUnit accepts "feet", "ft", "cm" and "centimeters" in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "feet", "foot", "ft":
		return Feet, nil
	case "cm", "centimeters", "centimetres":
		return Centimeters, nil
	default:
		return Feet, fmt.Errorf("invalid unit: %q (must be 'feet' or 'cm')", s)
	}
}

// MarshalText implements encoding.TextMarshaler so units serialize by name.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ToInches converts a distance in the given unit to inches.
func ToInches(distance float64, unit Unit) float64 {
	if unit == Centimeters {
		return distance / CentimetersPerInch
	}
	return distance * InchesPerFoot
}

// FromInches converts inches to a distance in the given unit.
func FromInches(inches float64, unit Unit) float64 {
	if unit == Centimeters {
		return inches * CentimetersPerInch
	}
	return inches / InchesPerFoot
}

// ConvertDistance converts a distance for a unit toggle. The result is
// rounded for display: to the nearest 0.5 ft or the nearest 10 cm.
// Repeated toggling is therefore lossy.
func ConvertDistance(distance float64, from, to Unit) float64 {
	if from == to {
		return distance
	}
	if to == Centimeters {
		return math.Round(distance*CentimetersPerFoot/10) * 10
	}
	return math.Round(distance/CentimetersPerFoot*2) / 2
}

// ParseNumber parses numeric entry text. Empty or unparsable input becomes 0,
// which the calculator guards against.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseWholeNumber parses entry text for whole-inch inputs. It reads an
// optional sign and the leading digits and ignores the rest, so "65.7" is 65.
// Input with no leading digits becomes 0.
func ParseWholeNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// Range describes the bounds of an adjustable input.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

var (
	feetRange       = Range{Min: 3, Max: 20, Step: 0.5}
	centimeterRange = Range{Min: 75, Max: 600, Step: 10}

	// DiagonalRange bounds the screen diagonal control, in inches.
	DiagonalRange = Range{Min: 32, Max: 100, Step: 1}
)

// RangeFor returns the distance bounds for a unit.
func RangeFor(unit Unit) Range {
	if unit == Centimeters {
		return centimeterRange
	}
	return feetRange
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Increment moves v up by n steps, clamped to the range.
func (r Range) Increment(v float64, n int) float64 {
	return r.Clamp(r.Clamp(v) + float64(n)*r.Step)
}

// Decrement moves v down by n steps, clamped to the range.
func (r Range) Decrement(v float64, n int) float64 {
	return r.Clamp(r.Clamp(v) - float64(n)*r.Step)
}

// Fraction returns where v sits within the range, in [0, 1].
func (r Range) Fraction(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return (r.Clamp(v) - r.Min) / (r.Max - r.Min)
}
