// Package report renders a calculation for the non-interactive CLI.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"tvfov/fov"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding for Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists every supported format in help order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat accepts a format name case-insensitively. "yml" is an alias
// for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Report is the machine-readable shape of one calculation.
type Report struct {
	Inputs fov.ViewingSetup `json:"inputs" yaml:"inputs" toml:"inputs"`
	Result fov.Result       `json:"result" yaml:"result" toml:"result"`
	Rating fov.Rating       `json:"rating" yaml:"rating" toml:"rating"`
}

// New computes the result for setup and classifies it.
func New(setup fov.ViewingSetup) Report {
	result := fov.Compute(setup)
	return Report{
		Inputs: setup,
		Result: result,
		Rating: fov.Classify(result.HorizontalFOV),
	}
}

// Write encodes r to w in the given format.
func Write(w io.Writer, r Report, format Format) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		data, err = json.MarshalIndent(r, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(r)
	case FormatTOML:
		data, err = toml.Marshal(r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s report: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// Decode parses a report previously produced by Write. The text format is
// for people only and cannot be decoded.
func Decode(data []byte, format Format) (Report, error) {
	var (
		r   Report
		err error
	)
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &r)
	case FormatYAML:
		err = yaml.Unmarshal(data, &r)
	case FormatTOML:
		err = toml.Unmarshal(data, &r)
	default:
		return r, fmt.Errorf("cannot decode %q reports", format)
	}
	if err != nil {
		return r, fmt.Errorf("failed to decode %s report: %w", format, err)
	}
	// Level is not serialized; recover it from the angle.
	r.Rating.Level = fov.Classify(r.Result.HorizontalFOV).Level
	return r, nil
}

// FormatDistance renders a distance with the precision of its unit's step:
// one decimal for feet, none for centimeters.
func FormatDistance(d float64, unit fov.Unit) string {
	if unit == fov.Centimeters {
		return fmt.Sprintf("%.0f %s", d, unit.Abbrev())
	}
	return fmt.Sprintf("%.1f %s", d, unit.Abbrev())
}

func writeText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	lines := []string{
		"Viewing distance:\t" + FormatDistance(r.Inputs.Distance, r.Inputs.Unit),
		fmt.Sprintf("Screen diagonal:\t%g\"", r.Inputs.DiagonalInches),
		fmt.Sprintf("Screen size:\t%.1f\" × %.1f\" (16:9)", r.Result.ScreenWidthInches, r.Result.ScreenHeightInches),
		fmt.Sprintf("Horizontal FOV:\t%.1f°\t%s", r.Result.HorizontalFOV, r.Rating.Label),
		fmt.Sprintf("Vertical FOV:\t%.1f°", r.Result.VerticalFOV),
		fmt.Sprintf("Ideal distance:\t%s\t(%g° reference)", FormatDistance(r.Result.IdealDistance, r.Inputs.Unit), fov.ReferenceFOV),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Summary is the one-line description copied to the clipboard.
func Summary(r Report) string {
	return fmt.Sprintf("%g\" TV at %s: %.1f° horizontal, %.1f° vertical FOV (%s). Ideal distance for %g°: %s.",
		r.Inputs.DiagonalInches,
		FormatDistance(r.Inputs.Distance, r.Inputs.Unit),
		r.Result.HorizontalFOV,
		r.Result.VerticalFOV,
		r.Rating.Label,
		fov.ReferenceFOV,
		FormatDistance(r.Result.IdealDistance, r.Inputs.Unit),
	)
}

// WriteGuide prints the reference bands, one per line.
func WriteGuide(w io.Writer) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANGE\tRATING\tDESCRIPTION")
	for _, r := range fov.Guidelines() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Range, r.Label, r.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
