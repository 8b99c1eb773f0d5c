// Package snapshot provides golden file testing for rendered terminal output.
// Output is normalized (ANSI stripped, trailing spaces trimmed) before it is
// compared, so golden files stay readable and colour-profile independent.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// GoldenDir is the default directory for golden files.
const GoldenDir = "testdata/golden"

// UpdateEnvVar rewrites golden files instead of comparing when set to 1.
const UpdateEnvVar = "UPDATE_GOLDEN"

var (
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	oscRegex  = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap provides snapshot assertions bound to one test.
type Snap struct {
	t         *testing.T
	goldenDir string
	update    bool
}

// New creates a new Snap instance for the given test.
func New(t *testing.T) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv(UpdateEnvVar) == "1",
	}
}

// WithDir sets a custom golden file directory.
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// WithUpdate forces update mode on or off.
func (s *Snap) WithUpdate(update bool) *Snap {
	s.update = update
	return s
}

// Assert compares actual output against the golden file called name.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()

	goldenPath := filepath.Join(s.goldenDir, name+".golden")
	normalized := normalizeOutput(actual)

	if s.update {
		if err := os.MkdirAll(s.goldenDir, 0755); err != nil {
			s.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(normalized), 0644); err != nil {
			s.t.Fatalf("failed to write golden file: %v", err)
		}
		s.t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.t.Fatalf("Golden file not found: %s\nRun with %s=1 to create it.\nActual output:\n%s",
				goldenPath, UpdateEnvVar, normalized)
		}
		s.t.Fatalf("failed to read golden file: %v", err)
	}

	if string(expected) != normalized {
		s.t.Errorf("Snapshot mismatch for %s\n\nExpected:\n%s\n\nActual:\n%s\n\nRun with %s=1 to update.",
			name, string(expected), normalized, UpdateEnvVar)
	}
}

// AssertContains checks that the normalized output contains substr.
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that the normalized output does not contain substr.
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertMaxWidth fails if any line is wider than width cells.
func (s *Snap) AssertMaxWidth(actual string, width int) {
	s.t.Helper()
	if w := Width(actual); w > width {
		s.t.Errorf("Output is %d cells wide, want at most %d\nActual:\n%s", w, width, normalizeOutput(actual))
	}
}

// AssertMaxHeight fails if the output has more than height lines.
func (s *Snap) AssertMaxHeight(actual string, height int) {
	s.t.Helper()
	if n := Lines(actual); n > height {
		s.t.Errorf("Output is %d lines tall, want at most %d\nActual:\n%s", n, height, normalizeOutput(actual))
	}
}

func normalizeOutput(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes ANSI escape codes and OSC 8 hyperlinks.
func StripANSI(s string) string {
	s = ansiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the line count of the rendered output.
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the widest line of the rendered output in terminal cells.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(StripANSI(s), "\n") {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
