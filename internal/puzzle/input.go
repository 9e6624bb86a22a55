package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InputFunc supplies the raw input for a day.
type InputFunc func(d Day) (string, error)

// InputPath returns the conventional location of a day's input inside dir.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("input%02d.txt", day))
}

// ReadInput loads and formats the input for day from dir.
func ReadInput(dir string, day int) (string, error) {
	raw, err := os.ReadFile(InputPath(dir, day))
	if err != nil {
		return "", fmt.Errorf("reading input for day %d: %w", day, err)
	}
	return Format(string(raw)), nil
}

// FileInput reads inputs from dir.
func FileInput(dir string) InputFunc {
	return func(d Day) (string, error) {
		return ReadInput(dir, d.Number)
	}
}

// SampleInput serves the sample embedded in each day package.
func SampleInput(d Day) (string, error) {
	if d.Sample == "" {
		return "", fmt.Errorf("day %d has no sample", d.Number)
	}
	return Format(d.Sample), nil
}

// Format normalises line endings and strips trailing whitespace and
// leading blank lines. Leading spaces on the first line are preserved
// because some puzzles draw pictures that start with indentation.
func Format(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.TrimRight(s, " \t\n")
	for {
		line, rest, ok := strings.Cut(s, "\n")
		if !ok || strings.TrimSpace(line) != "" {
			break
		}
		s = rest
	}
	return s
}
