package controller

import (
	"slices"
	"strings"

	m "github.com/mouse-blink/svlint/internal/model"
)

type summary struct {
	files      int
	failed     int
	failures   int
	suppressed int
	errors     int
}

func summarize(results []m.FileResult) summary {
	var s summary

	for _, r := range results {
		s.files++
		s.failures += len(r.Failures)
		s.suppressed += r.Suppressed
		s.errors += len(r.Errors)

		if len(r.Failures) > 0 {
			s.failed++
		}
	}

	return s
}

// sortedResults returns results ordered by source path.
func sortedResults(results []m.FileResult) []m.FileResult {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b m.FileResult) int {
		return strings.Compare(string(a.Source.Origin), string(b.Source.Origin))
	})

	return out
}

// firstLine returns the first line of text without trailing whitespace.
func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")

	return strings.TrimRight(line, " \t\r")
}
