package controller

import (
	"time"

	m "github.com/mouse-blink/svlint/internal/model"
)

// Message types.
type tickMsg time.Time

type resultsMsg struct {
	results []m.FileResult
}

// List item types.
type fileItem struct {
	path       string
	failures   []m.Failure
	suppressed int
}

func (f fileItem) FilterValue() string {
	return f.path
}
