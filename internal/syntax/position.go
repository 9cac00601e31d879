package syntax

import "sort"

// LineIndex resolves byte offsets to 1-based line and column numbers.
type LineIndex struct {
	starts []int
}

// NewLineIndex indexes the line starts of source.
func NewLineIndex(source []byte) *LineIndex {
	starts := []int{0}

	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &LineIndex{starts: starts}
}

// Position returns the line and column of offset. Columns count bytes.
func (li *LineIndex) Position(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}

	i := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1

	return i + 1, offset - li.starts[i] + 1
}

// LineStart returns the offset of the first byte of line, or -1.
func (li *LineIndex) LineStart(line int) int {
	if line <= 0 || line > len(li.starts) {
		return -1
	}

	return li.starts[line-1]
}

// Lines returns the number of lines.
func (li *LineIndex) Lines() int {
	return len(li.starts)
}
