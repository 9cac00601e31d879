package domain

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/mouse-blink/svlint/internal/syntax"
)

const ignoreDirective = "svlint:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(rule string) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(rule)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// comment is one comment of the source text.
type comment struct {
	start, end int
	text       string
	// afterCode is set once any code precedes the comment.
	afterCode bool
}

// scanComments finds the // and /* */ comments of source, skipping string
// literals.
func scanComments(source []byte) []comment {
	var (
		comments []comment
		seenCode bool
	)

	for i := 0; i < len(source); {
		switch {
		case source[i] == '"':
			seenCode = true
			i++

			for i < len(source) && source[i] != '"' && source[i] != '\n' {
				if source[i] == '\\' {
					i++
				}
				i++
			}
			i++
		case bytes.HasPrefix(source[i:], []byte("//")):
			end := i
			for end < len(source) && source[end] != '\n' {
				end++
			}

			comments = append(comments, comment{start: i, end: end, text: string(source[i:end]), afterCode: seenCode})
			i = end
		case bytes.HasPrefix(source[i:], []byte("/*")):
			end := bytes.Index(source[i+2:], []byte("*/"))
			if end < 0 {
				end = len(source)
			} else {
				end += i + 4
			}

			comments = append(comments, comment{start: i, end: end, text: string(source[i:end]), afterCode: seenCode})
			i = end
		default:
			if !unicode.IsSpace(rune(source[i])) {
				seenCode = true
			}
			i++
		}
	}

	return comments
}

// ignoreIndex answers whether a failure of a rule on a line is suppressed.
type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

func buildIgnoreIndex(source []byte, lines *syntax.LineIndex) ignoreIndex {
	idx := ignoreIndex{line: make(map[int]ignoreRule)}

	for _, c := range scanComments(source) {
		r, ok := parseIgnoreDirective(c.text)
		if !ok {
			continue
		}

		if !c.afterCode {
			mergeIgnoreRule(&idx.file, r)
			continue
		}

		targetLine, _ := lines.Position(c.start)

		if isLeadingComment(targetLine, c.start, lines, source) {
			endLine, _ := lines.Position(max(c.end-1, c.start))
			targetLine = endLine + 1
		}

		current := idx.line[targetLine]
		mergeIgnoreRule(&current, r)
		idx.line[targetLine] = current
	}

	return idx
}

func (idx ignoreIndex) ignores(rule string, line int) bool {
	if idx.file.ignores(rule) {
		return true
	}

	return idx.line[line].ignores(rule)
}

func isLeadingComment(line int, offset int, lines *syntax.LineIndex, source []byte) bool {
	start := lines.LineStart(line)
	if start < 0 || offset < start || offset > len(source) {
		return false
	}

	for _, b := range source[start:offset] {
		if !unicode.IsSpace(rune(b)) {
			return false
		}
	}

	return true
}
