package parser

import (
	"strings"

	"github.com/fjglira/mdsite/internal/domain"
)

// parseInlines scans s left to right and produces its inline node
// sequence. Code spans bind tightest, then emphasis and strong, then
// links and images. Anything without a well-formed closer stays literal.
func parseInlines(s string) []domain.Inline {
	var nodes []domain.Inline
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, &domain.Text{Value: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && isEscapable(s[i+1]):
			text.WriteByte(s[i+1])
			i += 2
		case c == '`':
			run := runLength(s, i, '`')
			delim := strings.Repeat("`", run)
			if end := findDelimiter(s, i+run, delim); end >= 0 {
				flush()
				nodes = append(nodes, &domain.CodeSpan{Text: s[i+run : end]})
				i = end + run
			} else {
				text.WriteString(delim)
				i += run
			}
		case c == '*' || c == '_':
			if node, next := parseEmphasis(s, i); node != nil {
				flush()
				nodes = append(nodes, node)
				i = next
			} else {
				text.WriteByte(c)
				i++
			}
		case c == '!' && i+1 < len(s) && s[i+1] == '[':
			if node, next := parseImage(s, i); node != nil {
				flush()
				nodes = append(nodes, node)
				i = next
			} else {
				text.WriteByte(c)
				i++
			}
		case c == '[':
			if node, next := parseLink(s, i); node != nil {
				flush()
				nodes = append(nodes, node)
				i = next
			} else {
				text.WriteByte(c)
				i++
			}
		default:
			text.WriteByte(c)
			i++
		}
	}
	flush()

	return nodes
}

// parseEmphasis parses * or _ emphasis or strong starting at i. A run of
// two or more markers opens strong. Returns nil when no well-formed
// closer exists, leaving the marker literal.
func parseEmphasis(s string, i int) (domain.Inline, int) {
	c := s[i]
	marker := string(c)
	strong := runLength(s, i, c) >= 2
	if strong {
		marker = strings.Repeat(string(c), 2)
	}

	open := i + len(marker)
	for end := open; ; end++ {
		end = findClosing(s, end, marker)
		if end < 0 {
			return nil, 0
		}
		inner := s[open:end]
		if inner == "" || inner[0] == ' ' || inner[len(inner)-1] == ' ' {
			continue
		}
		children := parseInlines(inner)
		if strong {
			return &domain.Strong{Children: children}, end + len(marker)
		}
		return &domain.Emphasis{Children: children}, end + len(marker)
	}
}

// parseLink parses [text](href) starting at the opening bracket.
func parseLink(s string, i int) (domain.Inline, int) {
	label, rest := matchBrackets(s, i)
	if rest < 0 || rest >= len(s) || s[rest] != '(' {
		return nil, 0
	}
	end := findDelimiter(s, rest+1, ")")
	if end < 0 {
		return nil, 0
	}
	return &domain.Link{
		Href:     strings.TrimSpace(s[rest+1 : end]),
		Children: parseInlines(label),
	}, end + 1
}

// parseImage parses ![alt](src) starting at the bang. Alt text is kept
// literal, never inline-parsed.
func parseImage(s string, i int) (domain.Inline, int) {
	label, rest := matchBrackets(s, i+1)
	if rest < 0 || rest >= len(s) || s[rest] != '(' {
		return nil, 0
	}
	end := findDelimiter(s, rest+1, ")")
	if end < 0 {
		return nil, 0
	}
	return &domain.Image{
		Src: strings.TrimSpace(s[rest+1 : end]),
		Alt: label,
	}, end + 1
}

// matchBrackets returns the label inside balanced square brackets opening
// at i and the index just past the closing bracket, or -1 when the
// brackets never balance.
func matchBrackets(s string, i int) (string, int) {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[i+1 : j], j + 1
			}
		}
	}
	return "", -1
}

// findDelimiter returns the index of the next occurrence of delim at or
// after start, skipping backslash escapes. Returns -1 when absent.
func findDelimiter(s string, start int, delim string) int {
	for i := start; i+len(delim) <= len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if strings.HasPrefix(s[i:], delim) {
			return i
		}
	}
	return -1
}

// findClosing finds the next occurrence of an emphasis marker at or after
// start, skipping backslash escapes and backtick spans, which bind
// tighter than emphasis.
func findClosing(s string, start int, marker string) int {
	for i := start; i+len(marker) <= len(s); i++ {
		switch {
		case s[i] == '\\':
			i++
		case s[i] == '`':
			run := runLength(s, i, '`')
			end := findDelimiter(s, i+run, strings.Repeat("`", run))
			if end < 0 {
				i += run - 1
			} else {
				i = end + run - 1
			}
		case strings.HasPrefix(s[i:], marker):
			return i
		}
	}
	return -1
}

func runLength(s string, i int, c byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == c {
		n++
	}
	return n
}

func isEscapable(c byte) bool {
	return strings.IndexByte("\\`*_{}[]()#+-.!>", c) >= 0
}
