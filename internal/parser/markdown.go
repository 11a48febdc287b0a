package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fjglira/mdsite/internal/domain"
)

// MarkdownParser parses Markdown into the native Document model.
//
// Parsing runs in two passes: block segmentation over lines (this file),
// then inline scanning within each textual block (inline.go). Nothing
// here returns an error: unrecognized or malformed constructs degrade to
// literal text.
type MarkdownParser struct{}

// NewMarkdownParser creates a new MarkdownParser.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

// SupportedExtensions returns the file extensions this parser handles.
func (p *MarkdownParser) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

var patterns = struct {
	heading      *regexp.Regexp
	rule         *regexp.Regexp
	closingFence *regexp.Regexp
	unordered    *regexp.Regexp
	ordered      *regexp.Regexp
}{
	heading:      regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*$`),
	rule:         regexp.MustCompile(`^ {0,3}(?:(?:-\s*){3,}|(?:\*\s*){3,}|(?:_\s*){3,})$`),
	closingFence: regexp.MustCompile("^`{3,}\\s*$"),
	unordered:    regexp.MustCompile(`^[-*]\s+(.*)$`),
	ordered:      regexp.MustCompile(`^(\d{1,9})\.\s+(.*)$`),
}

// Parse segments the source into blocks. It never fails.
func (p *MarkdownParser) Parse(content []byte) *domain.Document {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return &domain.Document{}
	}
	return &domain.Document{Blocks: parseBlocks(strings.Split(text, "\n"))}
}

func parseBlocks(lines []string) []domain.Block {
	var blocks []domain.Block

	i := 0
	for i < len(lines) {
		line := lines[i]
		switch {
		case strings.TrimSpace(line) == "":
			i++
		case strings.HasPrefix(line, "```"):
			var cb *domain.CodeBlock
			cb, i = parseFence(lines, i)
			blocks = append(blocks, cb)
		case patterns.rule.MatchString(line):
			blocks = append(blocks, &domain.ThematicBreak{})
			i++
		case patterns.heading.MatchString(line):
			m := patterns.heading.FindStringSubmatch(line)
			blocks = append(blocks, &domain.Heading{
				Level:   len(m[1]),
				Inlines: parseInlines(m[2]),
			})
			i++
		case strings.HasPrefix(line, ">"):
			var bq *domain.Blockquote
			bq, i = parseBlockquote(lines, i)
			blocks = append(blocks, bq)
		case patterns.unordered.MatchString(line):
			var l *domain.List
			l, i = parseList(lines, i, false)
			blocks = append(blocks, l)
		case patterns.ordered.MatchString(line):
			var l *domain.List
			l, i = parseList(lines, i, true)
			blocks = append(blocks, l)
		default:
			var par *domain.Paragraph
			par, i = parseParagraph(lines, i)
			blocks = append(blocks, par)
		}
	}

	return blocks
}

// parseFence consumes a fenced code block opening at lines[start]. An
// unterminated fence extends to the end of input.
func parseFence(lines []string, start int) (*domain.CodeBlock, int) {
	info := strings.TrimSpace(strings.TrimLeft(lines[start], "`"))
	var lang string
	if fields := strings.Fields(info); len(fields) > 0 {
		lang = fields[0]
	}

	var body []string
	for i := start + 1; i < len(lines); i++ {
		if patterns.closingFence.MatchString(lines[i]) {
			return &domain.CodeBlock{Language: lang, Text: strings.Join(body, "\n")}, i + 1
		}
		body = append(body, lines[i])
	}
	return &domain.CodeBlock{Language: lang, Text: strings.Join(body, "\n")}, len(lines)
}

// parseBlockquote strips the `>` prefix from consecutive quoted lines and
// parses the stripped text as nested blocks.
func parseBlockquote(lines []string, start int) (*domain.Blockquote, int) {
	var inner []string
	i := start
	for ; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], ">") {
			break
		}
		stripped := strings.TrimPrefix(lines[i], ">")
		stripped = strings.TrimPrefix(stripped, " ")
		inner = append(inner, stripped)
	}
	return &domain.Blockquote{Blocks: parseBlocks(inner)}, i
}

// parseList consumes consecutive list item lines of one kind. Indented
// lines continue the current item; a blank line or any non-item line ends
// the list.
func parseList(lines []string, start int, ordered bool) (*domain.List, int) {
	list := &domain.List{Ordered: ordered, Start: 1}
	if ordered {
		m := patterns.ordered.FindStringSubmatch(lines[start])
		if n, err := strconv.Atoi(m[1]); err == nil {
			list.Start = n
		}
	}

	var current []string
	flush := func() {
		if current != nil {
			list.Items = append(list.Items, domain.ListItem{
				Inlines: parseInlines(strings.Join(current, "\n")),
			})
			current = nil
		}
	}

	i := start
loop:
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			break
		}

		var m []string
		if ordered {
			m = patterns.ordered.FindStringSubmatch(line)
		} else {
			m = patterns.unordered.FindStringSubmatch(line)
		}

		switch {
		case m != nil:
			flush()
			current = []string{m[len(m)-1]}
		case strings.HasPrefix(line, " ") && current != nil:
			current = append(current, strings.TrimSpace(line))
		default:
			break loop
		}
	}
	flush()

	return list, i
}

// parseParagraph collects text lines until a blank line or the start of a
// structural block.
func parseParagraph(lines []string, start int) (*domain.Paragraph, int) {
	var para []string
	i := start
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" || (i > start && startsBlock(line)) {
			break
		}
		para = append(para, strings.TrimSpace(line))
	}
	return &domain.Paragraph{Inlines: parseInlines(strings.Join(para, "\n"))}, i
}

// startsBlock reports whether a line opens a structural block, ending any
// paragraph in progress.
func startsBlock(line string) bool {
	return strings.HasPrefix(line, "```") ||
		strings.HasPrefix(line, ">") ||
		patterns.rule.MatchString(line) ||
		patterns.heading.MatchString(line) ||
		patterns.unordered.MatchString(line) ||
		patterns.ordered.MatchString(line)
}
