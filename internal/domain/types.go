package domain

// Document is the parsed representation of one Markdown source file:
// an ordered sequence of block-level nodes. A Document is immutable once
// the parser returns it.
type Document struct {
	Blocks []Block
}

// Block is a block-level Markdown node. Exactly the types in this package
// implement it.
type Block interface {
	blockNode()
}

// Heading is an ATX heading, level 1 through 6.
type Heading struct {
	Level   int
	Inlines []Inline
}

// Paragraph is a run of text lines separated from its neighbors by blank
// lines (or by a structural block).
type Paragraph struct {
	Inlines []Inline
}

// List is an ordered or unordered list. Start is the number of the first
// item for ordered lists.
type List struct {
	Ordered bool
	Start   int
	Items   []ListItem
}

// ListItem is a single list entry.
type ListItem struct {
	Inlines []Inline
}

// CodeBlock is a fenced code block. Text is the raw content, never
// inline-parsed. Language is the first word of the fence info string,
// empty when none was given.
type CodeBlock struct {
	Language string
	Text     string
}

// Blockquote holds the blocks parsed from `>`-prefixed lines.
type Blockquote struct {
	Blocks []Block
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

func (*Heading) blockNode()       {}
func (*Paragraph) blockNode()     {}
func (*List) blockNode()          {}
func (*CodeBlock) blockNode()     {}
func (*Blockquote) blockNode()    {}
func (*ThematicBreak) blockNode() {}

// Inline is a span-level Markdown node nested within block text.
type Inline interface {
	inlineNode()
}

// Text is a literal run of characters. The renderer escapes it exactly
// once; the parser never stores pre-escaped text here.
type Text struct {
	Value string
}

// Emphasis wraps its children in <em>.
type Emphasis struct {
	Children []Inline
}

// Strong wraps its children in <strong>.
type Strong struct {
	Children []Inline
}

// CodeSpan is backtick-delimited literal text.
type CodeSpan struct {
	Text string
}

// Link is [children](href).
type Link struct {
	Href     string
	Children []Inline
}

// Image is ![alt](src).
type Image struct {
	Src string
	Alt string
}

func (*Text) inlineNode()     {}
func (*Emphasis) inlineNode() {}
func (*Strong) inlineNode()   {}
func (*CodeSpan) inlineNode() {}
func (*Link) inlineNode()     {}
func (*Image) inlineNode()    {}

// PageMeta is the front matter of a source file. Custom collects keys the
// envelope does not name.
type PageMeta struct {
	Title  string         `yaml:"title"`
	Author string         `yaml:"author"`
	Date   string         `yaml:"date"`
	Draft  bool           `yaml:"draft"`
	Custom map[string]any `yaml:",inline"`
}

// Page pairs a rendered HTML body with its destination path. Created by
// the site builder after rendering; written and discarded.
type Page struct {
	SourcePath string
	OutputPath string
	Title      string
	Meta       PageMeta
	Body       []byte
}
