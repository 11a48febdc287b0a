package renderer

import (
	"bytes"
	"fmt"

	"github.com/fjglira/mdsite/internal/domain"
)

// Renderer serializes a Document into an HTML body fragment. Rendering is
// deterministic: the same Document always yields byte-identical output.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render walks the document and emits HTML. Every text leaf is escaped
// exactly once, here and nowhere else.
func (r *Renderer) Render(doc *domain.Document) []byte {
	var p printer
	for _, b := range doc.Blocks {
		p.block(b)
	}
	return p.buf.Bytes()
}

type printer struct {
	buf bytes.Buffer
}

func (p *printer) block(b domain.Block) {
	switch b := b.(type) {
	case *domain.Heading:
		fmt.Fprintf(&p.buf, "<h%d>", b.Level)
		p.inlines(b.Inlines)
		fmt.Fprintf(&p.buf, "</h%d>", b.Level)
	case *domain.Paragraph:
		p.buf.WriteString("<p>")
		p.inlines(b.Inlines)
		p.buf.WriteString("</p>")
	case *domain.List:
		p.list(b)
	case *domain.CodeBlock:
		p.codeBlock(b)
	case *domain.Blockquote:
		p.buf.WriteString("<blockquote>")
		for _, inner := range b.Blocks {
			p.block(inner)
		}
		p.buf.WriteString("</blockquote>")
	case *domain.ThematicBreak:
		p.buf.WriteString("<hr>")
	}
}

func (p *printer) list(l *domain.List) {
	tag := "ul"
	if l.Ordered {
		tag = "ol"
	}
	if l.Ordered && l.Start != 1 {
		fmt.Fprintf(&p.buf, "<ol start=\"%d\">", l.Start)
	} else {
		fmt.Fprintf(&p.buf, "<%s>", tag)
	}
	for _, item := range l.Items {
		p.buf.WriteString("<li>")
		p.inlines(item.Inlines)
		p.buf.WriteString("</li>")
	}
	fmt.Fprintf(&p.buf, "</%s>", tag)
}

func (p *printer) codeBlock(cb *domain.CodeBlock) {
	if cb.Language != "" {
		fmt.Fprintf(&p.buf, "<pre><code class=\"language-%s\">", Escape(cb.Language))
	} else {
		p.buf.WriteString("<pre><code>")
	}
	p.buf.WriteString(Escape(cb.Text))
	if cb.Text != "" {
		p.buf.WriteByte('\n')
	}
	p.buf.WriteString("</code></pre>")
}

func (p *printer) inlines(nodes []domain.Inline) {
	for _, n := range nodes {
		p.inline(n)
	}
}

func (p *printer) inline(n domain.Inline) {
	switch n := n.(type) {
	case *domain.Text:
		p.buf.WriteString(Escape(n.Value))
	case *domain.Emphasis:
		p.buf.WriteString("<em>")
		p.inlines(n.Children)
		p.buf.WriteString("</em>")
	case *domain.Strong:
		p.buf.WriteString("<strong>")
		p.inlines(n.Children)
		p.buf.WriteString("</strong>")
	case *domain.CodeSpan:
		p.buf.WriteString("<code>")
		p.buf.WriteString(Escape(n.Text))
		p.buf.WriteString("</code>")
	case *domain.Link:
		fmt.Fprintf(&p.buf, "<a href=\"%s\">", Escape(n.Href))
		p.inlines(n.Children)
		p.buf.WriteString("</a>")
	case *domain.Image:
		fmt.Fprintf(&p.buf, "<img src=\"%s\" alt=\"%s\">", Escape(n.Src), Escape(n.Alt))
	}
}
