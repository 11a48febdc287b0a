package renderer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/mdsite/internal/domain"
	"github.com/fjglira/mdsite/internal/parser"
	"github.com/fjglira/mdsite/internal/renderer"
)

var _ = Describe("Renderer", func() {
	var r *renderer.Renderer

	render := func(src string) string {
		doc := parser.NewMarkdownParser().Parse([]byte(src))
		return string(r.Render(doc))
	}

	BeforeEach(func() {
		r = renderer.New()
	})

	It("should render the heading-plus-emphasis scenario exactly", func() {
		Expect(render("# Hello\n\nWorld *there*.")).To(
			Equal("<h1>Hello</h1><p>World <em>there</em>.</p>"))
	})

	It("should render an empty document to an empty body", func() {
		Expect(r.Render(&domain.Document{})).To(BeEmpty())
	})

	It("should reproduce a plain paragraph verbatim inside one p element", func() {
		Expect(render("plain words here")).To(Equal("<p>plain words here</p>"))
	})

	It("should be idempotent", func() {
		doc := parser.NewMarkdownParser().Parse([]byte("# A\n\n- x\n- y\n\n> q"))
		Expect(r.Render(doc)).To(Equal(r.Render(doc)))
	})

	Describe("escaping", func() {
		It("should neutralize a script tag in source text", func() {
			out := render("hello <script>alert('x')</script>")
			Expect(out).To(ContainSubstring("&lt;script&gt;"))
			Expect(out).ToNot(ContainSubstring("<script>"))
		})

		It("should escape all five special characters", func() {
			Expect(render(`&<>"'`)).To(Equal("<p>&amp;&lt;&gt;&quot;&#39;</p>"))
		})

		It("should escape each text node exactly once through nesting", func() {
			out := render("**bold & *nested & deep***")
			Expect(out).ToNot(ContainSubstring("&amp;amp;"))
		})

		It("should escape code span content", func() {
			Expect(render("`a < b`")).To(Equal("<p><code>a &lt; b</code></p>"))
		})

		It("should escape attribute values", func() {
			out := render(`[x](u?a=1&b="2")`)
			Expect(out).To(Equal(`<p><a href="u?a=1&amp;b=&quot;2&quot;">x</a></p>`))
		})
	})

	Describe("block mapping", func() {
		It("should map heading levels to h1 through h6", func() {
			Expect(render("### Third")).To(Equal("<h3>Third</h3>"))
		})

		It("should render unordered lists", func() {
			Expect(render("- a\n- b")).To(Equal("<ul><li>a</li><li>b</li></ul>"))
		})

		It("should render ordered lists with a non-default start", func() {
			Expect(render("3. c\n4. d")).To(Equal(`<ol start="3"><li>c</li><li>d</li></ol>`))
		})

		It("should render ordered lists starting at one without a start attribute", func() {
			Expect(render("1. a")).To(Equal("<ol><li>a</li></ol>"))
		})

		It("should render code blocks with a language class", func() {
			Expect(render("```go\nfmt.Println(\"hi\")\n```")).To(
				Equal("<pre><code class=\"language-go\">fmt.Println(&quot;hi&quot;)\n</code></pre>"))
		})

		It("should render code blocks without a language hint plainly", func() {
			Expect(render("```\nx\n```")).To(Equal("<pre><code>x\n</code></pre>"))
		})

		It("should render blockquotes and thematic breaks", func() {
			Expect(render("> quote\n\n---")).To(
				Equal("<blockquote><p>quote</p></blockquote><hr>"))
		})
	})

	Describe("inline mapping", func() {
		It("should render strong, emphasis, and links", func() {
			Expect(render("**b** *i* [t](u)")).To(
				Equal(`<p><strong>b</strong> <em>i</em> <a href="u">t</a></p>`))
		})

		It("should render images with src and alt", func() {
			Expect(render("![logo](img.png)")).To(
				Equal(`<p><img src="img.png" alt="logo"></p>`))
		})
	})
})
