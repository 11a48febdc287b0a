package parser_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/mdsite/internal/domain"
	"github.com/fjglira/mdsite/internal/parser"
)

// inlinesOf parses a single-paragraph input and returns its inline nodes.
func inlinesOf(src string) []domain.Inline {
	doc := parser.NewMarkdownParser().Parse([]byte(src))
	Expect(doc.Blocks).To(HaveLen(1))
	par, ok := doc.Blocks[0].(*domain.Paragraph)
	Expect(ok).To(BeTrue())
	return par.Inlines
}

var _ = Describe("inline parsing", func() {
	Describe("code spans", func() {
		It("should bind backtick spans", func() {
			Expect(inlinesOf("use `x > y` here")).To(Equal([]domain.Inline{
				&domain.Text{Value: "use "},
				&domain.CodeSpan{Text: "x > y"},
				&domain.Text{Value: " here"},
			}))
		})

		It("should support double-backtick spans containing backticks", func() {
			Expect(inlinesOf("a ``b ` c`` d")).To(Equal([]domain.Inline{
				&domain.Text{Value: "a "},
				&domain.CodeSpan{Text: "b ` c"},
				&domain.Text{Value: " d"},
			}))
		})

		It("should leave an unterminated backtick literal", func() {
			Expect(inlinesOf("a ` b")).To(Equal([]domain.Inline{
				&domain.Text{Value: "a ` b"},
			}))
		})

		It("should bind tighter than emphasis", func() {
			Expect(inlinesOf("*em `code` more*")).To(Equal([]domain.Inline{
				&domain.Emphasis{Children: []domain.Inline{
					&domain.Text{Value: "em "},
					&domain.CodeSpan{Text: "code"},
					&domain.Text{Value: " more"},
				}},
			}))
		})
	})

	Describe("emphasis and strong", func() {
		It("should parse single-marker emphasis", func() {
			Expect(inlinesOf("an *emphasized* word")).To(Equal([]domain.Inline{
				&domain.Text{Value: "an "},
				&domain.Emphasis{Children: []domain.Inline{&domain.Text{Value: "emphasized"}}},
				&domain.Text{Value: " word"},
			}))
		})

		It("should parse underscore emphasis", func() {
			Expect(inlinesOf("_quiet_")).To(Equal([]domain.Inline{
				&domain.Emphasis{Children: []domain.Inline{&domain.Text{Value: "quiet"}}},
			}))
		})

		It("should parse double-marker strong", func() {
			Expect(inlinesOf("**bold** and __also__")).To(Equal([]domain.Inline{
				&domain.Strong{Children: []domain.Inline{&domain.Text{Value: "bold"}}},
				&domain.Text{Value: " and "},
				&domain.Strong{Children: []domain.Inline{&domain.Text{Value: "also"}}},
			}))
		})

		It("should nest emphasis inside strong", func() {
			Expect(inlinesOf("**very *much* so**")).To(Equal([]domain.Inline{
				&domain.Strong{Children: []domain.Inline{
					&domain.Text{Value: "very "},
					&domain.Emphasis{Children: []domain.Inline{&domain.Text{Value: "much"}}},
					&domain.Text{Value: " so"},
				}},
			}))
		})

		It("should leave an unterminated marker literal", func() {
			Expect(inlinesOf("*oops")).To(Equal([]domain.Inline{
				&domain.Text{Value: "*oops"},
			}))
		})

		It("should leave spaced-out asterisks literal", func() {
			Expect(inlinesOf("2 * 3 * 4 = 24")).To(Equal([]domain.Inline{
				&domain.Text{Value: "2 * 3 * 4 = 24"},
			}))
		})

		It("should honor backslash escapes", func() {
			Expect(inlinesOf(`\*not em\*`)).To(Equal([]domain.Inline{
				&domain.Text{Value: "*not em*"},
			}))
		})
	})

	Describe("links and images", func() {
		It("should parse a link", func() {
			Expect(inlinesOf("see [Go](https://go.dev) now")).To(Equal([]domain.Inline{
				&domain.Text{Value: "see "},
				&domain.Link{Href: "https://go.dev", Children: []domain.Inline{&domain.Text{Value: "Go"}}},
				&domain.Text{Value: " now"},
			}))
		})

		It("should parse emphasis inside link text", func() {
			Expect(inlinesOf("[*em*](u)")).To(Equal([]domain.Inline{
				&domain.Link{Href: "u", Children: []domain.Inline{
					&domain.Emphasis{Children: []domain.Inline{&domain.Text{Value: "em"}}},
				}},
			}))
		})

		It("should leave a bracketed phrase without a target literal", func() {
			Expect(inlinesOf("[no url] here")).To(Equal([]domain.Inline{
				&domain.Text{Value: "[no url] here"},
			}))
		})

		It("should leave an unclosed target literal", func() {
			Expect(inlinesOf("[text](unclosed")).To(Equal([]domain.Inline{
				&domain.Text{Value: "[text](unclosed"},
			}))
		})

		It("should parse an image", func() {
			Expect(inlinesOf("![logo](img.png)")).To(Equal([]domain.Inline{
				&domain.Image{Src: "img.png", Alt: "logo"},
			}))
		})

		It("should keep image alt text literal", func() {
			Expect(inlinesOf("![*alt*](a.png)")).To(Equal([]domain.Inline{
				&domain.Image{Src: "a.png", Alt: "*alt*"},
			}))
		})
	})
})
