package renderer

import "strings"

// escaper covers the five HTML special characters. Single quote uses the
// numeric reference since &apos; is not defined in HTML 4.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces the HTML special characters in s. Callers must apply it
// exactly once per text leaf; escaped output must never pass through
// Escape again.
func Escape(s string) string {
	return escaper.Replace(s)
}
