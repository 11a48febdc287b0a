package template

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/sirupsen/logrus"

	"github.com/fjglira/mdsite/internal/config"
	"github.com/fjglira/mdsite/internal/domain"
)

// Engine wraps rendered HTML bodies into complete pages. Three modes, in
// priority order: a single template file with a {{.Content}} substitution
// point, a header.html/footer.html pair from a template directory, or a
// built-in minimal page.
//
// Templates are text/template, not html/template: the body arrives
// already escaped by the renderer and must be substituted verbatim.
type Engine struct {
	page   *template.Template
	header string
	footer string
	pair   bool
}

// pageData is the struct passed to page templates.
type pageData struct {
	Title   string
	Author  string
	Date    string
	Content string
	Meta    map[string]any
}

const defaultPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Content}}
</body>
</html>
`

// NewEngine creates an Engine from the template configuration. Missing
// header or footer files are warnings, not errors: the absent piece is
// treated as empty.
func NewEngine(cfg config.TemplateConfig, log *logrus.Logger) (*Engine, error) {
	switch {
	case cfg.File != "":
		content, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, domain.NewError(domain.PhaseTemplate, cfg.File, "failed to read template file", err)
		}
		tmpl, err := template.New(filepath.Base(cfg.File)).Funcs(CustomFuncMap()).Parse(string(content))
		if err != nil {
			return nil, domain.NewError(domain.PhaseTemplate, cfg.File, "failed to parse template", err)
		}
		return &Engine{page: tmpl}, nil

	case cfg.Directory != "":
		e := &Engine{pair: true}
		e.header = readPiece(filepath.Join(cfg.Directory, "header.html"), log)
		e.footer = readPiece(filepath.Join(cfg.Directory, "footer.html"), log)
		return e, nil

	default:
		tmpl, err := template.New("default").Parse(defaultPage)
		if err != nil {
			return nil, domain.NewError(domain.PhaseTemplate, "", "failed to parse built-in template", err)
		}
		return &Engine{page: tmpl}, nil
	}
}

// Render wraps the page body into a complete HTML document.
func (e *Engine) Render(page *domain.Page) ([]byte, error) {
	if e.pair {
		var buf bytes.Buffer
		buf.WriteString(e.header)
		buf.Write(page.Body)
		buf.WriteString(e.footer)
		return buf.Bytes(), nil
	}

	data := pageData{
		Title:   page.Title,
		Author:  page.Meta.Author,
		Date:    page.Meta.Date,
		Content: string(page.Body),
		Meta:    page.Meta.Custom,
	}

	var buf bytes.Buffer
	if err := e.page.Execute(&buf, data); err != nil {
		return nil, domain.NewError(domain.PhaseTemplate, page.SourcePath, "failed to execute template", err)
	}
	return buf.Bytes(), nil
}

// readPiece reads a header/footer fragment, warning when it is absent.
func readPiece(path string, log *logrus.Logger) string {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("No %s found.", filepath.Base(path))
		return ""
	}
	return string(content)
}
