package site

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fjglira/mdsite/internal/config"
	"github.com/fjglira/mdsite/internal/domain"
	"github.com/fjglira/mdsite/internal/parser"
	"github.com/fjglira/mdsite/internal/renderer"
	"github.com/fjglira/mdsite/internal/scanner"
	tmpl "github.com/fjglira/mdsite/internal/template"
)

// Builder is the site walker: it discovers Markdown sources, runs each
// through parse and render, and writes the mirrored HTML tree.
type Builder struct {
	scanner  scanner.Scanner
	registry parser.Registry
	renderer *renderer.Renderer
	engine   *tmpl.Engine
	log      *logrus.Logger
}

// NewBuilder creates a Builder with all dependencies.
func NewBuilder(
	s scanner.Scanner,
	r parser.Registry,
	rend *renderer.Renderer,
	e *tmpl.Engine,
	log *logrus.Logger,
) *Builder {
	return &Builder{
		scanner:  s,
		registry: r,
		renderer: rend,
		engine:   e,
		log:      log,
	}
}

// result is the outcome of one file's conversion job. Each job owns its
// Document and Page exclusively; results only meet in the report.
type result struct {
	file    string
	skipped bool
	err     error
}

// Build runs the batch: scan, then convert every file. The only fatal
// error is failure to enumerate the source directory; everything else is
// collected into the report.
func (b *Builder) Build(cfg *config.Config) (*Report, error) {
	files, err := b.scanner.Scan(cfg.Input.Directory, cfg.Input.Include, cfg.Input.Exclude)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	if len(files) == 0 {
		b.log.Warn("No source files found")
		return report, nil
	}
	b.log.Infof("Found %d source file(s)", len(files))

	results := make([]result, len(files))
	workers := cfg.Build.Workers
	if workers <= 1 {
		for idx, file := range files {
			results[idx] = b.convert(cfg, file)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for idx := range jobs {
					results[idx] = b.convert(cfg, files[idx])
				}
			}()
		}
		for idx := range files {
			jobs <- idx
		}
		close(jobs)
		wg.Wait()
	}

	// files is sorted, so indexed results keep the report deterministic
	// regardless of worker scheduling.
	for _, res := range results {
		switch {
		case res.err != nil:
			report.Failures = append(report.Failures, Failure{File: res.file, Err: res.err})
		case res.skipped:
			report.Skipped = append(report.Skipped, res.file)
		default:
			report.Converted = append(report.Converted, res.file)
		}
	}

	b.log.Infof("Converted %d page(s), %d skipped, %d failed",
		len(report.Converted), len(report.Skipped), len(report.Failures))
	for _, f := range report.Failures {
		b.log.Errorf("failed: %v", f.Err)
	}

	return report, nil
}

// convert runs the full pipeline for one source file:
// read -> front matter -> parse -> render -> template -> write.
func (b *Builder) convert(cfg *config.Config, file string) result {
	content, err := os.ReadFile(file)
	if err != nil {
		return result{file: file, err: domain.NewError(domain.PhaseRead, file, "failed to read source file", err)}
	}

	meta, body, err := parser.SplitFrontMatter(content)
	if err != nil {
		// Malformed front matter never fails the file: treat the whole
		// source as body.
		b.log.Warnf("%s: ignoring malformed front matter: %v", file, err)
		meta, body = domain.PageMeta{}, content
	}

	if meta.Draft && !cfg.Build.Drafts {
		b.log.Debugf("Skipping draft: %s", file)
		return result{file: file, skipped: true}
	}

	p, err := b.registry.ParserFor(filepath.Ext(file))
	if err != nil {
		b.log.Warnf("No parser for %s, skipping", file)
		return result{file: file, skipped: true}
	}

	doc := p.Parse(body)
	page := &domain.Page{
		SourcePath: file,
		OutputPath: outputPath(cfg, file),
		Title:      resolveTitle(meta, doc, file),
		Meta:       meta,
		Body:       b.renderer.Render(doc),
	}

	rendered, err := b.engine.Render(page)
	if err != nil {
		return result{file: file, err: err}
	}

	if cfg.DryRun {
		b.log.Infof("[DRY-RUN] Would write: %s", page.OutputPath)
		return result{file: file}
	}

	if err := os.MkdirAll(filepath.Dir(page.OutputPath), 0755); err != nil {
		return result{file: file, err: domain.NewError(domain.PhaseWrite, page.OutputPath, "failed to create output directory", err)}
	}
	if err := os.WriteFile(page.OutputPath, rendered, 0644); err != nil {
		return result{file: file, err: domain.NewError(domain.PhaseWrite, page.OutputPath, "failed to write output file", err)}
	}

	b.log.Debugf("Wrote: %s", page.OutputPath)
	return result{file: file}
}

// outputPath mirrors the source path under the output directory with the
// extension swapped to .html.
func outputPath(cfg *config.Config, file string) string {
	rel, err := filepath.Rel(cfg.Input.Directory, file)
	if err != nil {
		rel = filepath.Base(file)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
	return filepath.Join(cfg.Output.Directory, rel)
}

// resolveTitle picks the page title: front matter first, then the first
// top-level heading, then the file stem.
func resolveTitle(meta domain.PageMeta, doc *domain.Document, file string) string {
	if meta.Title != "" {
		return meta.Title
	}
	for _, block := range doc.Blocks {
		if h, ok := block.(*domain.Heading); ok && h.Level == 1 {
			if t := inlineText(h.Inlines); t != "" {
				return t
			}
		}
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// inlineText flattens inline nodes to their literal text.
func inlineText(nodes []domain.Inline) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case *domain.Text:
			b.WriteString(n.Value)
		case *domain.CodeSpan:
			b.WriteString(n.Text)
		case *domain.Emphasis:
			b.WriteString(inlineText(n.Children))
		case *domain.Strong:
			b.WriteString(inlineText(n.Children))
		case *domain.Link:
			b.WriteString(inlineText(n.Children))
		case *domain.Image:
			b.WriteString(n.Alt)
		}
	}
	return strings.TrimSpace(b.String())
}
