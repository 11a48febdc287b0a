package parser

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/fjglira/mdsite/internal/domain"
)

// SplitFrontMatter extracts the YAML front matter block from the top of a
// source file, returning the structured metadata and the Markdown body
// without delimiters. A file with no front matter returns a zero PageMeta
// and the body unchanged.
func SplitFrontMatter(source []byte) (domain.PageMeta, []byte, error) {
	var meta domain.PageMeta

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return domain.PageMeta{}, nil, fmt.Errorf("parse front matter: %w", err)
	}

	return meta, body, nil
}
