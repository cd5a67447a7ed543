package site

import (
	"fmt"

	"github.com/gerunddev/sitegen/internal/markdown"
	"github.com/microcosm-cc/bluemonday"
)

// Options controls how a page is rendered
type Options struct {
	BasePath string
	Sanitize bool
}

// Page is a rendered page
type Page struct {
	Title       string
	Content     string // converted body, before template substitution
	HTML        string // full document
	FrontMatter FrontMatter
}

// ugcPolicy is safe for concurrent use once built
var ugcPolicy = bluemonday.UGCPolicy()

// RenderPage converts a markdown source and substitutes it into tmpl
func RenderPage(source, tmpl string, opts Options) (*Page, error) {
	fm, body, err := SplitFrontMatter(markdown.NormalizeNewlines(source))
	if err != nil {
		return nil, err
	}

	title := fm.Title
	if title == "" {
		title, err = markdown.ExtractTitle(body)
		if err != nil {
			return nil, err
		}
	}

	content, err := markdown.ToHTML(body)
	if err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}
	if opts.Sanitize {
		content = ugcPolicy.Sanitize(content)
	}

	html := RewriteBasePath(Render(tmpl, title, content), opts.BasePath)

	return &Page{
		Title:       title,
		Content:     content,
		HTML:        html,
		FrontMatter: fm,
	}, nil
}
