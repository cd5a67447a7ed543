package site

import "strings"

// Template placeholders
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// Render substitutes every title and content placeholder in tmpl
func Render(tmpl, title, content string) string {
	r := strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	)
	return r.Replace(tmpl)
}

// RewriteBasePath points root-relative href and src attributes at basePath
func RewriteBasePath(html, basePath string) string {
	if basePath == "" || basePath == "/" {
		return html
	}
	r := strings.NewReplacer(
		`href="/`, `href="`+basePath,
		`src="/`, `src="`+basePath,
	)
	return r.Replace(html)
}
