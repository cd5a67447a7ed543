package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gerunddev/sitegen/internal/config"
	"github.com/gerunddev/sitegen/internal/diff"
	"github.com/gerunddev/sitegen/internal/logger"
	"github.com/gerunddev/sitegen/internal/markdown"
	"github.com/gerunddev/sitegen/internal/state"
)

// ErrDraft is returned for pages whose front matter marks them as drafts
var ErrDraft = errors.New("page is a draft")

// Builder generates a site from a content tree
type Builder struct {
	config    *config.Config
	state     *state.State
	logger    *logger.Logger
	dryRun    bool
	templates map[string]string
}

// NewBuilder creates a new builder instance
func NewBuilder(cfg *config.Config, st *state.State) *Builder {
	return &Builder{
		config: cfg,
		state:  st,
		logger: logger.Discard(),
	}
}

// SetLogger sets the logger for build events
func (b *Builder) SetLogger(l *logger.Logger) {
	b.logger = l
}

// SetDryRun makes builds render pages without writing anything
func (b *Builder) SetDryRun(dryRun bool) {
	b.dryRun = dryRun
}

// PageError records a page that failed to generate
type PageError struct {
	Path string
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// PageDiff is the change a dry run would make to one output file
type PageDiff struct {
	Output string
	Diff   string
}

// Result represents the result of a build
type Result struct {
	BuildID        string
	DryRun         bool
	PagesGenerated int
	FilesCopied    int
	Drafts         []string
	Errors         []error
	Diffs          []PageDiff
	StartTime      time.Time
	EndTime        time.Time
}

// Build copies static files and generates every page
func (b *Builder) Build() (*Result, error) {
	result := &Result{
		StartTime: time.Now(),
		DryRun:    b.dryRun,
	}
	result.BuildID = b.state.BeginBuild(result.StartTime)
	b.templates = make(map[string]string)

	b.logger.BuildStarted(result.BuildID, b.config.ContentDir, b.config.PublicDir)

	if _, err := b.loadTemplate(b.config.Template); err != nil {
		return nil, err
	}

	if !b.dryRun {
		copied, err := CopyStatic(b.config.StaticDir, b.config.PublicDir, b.config.Clean)
		for _, dest := range copied {
			b.logger.StaticCopied(b.config.StaticDir, dest)
		}
		result.FilesCopied = len(copied)
		if err != nil {
			return nil, fmt.Errorf("failed to copy static files: %w", err)
		}
	}

	if err := b.GeneratePages(result); err != nil {
		return nil, err
	}

	if !b.dryRun {
		b.trackInputs()
	}

	result.EndTime = time.Now()
	b.logger.BuildCompleted(result.PagesGenerated, result.FilesCopied, len(result.Errors), result.Duration())

	return result, nil
}

// GeneratePages walks the content tree and generates a page for every markdown
// file. Failing pages are recorded in result and do not stop the walk.
func (b *Builder) GeneratePages(result *Result) error {
	sources, err := ScanDirectory(b.config.ContentDir, ".md")
	if err != nil {
		return fmt.Errorf("failed to scan content: %w", err)
	}

	for _, src := range sources {
		rel, err := filepath.Rel(b.config.ContentDir, src)
		if err != nil {
			return err
		}
		if b.excluded(rel) {
			b.logger.Skipped(src, "excluded")
			continue
		}

		dest := filepath.Join(b.config.PublicDir, strings.TrimSuffix(rel, ".md")+".html")
		page, err := b.GeneratePage(src, dest)
		switch {
		case errors.Is(err, ErrDraft):
			b.logger.Skipped(src, "draft")
			result.Drafts = append(result.Drafts, src)
			if !b.dryRun {
				delete(b.state.Pages, src)
			}
			continue
		case err != nil:
			b.logger.PageError(src, err)
			result.Errors = append(result.Errors, &PageError{Path: src, Err: err})
			continue
		}

		result.PagesGenerated++
		if b.dryRun {
			d, err := diff.Output(dest, page.HTML)
			if err != nil {
				result.Errors = append(result.Errors, &PageError{Path: src, Err: err})
				continue
			}
			if d != "" {
				result.Diffs = append(result.Diffs, PageDiff{Output: dest, Diff: d})
			}
			continue
		}

		b.logger.PageGenerated(src, dest, page.Title)
		b.state.RecordPage(state.PageRecord{
			Source:  src,
			Output:  dest,
			Title:   page.Title,
			Size:    int64(len(page.HTML)),
			BuiltAt: time.Now(),
			BuildID: result.BuildID,
		})
	}

	return nil
}

// GeneratePage renders src with its template and writes it to dest.
// In dry-run mode nothing is written.
func (b *Builder) GeneratePage(src, dest string) (*Page, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	source := markdown.NormalizeNewlines(string(data))

	fm, _, err := SplitFrontMatter(source)
	if err != nil {
		return nil, err
	}
	if fm.Draft {
		return nil, ErrDraft
	}

	templatePath := b.config.Template
	if fm.Template != "" {
		templatePath = filepath.Join(filepath.Dir(b.config.Template), fm.Template)
	}
	tmpl, err := b.loadTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	page, err := RenderPage(source, tmpl, b.options())
	if err != nil {
		return nil, err
	}

	if b.dryRun {
		return page, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(dest, []byte(page.HTML), 0644); err != nil {
		return nil, fmt.Errorf("failed to write page: %w", err)
	}

	return page, nil
}

// RenderFile renders a single markdown file without writing it
func RenderFile(src, templatePath string, opts Options) (*Page, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return RenderPage(string(data), string(tmpl), opts)
}

// Changed reports whether any input was added, modified or removed since the
// last recorded build
func (b *Builder) Changed() (bool, error) {
	inputs, err := b.inputs()
	if err != nil {
		return false, err
	}

	seen := make(map[string]bool, len(inputs))
	for _, path := range inputs {
		seen[path] = true
		changed, err := b.state.HasChanged(path)
		if err != nil {
			return false, err
		}
		if changed {
			return true, nil
		}
	}

	for path := range b.state.Files {
		if !seen[path] {
			return true, nil
		}
	}

	return false, nil
}

// inputs lists every file a build reads
func (b *Builder) inputs() ([]string, error) {
	files, err := ScanDirectory(b.config.ContentDir, ".md")
	if err != nil {
		return nil, err
	}

	if b.config.StaticDir != "" {
		if _, err := os.Stat(b.config.StaticDir); err == nil {
			static, err := ScanDirectory(b.config.StaticDir, "")
			if err != nil {
				return nil, err
			}
			files = append(files, static...)
		}
	}

	for path := range b.templates {
		files = append(files, path)
	}
	if _, ok := b.templates[b.config.Template]; !ok {
		files = append(files, b.config.Template)
	}

	return files, nil
}

// trackInputs records the current state of every input after a build
func (b *Builder) trackInputs() {
	inputs, err := b.inputs()
	if err != nil {
		b.logger.StateError("scan inputs", err)
		return
	}

	keep := make(map[string]bool, len(inputs))
	for _, path := range inputs {
		keep[path] = true
		if err := b.state.Update(path); err != nil {
			b.logger.StateError("update "+path, err)
		}
	}

	b.state.Forget(keep)
	for src := range b.state.Pages {
		if !keep[src] {
			delete(b.state.Pages, src)
		}
	}
}

func (b *Builder) loadTemplate(path string) (string, error) {
	if tmpl, ok := b.templates[path]; ok {
		return tmpl, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	if b.templates == nil {
		b.templates = make(map[string]string)
	}
	b.templates[path] = string(data)
	return string(data), nil
}

func (b *Builder) excluded(rel string) bool {
	for _, pattern := range b.config.ExcludePatterns {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

func (b *Builder) options() Options {
	return Options{
		BasePath: b.config.BasePath,
		Sanitize: b.config.Sanitize,
	}
}

// Duration returns how long the build took
func (r *Result) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// String returns a human-readable summary of the build result
func (r *Result) String() string {
	return fmt.Sprintf(
		"Build complete: %d pages generated, %d files copied, %d drafts skipped, %d errors (took %v)",
		r.PagesGenerated,
		r.FilesCopied,
		len(r.Drafts),
		len(r.Errors),
		r.Duration().Round(time.Millisecond),
	)
}
