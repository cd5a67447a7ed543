package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/sitegen/internal/site"
	"github.com/gerunddev/sitegen/internal/styles"
)

// maxListedErrors caps the failing pages shown after a build
const maxListedErrors = 10

// BuildMsg is sent when a build completes
type BuildMsg struct {
	Result *site.Result
	Err    error
}

// buildModel shows a spinner while a build runs and a summary afterwards
type buildModel struct {
	spinner    spinner.Model
	status     string
	contentDir string
	complete   bool
	result     *site.Result
	err        error
}

// InitBuildModel creates a new build progress model
func InitBuildModel(contentDir string, dryRun bool) buildModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	status := "Building site..."
	if dryRun {
		status = "Rendering pages (dry run)..."
	}

	return buildModel{
		spinner:    s,
		status:     status,
		contentDir: contentDir,
	}
}

func (m buildModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case BuildMsg:
		m.complete = true
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m buildModel) View() string {
	if !m.complete {
		return fmt.Sprintf("\n%s %s\n\n", m.spinner.View(), m.status)
	}
	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Build failed: "+m.err.Error()) + "\n"
	}
	return Summary(m.result, m.contentDir)
}

// BuildOutcome extracts the build result from the model returned by a finished program.
// complete is false when the program quit before the build finished.
func BuildOutcome(m tea.Model) (result *site.Result, complete bool, err error) {
	bm, ok := m.(buildModel)
	if !ok || !bm.complete {
		return nil, false, nil
	}
	return bm.result, true, bm.err
}

// Summary renders a build result the way the build command reports it
func Summary(r *site.Result, contentDir string) string {
	var b strings.Builder

	verb := "Generated"
	if r.DryRun {
		verb = "Would generate"
	}
	b.WriteString(styles.SuccessStyle.Render(fmt.Sprintf("✓ %s %d page(s)", verb, r.PagesGenerated)))
	if !r.DryRun {
		b.WriteString(", " + styles.SuccessStyle.Render(fmt.Sprintf("copied %d file(s)", r.FilesCopied)))
	}
	if len(r.Drafts) > 0 {
		b.WriteString(", " + styles.WarningStyle.Render(fmt.Sprintf("%d draft(s) skipped", len(r.Drafts))))
	}
	if len(r.Errors) > 0 {
		b.WriteString(", " + styles.ErrorStyle.Render(fmt.Sprintf("%d error(s)", len(r.Errors))))
	}
	b.WriteString("\n")

	for i, err := range r.Errors {
		if i == maxListedErrors {
			b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  ... and %d more", len(r.Errors)-maxListedErrors)))
			b.WriteString("\n")
			break
		}
		b.WriteString("  " + styles.ErrorStyle.Render("✗ "+relError(err, contentDir)) + "\n")
	}

	b.WriteString(styles.HelpStyle.Render(fmt.Sprintf("Completed in %v", r.Duration().Round(time.Millisecond))))
	b.WriteString("\n")

	return b.String()
}

// relError shortens page errors to a path relative to the content directory
func relError(err error, contentDir string) string {
	var pe *site.PageError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	rel, relErr := filepath.Rel(contentDir, pe.Path)
	if relErr != nil {
		return err.Error()
	}
	return fmt.Sprintf("%s: %v", rel, pe.Err)
}
