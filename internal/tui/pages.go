package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/gerunddev/sitegen/internal/styles"
)

// PageInfo is one generated page as listed by the browser
type PageInfo struct {
	Source  string // relative to the content directory
	Output  string // relative to the public directory
	Title   string
	Size    int64
	BuiltAt time.Time
	Stale   bool // source changed since the page was built
}

// PagesMsg is sent when the page list is ready
type PagesMsg struct {
	Pages []PageInfo
	Err   error
}

// PreviewMsg carries a rendered preview of the selected page
type PreviewMsg struct {
	Content string
	Err     error
}

// PreviewFunc renders the page with the given source for the viewport
type PreviewFunc func(source string) (string, error)

type pagesModel struct {
	table       table.Model
	viewport    viewport.Model
	pages       []PageInfo
	err         error
	ready       bool
	showPreview bool
	selected    *PageInfo
	preview     PreviewFunc
}

// InitPagesModel creates a new page browser model
func InitPagesModel(preview PreviewFunc) pagesModel {
	columns := []table.Column{
		{Title: "Source", Width: 36},
		{Title: "Title", Width: 30},
		{Title: "Size", Width: 10},
		{Title: "Built", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	t.SetStyles(styles.TableStyles())

	vp := viewport.New(100, 20)
	vp.Style = styles.BoxStyle.Padding(1)

	return pagesModel{
		table:    t,
		viewport: vp,
		preview:  preview,
	}
}

func (m pagesModel) Init() tea.Cmd {
	return nil
}

func (m pagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 3))
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-6, 3)

	case tea.KeyMsg:
		if m.showPreview {
			switch msg.String() {
			case "q", "esc":
				m.showPreview = false
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", "p":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.pages) {
				m.selected = &m.pages[idx]
				m.showPreview = true
				m.viewport.SetContent(styles.DimStyle.Render("Rendering..."))
				return m, m.loadPreview(m.selected.Source)
			}
			return m, nil
		}
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case PagesMsg:
		m.ready = true
		m.pages = msg.Pages
		m.err = msg.Err
		m.table.SetRows(pageRows(m.pages))
		return m, nil

	case PreviewMsg:
		if msg.Err != nil {
			m.viewport.SetContent(styles.ErrorStyle.Render("✗ " + msg.Err.Error()))
		} else {
			m.viewport.SetContent(msg.Content)
		}
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m pagesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("sitegen pages"))
	b.WriteString("\n\n")

	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready {
		return b.String()
	}

	if m.showPreview && m.selected != nil {
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("Preview: %s", m.selected.Source)))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • esc/q back"))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.pages) == 0 {
		b.WriteString(styles.HelpStyle.Render("No pages built yet. Run 'sitegen build' first."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("Pages: %d", len(m.pages))))
	b.WriteString("\n\n")
	b.WriteString(styles.BoxStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • enter/p preview • q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m pagesModel) loadPreview(source string) tea.Cmd {
	return func() tea.Msg {
		if m.preview == nil {
			return PreviewMsg{Content: source}
		}
		content, err := m.preview(source)
		return PreviewMsg{Content: content, Err: err}
	}
}

func pageRows(pages []PageInfo) []table.Row {
	rows := make([]table.Row, 0, len(pages))
	for _, p := range pages {
		source := p.Source
		if p.Stale {
			source = "● " + source
		}
		rows = append(rows, table.Row{
			source,
			p.Title,
			humanize.Bytes(uint64(p.Size)),
			humanize.Time(p.BuiltAt),
		})
	}
	return rows
}
