package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/gerunddev/sitegen/internal/styles"
)

// WatchData holds what the watch dashboard displays
type WatchData struct {
	ContentDir     string
	PublicDir      string
	Interval       time.Duration
	StartTime      time.Time
	Builds         int
	LastBuildTime  time.Time
	PagesGenerated int
	LastErrors     int
	LogLines       []string
}

// WatchMsg is sent when dashboard data is ready
type WatchMsg struct {
	Data *WatchData
	Err  error
}

type watchModel struct {
	data  *WatchData
	err   error
	ready bool
}

// InitWatchModel creates a new watch dashboard model
func InitWatchModel() watchModel {
	return watchModel{}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case WatchMsg:
		m.ready = true
		m.data = msg.Data
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("sitegen watch"))
	b.WriteString("\n\n")

	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready || m.data == nil {
		return b.String()
	}

	b.WriteString(styles.LabelStyle.Render("Watching"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Content:  %s\n", styles.ValueStyle.Render(m.data.ContentDir)))
	b.WriteString(fmt.Sprintf("  Output:   %s\n", styles.ValueStyle.Render(m.data.PublicDir)))
	b.WriteString(fmt.Sprintf("  Interval: %s\n", styles.ValueStyle.Render(m.data.Interval.String())))
	b.WriteString(fmt.Sprintf("  Uptime:   %s\n", styles.ValueStyle.Render(time.Since(m.data.StartTime).Round(time.Second).String())))
	b.WriteString("\n")

	b.WriteString(styles.LabelStyle.Render("Last Build"))
	b.WriteString("\n")
	if m.data.LastBuildTime.IsZero() {
		b.WriteString(fmt.Sprintf("  %s\n", styles.HelpStyle.Render("No build completed yet")))
	} else {
		b.WriteString(fmt.Sprintf("  Finished: %s\n", styles.ValueStyle.Render(humanize.Time(m.data.LastBuildTime))))
		b.WriteString(fmt.Sprintf("  Pages:    %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", m.data.PagesGenerated))))
		b.WriteString(fmt.Sprintf("  Builds:   %s\n", styles.ValueStyle.Render(humanize.Comma(int64(m.data.Builds)))))
		if m.data.LastErrors > 0 {
			b.WriteString(fmt.Sprintf("  %s\n", styles.ErrorStyle.Render(fmt.Sprintf("✗ %d page(s) failed", m.data.LastErrors))))
		} else {
			b.WriteString(fmt.Sprintf("  %s\n", styles.SuccessStyle.Render("✓ All pages generated")))
		}
	}
	b.WriteString("\n")

	b.WriteString(styles.LabelStyle.Render("Recent Logs"))
	b.WriteString("\n")
	if len(m.data.LogLines) > 0 {
		for _, line := range m.data.LogLines {
			b.WriteString("  " + line + "\n")
		}
	} else {
		b.WriteString(styles.HelpStyle.Render("  No logs available"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpStyle.Render(fmt.Sprintf("q quit • rebuilds every %s when files change", m.data.Interval)))
	b.WriteString("\n")

	return b.String()
}
