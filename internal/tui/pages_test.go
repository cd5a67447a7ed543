package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPageRows(t *testing.T) {
	rows := pageRows([]PageInfo{
		{Source: "index.md", Title: "Home", Size: 2048, BuiltAt: time.Now()},
		{Source: "blog/post.md", Title: "Post", Size: 10, BuiltAt: time.Now(), Stale: true},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "index.md" || rows[0][1] != "Home" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[0][2] != "2.0 kB" {
		t.Errorf("size = %q, want 2.0 kB", rows[0][2])
	}
	if !strings.HasPrefix(rows[1][0], "● ") {
		t.Errorf("stale page should be marked, got %q", rows[1][0])
	}
}

func TestPagesModelPreview(t *testing.T) {
	var requested string
	m := InitPagesModel(func(source string) (string, error) {
		requested = source
		return "rendered " + source, nil
	})

	model, _ := m.Update(PagesMsg{Pages: []PageInfo{{Source: "index.md", Title: "Home"}}})
	m = model.(pagesModel)
	if !strings.Contains(m.View(), "Pages: 1") {
		t.Errorf("table view missing page count:\n%s", m.View())
	}

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(pagesModel)
	if !m.showPreview || cmd == nil {
		t.Fatal("enter should open the preview")
	}

	model, _ = m.Update(cmd())
	m = model.(pagesModel)
	if requested != "index.md" {
		t.Errorf("preview requested for %q, want index.md", requested)
	}
	if !strings.Contains(m.View(), "rendered index.md") {
		t.Errorf("preview content missing:\n%s", m.View())
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.(pagesModel).showPreview {
		t.Error("esc should close the preview")
	}
}

func TestPagesModelPreviewError(t *testing.T) {
	m := InitPagesModel(nil)
	model, _ := m.Update(PagesMsg{Pages: []PageInfo{{Source: "bad.md"}}})
	m = model.(pagesModel)
	m.showPreview = true
	m.selected = &m.pages[0]

	model, _ = m.Update(PreviewMsg{Err: errors.New("unbalanced inline delimiter")})
	if !strings.Contains(model.(pagesModel).View(), "unbalanced inline delimiter") {
		t.Error("preview error should be shown")
	}
}

func TestWatchModelView(t *testing.T) {
	m := InitWatchModel()
	model, _ := m.Update(WatchMsg{Data: &WatchData{
		ContentDir:     "/site/content",
		PublicDir:      "/site/public",
		Interval:       2 * time.Second,
		StartTime:      time.Now(),
		Builds:         3,
		LastBuildTime:  time.Now(),
		PagesGenerated: 7,
		LastErrors:     1,
	}})

	view := model.(watchModel).View()
	for _, want := range []string{"/site/content", "/site/public", "7", "1 page(s) failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
