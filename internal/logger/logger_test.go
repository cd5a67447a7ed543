package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestBuildEvents(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.BuildStarted("abc123", "/site/content", "/site/public")
	l.PageGenerated("content/index.md", "public/index.html", "Home")
	l.PageError("content/bad.md", errors.New("unbalanced inline delimiter"))
	l.BuildCompleted(1, 3, 1, 1500*time.Millisecond)

	out := buf.String()
	for _, want := range []string{
		"build started",
		"build_id=abc123",
		"page generated",
		"title=Home",
		"page failed",
		"source=content/bad.md",
		"build completed",
		"pages_generated=1",
		"files_copied=3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugEventsRespectLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.InfoLevel)
	l.Skipped("content/draft.md", "draft")
	if buf.Len() != 0 {
		t.Errorf("debug event should be filtered at info level, got %q", buf.String())
	}

	l = NewWithLevel(&buf, log.DebugLevel)
	l.Skipped("content/draft.md", "draft")
	if !strings.Contains(buf.String(), "file skipped") {
		t.Errorf("debug event missing at debug level, got %q", buf.String())
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitegen.log")

	l, cleanup, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	l.StaticCopied("static/a.css", "public/a.css")
	l.Info("build completed", "pages_generated", 2)
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "build completed") {
		t.Errorf("log file missing entry:\n%s", data)
	}
}
