package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/sitegen/internal/config"
	"github.com/gerunddev/sitegen/internal/logger"
	"github.com/gerunddev/sitegen/internal/state"
	"github.com/gerunddev/sitegen/internal/styles"
	"github.com/spf13/cobra"
)

// env bundles what every command loads before doing work
type env struct {
	cfg     *config.Config
	state   *state.State
	log     *logger.Logger
	cleanup func()
}

// setup loads configuration, build state and the logger
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	st, err := state.Load(config.StateFilePath())
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}

	e := &env{cfg: cfg, state: st}
	e.log, e.cleanup = openLogger(cfg.LogFile, os.Stderr)

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		e.log.SetLevel(log.DebugLevel)
	}
	e.log.ConfigLoaded(cfg.ContentDir, cfg.PublicDir, cfg.Interval)

	return e, nil
}

// openLogger opens the build log at path. A log that cannot be opened is
// reported on w and replaced by a logger that discards everything.
func openLogger(path string, w io.Writer) (*logger.Logger, func()) {
	if path == "" {
		return logger.Discard(), func() {}
	}

	l, cleanup, err := logger.NewFileLogger(path)
	if err != nil {
		fmt.Fprintln(w, styles.WarningStyle.Render("! Failed to open log file: "+err.Error()))
		return logger.Discard(), func() {}
	}
	return l, cleanup
}

func (e *env) close() {
	e.cleanup()
}

// BuildSummary is what ParseLogFile recovers about the most recent build
type BuildSummary struct {
	Time   time.Time
	Pages  int
	Errors int
}

// ParseLogFile reads the last N lines from the log file and extracts the most recent build
func ParseLogFile(logPath string, maxLines int) ([]string, BuildSummary) {
	var summary BuildSummary

	content, err := os.ReadFile(logPath)
	if err != nil {
		return []string{"Unable to read log file"}, summary
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")

	startIdx := 0
	if len(lines) > maxLines {
		startIdx = len(lines) - maxLines
	}
	recentLines := lines[startIdx:]

	// Format: 2026-10-18 14:11:57 INFO build completed pages_generated=3 ...
	for i := len(recentLines) - 1; i >= 0; i-- {
		line := recentLines[i]
		if !strings.Contains(line, "build completed") {
			continue
		}
		if len(line) > 19 {
			if t, err := time.ParseInLocation(time.DateTime, line[:19], time.Local); err == nil {
				summary.Time = t
			}
		}
		if idx := strings.Index(line, "pages_generated="); idx != -1 {
			_, _ = fmt.Sscanf(line[idx:], "pages_generated=%d", &summary.Pages) //nolint:errcheck // best effort parsing
		}
		if idx := strings.Index(line, " errors="); idx != -1 {
			_, _ = fmt.Sscanf(line[idx+1:], "errors=%d", &summary.Errors) //nolint:errcheck // best effort parsing
		}
		break
	}

	return recentLines, summary
}
