package commands

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/sitegen/internal/config"
	"github.com/gerunddev/sitegen/internal/site"
	"github.com/gerunddev/sitegen/internal/tui"
	"github.com/spf13/cobra"
)

// dashboardRefresh is how often the watch dashboard is redrawn
const dashboardRefresh = time.Second

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Rebuild the site whenever content, static files or templates change",
		Example: "  sitegen watch --interval 500ms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Watch(cmd)
		},
	}
	cmd.Flags().Duration("interval", 0, "poll interval (default from config)")
	return cmd
}

// watchStats is shared between the rebuild loop and the dashboard
type watchStats struct {
	mu        sync.Mutex
	builds    int
	lastBuild time.Time
	pages     int
	errors    int
}

func (s *watchStats) record(r *site.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.builds++
	s.lastBuild = r.EndTime
	s.pages = r.PagesGenerated
	s.errors = len(r.Errors)
}

// Watch runs the rebuild loop in the background with a dashboard in the foreground
func Watch(cmd *cobra.Command) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	if interval, _ := cmd.Flags().GetDuration("interval"); interval > 0 {
		env.cfg.Interval = interval
	}

	log := env.log
	st := env.state
	log.Info("watch started",
		"pid", os.Getpid(),
		"interval", env.cfg.Interval)

	builder := site.NewBuilder(env.cfg, st)
	builder.SetLogger(log)

	stats := &watchStats{}
	build := func() {
		result, err := builder.Build()
		if err != nil {
			log.Error("build failed", "error", err)
			return
		}
		stats.record(result)
		if err := st.Save(config.StateFilePath()); err != nil {
			log.StateError("save", err)
		}
	}

	stopChan := make(chan bool, 1)
	doneChan := make(chan bool, 1)

	go func() {
		defer func() {
			doneChan <- true
		}()

		ticker := time.NewTicker(env.cfg.Interval)
		defer ticker.Stop()

		build()

		for {
			select {
			case <-ticker.C:
				changed, err := builder.Changed()
				if err != nil {
					log.Error("change check failed", "error", err)
					continue
				}
				if changed {
					build()
				}

			case <-stopChan:
				log.Info("watch loop stopping")
				return
			}
		}
	}()

	startTime := time.Now()
	p := tea.NewProgram(tui.InitWatchModel(), tea.WithInput(os.Stdin))

	sendWatchData := func() {
		stats.mu.Lock()
		data := &tui.WatchData{
			ContentDir:     env.cfg.ContentDir,
			PublicDir:      env.cfg.PublicDir,
			Interval:       env.cfg.Interval,
			StartTime:      startTime,
			Builds:         stats.builds,
			LastBuildTime:  stats.lastBuild,
			PagesGenerated: stats.pages,
			LastErrors:     stats.errors,
		}
		stats.mu.Unlock()

		if env.cfg.LogFile != "" {
			data.LogLines, _ = ParseLogFile(env.cfg.LogFile, 15)
		}

		p.Send(tui.WatchMsg{Data: data})
	}

	go func() {
		ticker := time.NewTicker(dashboardRefresh)
		defer ticker.Stop()

		sendWatchData()
		for range ticker.C {
			sendWatchData()
		}
	}()

	_, runErr := p.Run()

	stopChan <- true
	<-doneChan
	log.Info("watch shutdown complete")

	if runErr != nil {
		return fmt.Errorf("dashboard: %w", runErr)
	}
	return nil
}
