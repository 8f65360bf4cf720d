package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/stakater/developer-handbook/internal/logfields"
	"github.com/stakater/developer-handbook/internal/metrics"
	"github.com/stakater/developer-handbook/internal/render"
	"github.com/stakater/developer-handbook/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce    time.Duration `default:"500ms" help:"Quiet period before re-running after a change"`
	Render      bool          `help:"Render the generator configuration after each run without errors"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)"`
	NoContent   bool          `help:"Skip checks that read the content directory"`
}

func (w *WatchCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		shutdown := serveMetrics(w.MetricsAddr, reg)
		defer shutdown()
	}

	var dirs []string
	if !w.NoContent && !cfg.Validation.SkipContent {
		dirs = append(dirs, cfg.ContentDir())
	}
	c := &checker{root: root, noContent: w.NoContent, render: w.Render, recorder: recorder}
	watcher, err := watch.New(root.Config, dirs, c.run,
		watch.WithDebounce(w.Debounce),
		watch.WithExtensions(cfg.Content.Extensions...),
	)
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}

func serveMetrics(addr string, reg *prom.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", logfields.Error(err))
		}
	}()
	slog.Info("Serving metrics", slog.String("addr", addr))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// checker reloads and validates the configuration on each watch run.
type checker struct {
	root      *CLI
	noContent bool
	render    bool
	recorder  metrics.Recorder
}

func (c *checker) run(_ context.Context, runID string) error {
	start := time.Now()
	cfg, err := c.root.loadConfig()
	if err != nil {
		c.recorder.IncRun(metrics.OutcomeFailed)
		return err
	}
	result, err := lintConfig(cfg, false, c.noContent)
	if err != nil {
		c.recorder.IncRun(metrics.OutcomeFailed)
		return err
	}
	elapsed := time.Since(start)

	c.recorder.ObserveValidationDuration(elapsed)
	c.recorder.SetPages(result.Pages)
	for _, issue := range result.Issues {
		c.recorder.IncIssue(issue.Rule, issue.Severity.String())
	}
	outcome := metrics.OutcomeClean
	switch {
	case result.HasErrors():
		outcome = metrics.OutcomeErrors
	case result.HasWarnings():
		outcome = metrics.OutcomeWarnings
	}
	c.recorder.IncRun(outcome)

	logIssues(result, runID)
	slog.Info("Validation finished",
		logfields.RunID(runID),
		logfields.Errors(result.ErrorCount()),
		logfields.Warnings(result.WarningCount()),
		logfields.Pages(result.Pages),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))

	if !c.render || result.HasErrors() {
		return nil
	}
	path := cfg.OutputPath()
	err = render.WriteFile(&cfg.Site, cfg.Output.Format, c.root.Config, path)
	c.recorder.IncRender(err == nil)
	if err != nil {
		return err
	}
	slog.Info("Rendered configuration", logfields.RunID(runID), logfields.Output(path))
	return nil
}
