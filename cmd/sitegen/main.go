package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitegen/internal/build"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/history"
	"git.home.luguber.info/inful/sitegen/internal/linkverify"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/scheduler"
	"git.home.luguber.info/inful/sitegen/internal/server"
	"git.home.luguber.info/inful/sitegen/internal/version"
	"git.home.luguber.info/inful/sitegen/internal/watch"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"sitegen.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Override output directory for the generated site"`
	} `cmd:"" help:"Build the site from the content directory"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a configuration file and example content"`

	Preview struct {
		Addr string `help:"Listen address" default:":8080"`
	} `cmd:"" help:"Build, serve locally, and rebuild on content changes"`

	Serve struct {
		Addr string `help:"Override listen address"`
	} `cmd:"" help:"Serve the generated site with the newsletter endpoint"`

	Verify struct {
	} `cmd:"" help:"Check the generated site for broken internal links"`

	History struct {
		Limit int `help:"Number of builds to show" default:"10"`
	} `cmd:"" help:"Show recent build history"`

	Version struct {
	} `cmd:"" help:"Print the version"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var err error
	switch ctx.Command() {
	case "build":
		err = runBuild()
	case "init":
		err = runInit()
	case "preview":
		err = runPreview()
	case "serve":
		err = runServe()
	case "verify":
		err = runVerify()
	case "history":
		err = runHistory()
	case "version":
		fmt.Println(version.Version)
	}
	if err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(CLI.Config); os.IsNotExist(err) {
		slog.Debug("No configuration file, using defaults", "path", CLI.Config)
		return config.Default(), nil
	}
	return config.Load(CLI.Config)
}

func runBuild() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if CLI.Build.Output != "" {
		cfg.Output.Directory = CLI.Build.Output
	}

	opts := []build.Option{}
	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, build.WithHistory(store))
	}

	report, err := generatorBuild(build.NewGenerator(cfg, opts...))
	if err != nil {
		return err
	}
	if report.Outcome == "warning" {
		slog.Warn("Build completed with warnings", "broken_links", report.BrokenLinks)
	}
	return nil
}

func generatorBuild(g *build.Generator) (*build.BuildReport, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return g.Build(ctx)
}

func runInit() error {
	if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
		return err
	}
	slog.Info("Wrote configuration file", "path", CLI.Config)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if err := scaffoldContent(cfg.Content.Dir); err != nil {
		return err
	}
	slog.Info("Wrote example content", "dir", cfg.Content.Dir)
	return nil
}

func runPreview() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if CLI.Preview.Addr != "" {
		cfg.Server.Addr = CLI.Preview.Addr
	}

	g := build.NewGenerator(cfg)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rebuild := func(ctx context.Context) {
		if _, err := g.Build(ctx); err != nil {
			slog.Error("Rebuild failed", "error", err)
		}
	}
	if _, err := g.Build(ctx); err != nil {
		return err
	}

	watcher, err := watch.New(rebuild)
	if err != nil {
		return err
	}
	if err := watcher.Add(cfg.Content.Dir); err != nil {
		return err
	}
	go func() {
		if err := watcher.Run(ctx); err != nil {
			slog.Error("Watcher stopped", "error", err)
		}
	}()

	srv := server.New(server.Options{
		Addr:        cfg.Server.Addr,
		SiteDir:     cfg.Output.Directory,
		SignupsPath: cfg.Server.SignupsPath,
	})
	return srv.Run(ctx)
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if CLI.Serve.Addr != "" {
		cfg.Server.Addr = CLI.Serve.Addr
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var registry *prom.Registry
	if cfg.Server.MetricsEnabled {
		registry = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	opts := []build.Option{build.WithRecorder(recorder)}
	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, build.WithHistory(store))
	}
	g := build.NewGenerator(cfg, opts...)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if _, err := g.Build(ctx); err != nil {
		return err
	}

	if cfg.Server.RebuildInterval > 0 {
		sched, err := scheduler.New()
		if err != nil {
			return err
		}
		rebuild := func(ctx context.Context) {
			if _, err := g.Build(ctx); err != nil {
				slog.Error("Scheduled rebuild failed", "error", err)
			}
		}
		if _, err := sched.SchedulePeriodicRebuild(cfg.Server.RebuildInterval, rebuild); err != nil {
			return err
		}
		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Warn("Scheduler shutdown failed", "error", err)
			}
		}()
	}

	srv := server.New(server.Options{
		Addr:        cfg.Server.Addr,
		SiteDir:     cfg.Output.Directory,
		SignupsPath: cfg.Server.SignupsPath,
		Recorder:    recorder,
		Registry:    registry,
	})
	return srv.Run(ctx)
}

func runVerify() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	broken, err := linkverify.VerifyTree(cfg.Output.Directory)
	if err != nil {
		return err
	}
	if len(broken) == 0 {
		slog.Info("No broken internal links", "dir", cfg.Output.Directory)
		return nil
	}
	for _, b := range broken {
		fmt.Println(b)
	}
	return fmt.Errorf("%d broken internal links", len(broken))
}

func runHistory() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Path == "" {
		return fmt.Errorf("build history is not configured (set history.path)")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), CLI.History.Limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no builds recorded")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %-8s  pages=%d posts=%d  %s  %s\n",
			e.Started.Format(time.RFC3339), e.Outcome, e.Pages, e.Posts,
			e.Duration.Round(time.Millisecond), e.BuildID)
	}
	return nil
}
