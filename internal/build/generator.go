// Package build orchestrates the site generation pipeline: load
// content, render into a staging directory, verify, then promote the
// result into the output directory.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitegen/internal/assets"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/history"
	"git.home.luguber.info/inful/sitegen/internal/linkverify"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/paths"
	"git.home.luguber.info/inful/sitegen/internal/render"
)

// Generator runs builds for one configuration.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
	history  *history.Store
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithHistory records finished builds in the given store.
func WithHistory(s *history.Store) Option {
	return func(g *Generator) { g.history = s }
}

// NewGenerator creates a Generator.
func NewGenerator(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build runs the full pipeline once. The returned report is never nil;
// on error it describes the failing stage.
func (g *Generator) Build(ctx context.Context) (*BuildReport, error) {
	report := newBuildReport()
	bs := newBuildState(g, report)
	slog.Info("Starting build", "build_id", report.BuildID, "output", g.cfg.Output.Directory)

	err := runStages(ctx, bs, []StageDef{
		{StagePrepare, stagePrepare},
		{StageLoad, stageLoadContent},
		{StageAssets, stageWriteAssets},
		{StagePages, stageRenderPages},
		{StagePosts, stageRenderPosts},
		{StageVerify, stageVerifyLinks},
		{StagePromote, stagePromote},
	})
	if err != nil {
		if cleanupErr := bs.Workspace.Cleanup(); cleanupErr != nil {
			slog.Warn("Staging cleanup failed", "error", cleanupErr)
		}
	}

	report.deriveOutcome()
	report.finish()
	g.recorder.ObserveBuildDuration(report.Duration())
	g.recorder.IncBuildOutcome(report.Outcome)
	g.recorder.SetPagesRendered(report.RenderedPages)
	g.recorder.SetPostsRendered(report.RenderedPosts)
	g.recordHistory(ctx, report)

	slog.Info("Build finished",
		"build_id", report.BuildID,
		"outcome", report.Outcome,
		"pages", report.RenderedPages,
		"posts", report.RenderedPosts,
		"duration", report.Duration())
	return report, err
}

func (g *Generator) recordHistory(ctx context.Context, report *BuildReport) {
	if g.history == nil {
		return
	}
	entry := history.Entry{
		BuildID:  report.BuildID,
		Started:  report.Start,
		Duration: report.Duration(),
		Pages:    report.RenderedPages,
		Posts:    report.RenderedPosts,
		Outcome:  report.Outcome,
	}
	if err := g.history.Record(ctx, entry); err != nil {
		slog.Warn("Recording build history failed", "error", err)
	}
}

func stagePrepare(_ context.Context, bs *BuildState) error {
	return bs.Workspace.Create()
}

func stageLoadContent(_ context.Context, bs *BuildState) error {
	contentDir := bs.Generator.cfg.Content.Dir

	siteCfg, err := content.LoadSiteConfig(filepath.Join(contentDir, "site.json"))
	if err != nil {
		return newFatalStageError(StageLoad, err)
	}
	pages, err := content.LoadPages(filepath.Join(contentDir, "pages.csv"))
	if err != nil {
		return newFatalStageError(StageLoad, err)
	}
	links, err := content.LoadLinks(filepath.Join(contentDir, "links.csv"))
	if err != nil {
		return newFatalStageError(StageLoad, err)
	}
	posts, err := content.LoadPosts(bs.Generator.cfg.Content.BlogDir)
	if err != nil {
		return newFatalStageError(StageLoad, err)
	}

	bs.Site = siteCfg
	bs.Pages = pages
	bs.Links = links
	bs.Posts = posts
	bs.Renderer = render.New(siteCfg, pages, links, posts)
	return nil
}

func stageWriteAssets(_ context.Context, bs *BuildState) error {
	staging := bs.Workspace.StagingPath()
	if err := assets.Write(staging); err != nil {
		return newFatalStageError(StageAssets, err)
	}
	copied, err := assets.CopyMedia(bs.Generator.cfg.Content.MediaDir, staging)
	if err != nil {
		return newFatalStageError(StageAssets, err)
	}
	bs.Report.CopiedMedia = copied
	return nil
}

func stageRenderPages(ctx context.Context, bs *BuildState) error {
	staging := bs.Workspace.StagingPath()
	for _, page := range bs.Pages {
		select {
		case <-ctx.Done():
			return newCanceledStageError(StagePages, ctx.Err())
		default:
		}
		doc := bs.Renderer.PageDocument(page)
		if err := writeDocument(staging, paths.OutputPath(page.Slug), doc); err != nil {
			return newFatalStageError(StagePages, err)
		}
		bs.Report.RenderedPages++
	}
	return nil
}

func stageRenderPosts(ctx context.Context, bs *BuildState) error {
	staging := bs.Workspace.StagingPath()
	for _, post := range bs.Posts {
		select {
		case <-ctx.Done():
			return newCanceledStageError(StagePosts, ctx.Err())
		default:
		}
		doc := bs.Renderer.PostDocument(post)
		if err := writeDocument(staging, render.PostOutputPath(post), doc); err != nil {
			return newFatalStageError(StagePosts, err)
		}
		bs.Report.RenderedPosts++
	}
	return nil
}

func stageVerifyLinks(_ context.Context, bs *BuildState) error {
	broken, err := linkverify.VerifyTree(bs.Workspace.StagingPath())
	if err != nil {
		return newFatalStageError(StageVerify, err)
	}
	bs.Report.BrokenLinks = len(broken)
	if len(broken) > 0 {
		for _, b := range broken {
			slog.Warn("Broken internal link", "page", b.Page, "url", b.URL, "target", b.Target)
		}
		return newWarnStageError(StageVerify, fmt.Errorf("%d broken internal links", len(broken)))
	}
	return nil
}

func stagePromote(_ context.Context, bs *BuildState) error {
	if err := bs.Workspace.Promote(); err != nil {
		return newFatalStageError(StagePromote, err)
	}
	return nil
}

func writeDocument(root, rel, doc string) error {
	target := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("create page directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(doc), 0o640); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
