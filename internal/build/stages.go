package build

import (
	"fmt"

	"git.home.luguber.info/inful/sitegen/internal/render"
	"git.home.luguber.info/inful/sitegen/internal/site"
	"git.home.luguber.info/inful/sitegen/internal/workspace"
)

// StageName identifies one unit of work in the site build.
type StageName string

const (
	StagePrepare StageName = "prepare"
	StageLoad    StageName = "load_content"
	StageAssets  StageName = "write_assets"
	StagePages   StageName = "render_pages"
	StagePosts   StageName = "render_posts"
	StageVerify  StageName = "verify_links"
	StagePromote StageName = "promote"
)

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Build must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Non-fatal; record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying category and underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func newWarnStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}

func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// BuildState carries mutable state across stages.
type BuildState struct {
	Generator *Generator
	Workspace *workspace.Manager
	Report    *BuildReport

	Site     *site.Config
	Pages    site.Pages
	Links    []site.LinkEntry
	Posts    []site.BlogPost
	Renderer *render.Renderer
}

func newBuildState(g *Generator, report *BuildReport) *BuildState {
	return &BuildState{
		Generator: g,
		Workspace: workspace.NewManager(g.cfg.Output.Directory),
		Report:    report,
	}
}
