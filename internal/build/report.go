package build

import (
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitegen/internal/metrics"
)

// StageCount tracks per-stage result classifications.
type StageCount struct {
	Success  int
	Warning  int
	Fatal    int
	Canceled int
}

// BuildReport summarizes one build run.
type BuildReport struct {
	BuildID         string
	Start           time.Time
	End             time.Time
	Errors          []error // fatal errors causing build abortion (at most one today)
	Warnings        []error // non-fatal issues (e.g., broken internal links)
	StageDurations  map[StageName]time.Duration
	StageErrorKinds map[StageName]StageErrorKind
	StageCounts     map[StageName]StageCount

	RenderedPages int
	RenderedPosts int
	CopiedMedia   int
	BrokenLinks   int
	Outcome       string // success|warning|failed|canceled
}

func newBuildReport() *BuildReport {
	return &BuildReport{
		BuildID:         uuid.NewString(),
		Start:           time.Now(),
		StageDurations:  make(map[StageName]time.Duration),
		StageErrorKinds: make(map[StageName]StageErrorKind),
		StageCounts:     make(map[StageName]StageCount),
	}
}

// Duration returns total wall time of the build.
func (r *BuildReport) Duration() time.Duration {
	if r.End.IsZero() {
		return time.Since(r.Start)
	}
	return r.End.Sub(r.Start)
}

// deriveOutcome computes the overall outcome from recorded errors.
func (r *BuildReport) deriveOutcome() {
	switch {
	case r.hasKind(StageErrorCanceled):
		r.Outcome = "canceled"
	case len(r.Errors) > 0:
		r.Outcome = "failed"
	case len(r.Warnings) > 0:
		r.Outcome = "warning"
	default:
		r.Outcome = "success"
	}
}

func (r *BuildReport) hasKind(kind StageErrorKind) bool {
	for _, k := range r.StageErrorKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (r *BuildReport) finish() {
	r.End = time.Now()
}

// recordStageResult updates counters and emits metrics.
func (r *BuildReport) recordStageResult(stage StageName, kind StageErrorKind, ok bool, recorder metrics.Recorder) {
	sc := r.StageCounts[stage]
	switch {
	case ok:
		sc.Success++
		recorder.IncStageResult(string(stage), metrics.ResultSuccess)
	case kind == StageErrorWarning:
		sc.Warning++
		recorder.IncStageResult(string(stage), metrics.ResultWarning)
	case kind == StageErrorCanceled:
		sc.Canceled++
		recorder.IncStageResult(string(stage), metrics.ResultCanceled)
	default:
		sc.Fatal++
		recorder.IncStageResult(string(stage), metrics.ResultFatal)
	}
	r.StageCounts[stage] = sc
}
