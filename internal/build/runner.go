package build

import (
	"context"
	"errors"
	"time"
)

// StageDef pairs a stage name with its implementation.
type StageDef struct {
	Name StageName
	Fn   func(ctx context.Context, bs *BuildState) error
}

// runStages executes stages in order, recording timing and stopping on
// the first fatal error. Warning-classified stage errors are recorded
// and the pipeline continues.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	recorder := bs.Generator.recorder
	for _, st := range stages {
		select {
		case <-ctx.Done():
			se := newCanceledStageError(st.Name, ctx.Err())
			bs.Report.StageErrorKinds[st.Name] = se.Kind
			bs.Report.Errors = append(bs.Report.Errors, se)
			bs.Report.recordStageResult(st.Name, se.Kind, false, recorder)
			return se
		default:
		}

		t0 := time.Now()
		err := st.Fn(ctx, bs)
		bs.Report.StageDurations[st.Name] = time.Since(t0)
		recorder.ObserveStageDuration(string(st.Name), bs.Report.StageDurations[st.Name])

		if err == nil {
			bs.Report.recordStageResult(st.Name, "", true, recorder)
			continue
		}

		var se *StageError
		if !errors.As(err, &se) {
			// Unclassified errors abort the build.
			se = newFatalStageError(st.Name, err)
		}
		bs.Report.StageErrorKinds[st.Name] = se.Kind
		bs.Report.recordStageResult(st.Name, se.Kind, false, recorder)

		switch se.Kind {
		case StageErrorWarning:
			bs.Report.Warnings = append(bs.Report.Warnings, se)
		default:
			bs.Report.Errors = append(bs.Report.Errors, se)
			return se
		}
	}
	return nil
}
