package offers

import (
	"errors"
	"fmt"

	"github.com/c-e-daly/prophet-sub001/pkg/enums"
)

// StageError tags a pipeline failure with the stage it happened at, so a
// caller knows how far the submission got and whether a retry from the top
// is safe.
type StageError struct {
	Stage enums.PipelineStage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// SafeToRetry reports whether replaying the whole submission after this
// failure cannot duplicate data.
func (e *StageError) SafeToRetry() bool {
	return e.Stage.SafeToRetry()
}

func stageErr(stage enums.PipelineStage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// StageOf extracts the failed stage from an error chain. The second return
// is false when the error did not come from the pipeline.
func StageOf(err error) (enums.PipelineStage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
