package gantt

import "errors"

// ErrNoTerminatedProcesses means Render was asked to draw a chart for a run
// that produced no run-history at all.
var ErrNoTerminatedProcesses = errors.New("gantt: no terminated processes to render")

// ErrRenderBackend wraps a failure from the underlying plotting backend
// (missing fonts, unwritable output path, ...). It never changes the
// simulator's own exit code; the caller logs and moves on.
var ErrRenderBackend = errors.New("gantt: render backend error")
