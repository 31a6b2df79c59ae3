package task

import "errors"

var (
	// ErrUnknownProgram means the loader contract could not resolve an
	// identifier to a built-in program. A script file that cannot be read
	// yields the underlying file error instead.
	ErrUnknownProgram = errors.New("task: unknown program")

	// ErrTaskAlreadyDone means Step was called again after a Done event.
	ErrTaskAlreadyDone = errors.New("task: step called after completion")

	// ErrScriptDecode means a scripted task file could not be parsed.
	ErrScriptDecode = errors.New("task: malformed script file")

	// ErrScriptEmpty means a scripted task file had no yields and no return
	// value, which would produce a Task that is immediately Done with
	// nothing to trace.
	ErrScriptEmpty = errors.New("task: script has no yields or return value")
)
