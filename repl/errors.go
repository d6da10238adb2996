package repl

import "errors"

// Error kinds surfaced by the editor. Callers match them with
// errors.Is; the wrapped message carries the underlying cause.
var (
	// ErrInit means raw input mode could not be engaged.
	ErrInit = errors.New("repline: terminal initialization failed")
	// ErrRead means the byte source failed mid-loop.
	ErrRead = errors.New("repline: read failed")
	// ErrWrite means a rendering write did not reach the terminal.
	ErrWrite = errors.New("repline: write failed")
	// ErrFlush means buffered rendering output could not be flushed.
	ErrFlush = errors.New("repline: flush failed")
	// ErrProcess means the injected line processor rejected a commit.
	ErrProcess = errors.New("repline: line processing failed")
)
