// Package repl implements a minimal line editor over a raw-mode
// terminal: per-byte input decoding, in-place editing, history
// recall, and hand-off of committed lines to an injected processor.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ProcessFunc receives a committed line and returns the text to print
// in response. An error aborts the editor loop.
type ProcessFunc func(line string) (string, error)

// CompleteFunc decides, when Enter is pressed, whether the current
// line is ready to commit. Returning false turns the Enter into a
// plain newline insertion so input keeps accumulating.
type CompleteFunc func(line string) bool

// Config wires an Editor. Input, Output and ErrOutput default to the
// standard streams; Process defaults to a processor that produces no
// output; a nil IsComplete commits on every Enter.
type Config struct {
	Prompt     string
	Input      io.Reader
	Output     io.Writer
	ErrOutput  io.Writer
	Process    ProcessFunc
	IsComplete CompleteFunc
	Quiet      bool
}

// Editor owns all mutable editing state: the line buffer, the
// history, and the decoder. It is single-threaded; Run blocks on
// one-byte reads and must not be called concurrently.
type Editor struct {
	in         io.Reader
	render     *renderer
	errOut     io.Writer
	process    ProcessFunc
	isComplete CompleteFunc
	quiet      bool

	dec  decoder
	buf  lineBuffer
	hist history
}

// New constructs an Editor. It performs no terminal I/O; raw mode is
// the caller's responsibility (see the terminal package).
func New(cfg Config) *Editor {
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.ErrOutput == nil {
		cfg.ErrOutput = os.Stderr
	}
	if cfg.Process == nil {
		cfg.Process = func(string) (string, error) { return "", nil }
	}
	return &Editor{
		in:         cfg.Input,
		render:     newRenderer(cfg.Output, cfg.Prompt),
		errOut:     cfg.ErrOutput,
		process:    cfg.Process,
		isComplete: cfg.IsComplete,
		quiet:      cfg.Quiet,
	}
}

// Run reads input one byte at a time until a terminate action, end of
// input, or a failure. End of input returns nil; read, write, flush
// and processing failures return the corresponding error kind.
func (e *Editor) Run() error {
	if err := e.render.showPrompt(); err != nil {
		return err
	}
	var one [1]byte
	for {
		n, rerr := e.in.Read(one[:])
		if n > 0 {
			done, err := e.apply(e.dec.feed(one[0]))
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return nil
			}
			return fmt.Errorf("%w: %v", ErrRead, rerr)
		}
	}
}

// History returns a copy of the committed lines, oldest first.
func (e *Editor) History() []string {
	out := make([]string, len(e.hist.lines))
	copy(out, e.hist.lines)
	return out
}

// apply mutates buffer/history state for one action and renders the
// result. done reports that the loop should stop.
func (e *Editor) apply(act editAction) (done bool, err error) {
	switch act.kind {
	case editNone:
		return false, nil

	case editTerminate:
		// The uncommitted buffer is discarded, not appended.
		return true, nil

	case editInsert:
		return false, e.insertChar(act.ch)

	case editDeleteBackward:
		if !e.buf.deleteBackward() {
			return false, nil
		}
		return false, e.render.deleteBackward(e.buf.tail())

	case editCursorLeft:
		if !e.buf.moveCursor(-1) {
			return false, nil
		}
		return false, e.render.cursorLeft()

	case editCursorRight:
		if !e.buf.moveCursor(1) {
			return false, nil
		}
		return false, e.render.cursorRight()

	case editHistoryPrev:
		line, ok := e.hist.prev()
		if !ok {
			return false, nil
		}
		e.buf.replace(line)
		return false, e.render.redrawLine(line)

	case editHistoryNext:
		line, ok := e.hist.next()
		if !ok {
			return false, nil
		}
		e.buf.replace(line)
		return false, e.render.redrawLine(line)

	case editCommit:
		return false, e.commit()
	}
	return false, nil
}

func (e *Editor) insertChar(ch rune) error {
	atEnd := e.buf.atEnd()
	e.buf.insert(ch)
	if atEnd {
		return e.render.echo(ch)
	}
	return e.render.insert(e.buf.runes, e.buf.cursor)
}

// commit finalizes the line under edit: append it to history, hand it
// to the processor, print the result, and reissue the prompt. The
// history append happens before processing so the entry survives a
// processor failure. If the completeness predicate rejects the line,
// Enter degrades to inserting a newline character.
func (e *Editor) commit() error {
	if e.isComplete != nil && !e.isComplete(e.buf.String()) {
		return e.insertChar('\n')
	}
	line := e.buf.take()
	e.hist.add(line)
	if err := e.render.newline(); err != nil {
		return err
	}
	result, err := e.process(line)
	if err != nil {
		fmt.Fprintf(e.errOut, "error: %v\r\n", err)
		return fmt.Errorf("%w: %v", ErrProcess, err)
	}
	if result != "" && !e.quiet {
		if err := e.render.writeLine(result); err != nil {
			return err
		}
	}
	return e.render.showPrompt()
}
