package repl

import (
	"bufio"
	"fmt"
	"io"
)

const eraseEOL = "\x1b[K"

// renderer keeps the visible line in sync with the buffer using three
// primitives: cursor moves by N columns, erase to end of line, and
// carriage-return-plus-redraw. Each operation ends with an explicit
// flush so nothing is left buffered while the loop blocks on input.
//
// One rune is assumed to occupy one terminal column.
type renderer struct {
	w      *bufio.Writer
	prompt string
}

func newRenderer(w io.Writer, prompt string) *renderer {
	return &renderer{w: bufio.NewWriter(w), prompt: prompt}
}

func (r *renderer) write(s string) error {
	if _, err := r.w.WriteString(s); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func (r *renderer) flush() error {
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrFlush, err)
	}
	return nil
}

func (r *renderer) moveLeft(n int) error {
	if n <= 0 {
		return nil
	}
	return r.write(fmt.Sprintf("\x1b[%dD", n))
}

// showPrompt writes the prompt at the current position.
func (r *renderer) showPrompt() error {
	if err := r.write(r.prompt); err != nil {
		return err
	}
	return r.flush()
}

// echo renders an append at the end of the line: just the character.
func (r *renderer) echo(ch rune) error {
	if err := r.write(string(ch)); err != nil {
		return err
	}
	return r.flush()
}

// insert renders a mid-line insertion. line is the post-insertion
// buffer and cursor the post-insertion position, so the glyph went in
// at cursor-1: back up to the insertion point, rewrite the whole
// line, erase leftovers, then park the cursor after the new glyph.
func (r *renderer) insert(line []rune, cursor int) error {
	if err := r.moveLeft(cursor - 1); err != nil {
		return err
	}
	if err := r.write(string(line)); err != nil {
		return err
	}
	if err := r.write(eraseEOL); err != nil {
		return err
	}
	if err := r.moveLeft(len(line) - cursor); err != nil {
		return err
	}
	return r.flush()
}

// deleteBackward renders removal of the character before the cursor.
// tail is the buffer content from the (already decremented) cursor to
// the end of the line.
func (r *renderer) deleteBackward(tail []rune) error {
	if err := r.moveLeft(1); err != nil {
		return err
	}
	if err := r.write(string(tail)); err != nil {
		return err
	}
	if err := r.write(eraseEOL); err != nil {
		return err
	}
	if err := r.moveLeft(len(tail)); err != nil {
		return err
	}
	return r.flush()
}

// redrawLine repaints the whole line after history navigation and
// leaves the cursor at column 0 of the text, matching the buffer's
// rewound cursor.
func (r *renderer) redrawLine(line string) error {
	if err := r.write("\r"); err != nil {
		return err
	}
	if err := r.write(r.prompt); err != nil {
		return err
	}
	if err := r.write(line); err != nil {
		return err
	}
	if err := r.write(eraseEOL); err != nil {
		return err
	}
	if err := r.moveLeft(len([]rune(line))); err != nil {
		return err
	}
	return r.flush()
}

func (r *renderer) cursorLeft() error {
	if err := r.write("\x1b[1D"); err != nil {
		return err
	}
	return r.flush()
}

func (r *renderer) cursorRight() error {
	if err := r.write("\x1b[1C"); err != nil {
		return err
	}
	return r.flush()
}

// newline moves output to the start of the next row. Raw mode here
// leaves output post-processing enabled, but emit CRLF explicitly so
// the renderer does not depend on ONLCR.
func (r *renderer) newline() error {
	if err := r.write("\r\n"); err != nil {
		return err
	}
	return r.flush()
}

// writeLine prints s followed by a newline, used for processor
// results between commits.
func (r *renderer) writeLine(s string) error {
	if err := r.write(s); err != nil {
		return err
	}
	return r.newline()
}
