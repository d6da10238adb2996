package repl

import (
	"unicode"
	"unicode/utf8"
)

// Control bytes the decoder reacts to.
const (
	etx = 0x03 // Ctrl-C
	bs  = 0x08
	esc = 0x1b
	del = 0x7f
)

type editKind int

const (
	editNone editKind = iota
	editInsert
	editDeleteBackward
	editCursorLeft
	editCursorRight
	editHistoryPrev
	editHistoryNext
	editCommit
	editTerminate
)

// editAction is one discrete edit produced by the decoder. ch is set
// only for editInsert.
type editAction struct {
	kind editKind
	ch   rune
}

type decoderState int

const (
	stateNormal decoderState = iota
	stateEscape
	stateBracketed
)

// decoder classifies an incoming byte stream into edit actions. It
// consumes one byte per call and emits at most one action, buffering
// escape-sequence bytes and incomplete UTF-8 encodings in between.
type decoder struct {
	state   decoderState
	seq     []byte // bytes of the pending escape sequence
	partial []byte // incomplete multi-byte character
}

func (d *decoder) reset() {
	d.state = stateNormal
	d.seq = d.seq[:0]
}

// feed consumes the next input byte. ETX terminates from any state,
// discarding whatever sequence was in flight.
func (d *decoder) feed(b byte) editAction {
	if b == etx {
		d.reset()
		d.partial = d.partial[:0]
		return editAction{kind: editTerminate}
	}

	switch d.state {
	case stateEscape:
		d.seq = append(d.seq, b)
		if b == '[' {
			d.state = stateBracketed
		} else {
			// Unrecognized single-character escape, dropped.
			d.reset()
		}
		return editAction{}

	case stateBracketed:
		d.seq = append(d.seq, b)
		var act editAction
		switch b {
		case 'A':
			act = editAction{kind: editHistoryPrev}
		case 'B':
			act = editAction{kind: editHistoryNext}
		case 'C':
			act = editAction{kind: editCursorRight}
		case 'D':
			act = editAction{kind: editCursorLeft}
		}
		// Unrecognized tails fall through with no action; the state
		// always returns to normal either way.
		d.reset()
		return act
	}

	if len(d.partial) > 0 || b >= utf8.RuneSelf {
		d.partial = append(d.partial, b)
		if !utf8.FullRune(d.partial) {
			if len(d.partial) >= utf8.UTFMax {
				d.partial = d.partial[:0]
			}
			return editAction{}
		}
		r, _ := utf8.DecodeRune(d.partial)
		d.partial = d.partial[:0]
		if r != utf8.RuneError && insertable(r) {
			return editAction{kind: editInsert, ch: r}
		}
		return editAction{}
	}

	switch b {
	case esc:
		d.state = stateEscape
		d.seq = d.seq[:0]
		return editAction{}
	case 'q':
		return editAction{kind: editTerminate}
	case '\r', '\n':
		return editAction{kind: editCommit}
	case bs, del:
		return editAction{kind: editDeleteBackward}
	}
	if r := rune(b); insertable(r) {
		return editAction{kind: editInsert, ch: r}
	}
	return editAction{}
}

// insertable reports whether r may be placed into the line buffer:
// printable characters and whitespace other than tab. CR, LF and the
// control bytes are dispatched before this is consulted.
func insertable(r rune) bool {
	if r == '\t' {
		return false
	}
	return unicode.IsGraphic(r) || unicode.IsSpace(r)
}
