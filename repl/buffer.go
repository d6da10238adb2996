package repl

// lineBuffer holds the line under edit as runes plus a cursor, which
// is a character index in [0, len(runes)]. All operations keep the
// cursor inside that range.
type lineBuffer struct {
	runes  []rune
	cursor int
}

func (b *lineBuffer) String() string { return string(b.runes) }

func (b *lineBuffer) length() int { return len(b.runes) }

func (b *lineBuffer) atEnd() bool { return b.cursor == len(b.runes) }

// tail returns the runes from the cursor to the end of the line.
func (b *lineBuffer) tail() []rune { return b.runes[b.cursor:] }

// insert places r at the cursor and advances the cursor past it.
func (b *lineBuffer) insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
}

// deleteBackward removes the character before the cursor. It reports
// whether anything was removed; at column 0 it is a no-op.
func (b *lineBuffer) deleteBackward() bool {
	if b.cursor == 0 {
		return false
	}
	copy(b.runes[b.cursor-1:], b.runes[b.cursor:])
	b.runes = b.runes[:len(b.runes)-1]
	b.cursor--
	return true
}

// moveCursor shifts the cursor by delta, refusing moves that would
// leave [0, length]. It reports whether the cursor moved.
func (b *lineBuffer) moveCursor(delta int) bool {
	pos := b.cursor + delta
	if pos < 0 || pos > len(b.runes) {
		return false
	}
	b.cursor = pos
	return true
}

// replace swaps in text wholesale and rewinds the cursor to 0. Used
// by history navigation, which discards any in-progress edit.
func (b *lineBuffer) replace(text string) {
	b.runes = append(b.runes[:0], []rune(text)...)
	b.cursor = 0
}

// take returns the current text and leaves the buffer empty with the
// cursor at 0.
func (b *lineBuffer) take() string {
	text := string(b.runes)
	b.runes = b.runes[:0]
	b.cursor = 0
	return text
}
