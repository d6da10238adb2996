package repl

// history is the append-only sequence of committed lines plus the
// browse cursor used while navigating with the arrow keys. Entries
// are never mutated or removed once appended.
type history struct {
	lines []string
	pos   int
}

// add appends a committed line and rewinds browsing to the end, so
// the next prev() lands on this entry.
func (h *history) add(line string) {
	h.lines = append(h.lines, line)
	h.pos = len(h.lines)
}

// prev steps to the previous entry. It reports false at the oldest
// entry or when history is empty.
func (h *history) prev() (string, bool) {
	if len(h.lines) == 0 || h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.lines[h.pos], true
}

// next steps to the following entry. At the newest entry it is a
// no-op: there is no transition to a blank line below it.
func (h *history) next() (string, bool) {
	if h.pos+1 >= len(h.lines) {
		return "", false
	}
	h.pos++
	return h.lines[h.pos], true
}
