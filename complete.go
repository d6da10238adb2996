package main

// isComplete reports whether a snippet is balanced enough to hand to
// the interpreter: no open (, [ or { and no unterminated string, rune
// or raw literal. An unbalanced line keeps the editor accumulating
// input (Enter inserts a newline) instead of committing.
func isComplete(line string) bool {
	var quote rune
	escaped := false
	inComment := false
	depth := 0

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inComment:
			if r == '\n' {
				inComment = false
			}
		case quote != 0:
			switch {
			case escaped:
				escaped = false
			case r == '\\' && quote != '`':
				escaped = true
			case r == quote:
				quote = 0
			}
		default:
			switch r {
			case '"', '\'', '`':
				quote = r
			case '/':
				if i+1 < len(runes) && runes[i+1] == '/' {
					inComment = true
					i++
				}
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			}
		}
	}
	return quote == 0 && depth <= 0
}
