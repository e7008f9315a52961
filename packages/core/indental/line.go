package indental

import (
	"strings"
	"unicode"
)

const (
	// IndentStep is the number of characters a child is indented past its parent.
	IndentStep = 2

	commentMarker = ';'
	keySeparator  = " : "
)

// line is one classified input line.
type line struct {
	number  int // 1-based position in the input
	indent  int
	content string
	skipped bool
	hasKey  bool
	key     string
	value   string
}

// keyed reports whether the line contributes a key/value entry. A separator
// with nothing to its left does not count as a key.
func (l line) keyed() bool {
	return l.hasKey && l.key != ""
}

// isSpace matches the characters a regexp \s matches on Unicode text,
// including the ASCII information separators.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// classifyLines splits input on newlines and classifies every line, blank
// and comment lines included.
func classifyLines(input string) []line {
	raw := strings.Split(input, "\n")
	lines := make([]line, len(raw))
	for i, s := range raw {
		lines[i] = classify(s, i+1)
	}
	return lines
}

func classify(raw string, number int) line {
	l := line{
		number:  number,
		indent:  measureIndent(raw),
		content: strings.TrimFunc(raw, isSpace),
	}
	l.skipped = l.content == "" || raw[0] == commentMarker

	if key, value, found := strings.Cut(raw, keySeparator); found {
		l.hasKey = true
		l.key = strings.TrimFunc(key, isSpace)
		l.value = strings.TrimFunc(value, isSpace)
	}

	return l
}

// measureIndent counts the characters before the first non-whitespace
// character, or the whole line if there is none.
func measureIndent(raw string) int {
	n := 0
	for _, r := range raw {
		if !isSpace(r) {
			return n
		}
		n++
	}
	return n
}
