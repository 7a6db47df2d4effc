package textkit

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Line terminators recognized alongside '\n', '\r' and "\r\n".
const (
	nextLine           = ''
	lineSeparator      = ' '
	paragraphSeparator = ' '
)

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', nextLine, lineSeparator, paragraphSeparator:
		return true
	}
	return false
}

// LineStarts returns the byte offset of the start of every line in
// text. The result is never empty; its first element is always 0, and
// a terminator at the very end of text starts one final empty line.
func LineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		if isLineBreak(r) {
			starts = append(starts, i)
		}
	}
	return starts
}

// SplitLines splits text into lines without their terminators.
func SplitLines(text string) []string {
	starts := LineStarts(text)
	lines := make([]string, len(starts))
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		lines[i] = trimEOL(text[start:end])
	}
	return lines
}

func trimEOL(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2]
	}
	if r, size := utf8.DecodeLastRuneInString(line); size > 0 && isLineBreak(r) {
		return line[:len(line)-size]
	}
	return line
}

// PositionOf converts a byte offset into zero-based line and column
// numbers using a table produced by LineStarts.
func PositionOf(lineStarts []int, offset int) (line, column int) {
	line = sort.SearchInts(lineStarts, offset+1) - 1
	return line, offset - lineStarts[line]
}
