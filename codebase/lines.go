package codebase

import (
	"unicode/utf16"
	"unicode/utf8"
)

// LineIndex converts between byte offsets and LSP positions, whose
// character component counts UTF-16 code units.
type LineIndex struct {
	text   string
	starts []int
}

func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, starts: starts}
}

func (l *LineIndex) LineCount() int {
	return len(l.starts)
}

// lineEnd returns the offset of the line terminator of line, or the end of
// the text for the last line.
func (l *LineIndex) lineEnd(line int) int {
	if line+1 < len(l.starts) {
		end := l.starts[line+1]
		for end > l.starts[line] && (l.text[end-1] == '\n' || l.text[end-1] == '\r') {
			end--
		}
		return end
	}
	return len(l.text)
}

// Offset converts a zero-based line and UTF-16 character into a byte offset.
// Positions past the end of a line clamp to the line end, and lines past the
// end of the text clamp to the end of the text.
func (l *LineIndex) Offset(line, character int) int {
	if line < 0 {
		return 0
	}
	if line >= len(l.starts) {
		return len(l.text)
	}
	offset := l.starts[line]
	end := l.lineEnd(line)
	units := 0
	for offset < end && units < character {
		r, size := utf8.DecodeRuneInString(l.text[offset:])
		units += utf16.RuneLen(r)
		if units > character {
			break
		}
		offset += size
	}
	return offset
}

// Position converts a byte offset into a zero-based line and UTF-16
// character.
func (l *LineIndex) Position(offset int) (line, character int) {
	if offset > len(l.text) {
		offset = len(l.text)
	}
	if offset < 0 {
		offset = 0
	}
	lo, hi := 0, len(l.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line = lo
	for _, r := range l.text[l.starts[line]:offset] {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		character += n
	}
	return line, character
}
