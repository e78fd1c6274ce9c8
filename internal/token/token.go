package token

import "strings"

// Token is a placeholder occurrence in a buffer.
type Token struct {
	Raw   string // with brackets, e.g. "[company.name]"
	Path  string // without brackets, e.g. "company.name"
	Start int    // byte offset of '['
	End   int    // byte offset just past ']'
}

// HasDot reports whether the path has more than one segment.
func (t Token) HasDot() bool {
	return strings.Contains(t.Path, ".")
}

// Segments splits the path on dots. Empty segments are kept, so "..." has four.
func (t Token) Segments() []string {
	return strings.Split(t.Path, ".")
}

// Wrap builds the raw token text for a path.
func Wrap(path string) string {
	return "[" + path + "]"
}

// CloseTag returns the closing tag for a group name, e.g. "[/items]".
func CloseTag(name string) string {
	return "[/" + name + "]"
}

// Next returns the leftmost token starting at or after from.
func Next(buf string, from int) (Token, bool) {
	if from < 0 {
		from = 0
	}

	for i := from; i < len(buf); i++ {
		if buf[i] != '[' {
			continue
		}

		j := i + 1
		for j < len(buf) && isPathByte(buf[j]) {
			j++
		}

		// at least one path byte and a closing bracket right after
		if j == i+1 || j >= len(buf) || buf[j] != ']' {
			continue
		}

		return Token{
			Raw:   buf[i : j+1],
			Path:  buf[i+1 : j],
			Start: i,
			End:   j + 1,
		}, true
	}

	return Token{}, false
}

// All returns every token in buf, left to right, without overlaps.
func All(buf string) []Token {
	var tokens []Token

	for pos := 0; ; {
		tok, ok := Next(buf, pos)
		if !ok {
			return tokens
		}

		tokens = append(tokens, tok)
		pos = tok.End
	}
}

// FindClose locates the nearest "[/name]" at or after from.
// It returns the offsets of the closing tag.
func FindClose(buf, name string, from int) (start, end int, ok bool) {
	if from < 0 || from > len(buf) {
		return 0, 0, false
	}

	tag := CloseTag(name)

	idx := strings.Index(buf[from:], tag)
	if idx < 0 {
		return 0, 0, false
	}

	start = from + idx

	return start, start + len(tag), true
}

// NextClose returns the leftmost closing tag "[/name]" at or after from.
func NextClose(buf string, from int) (name string, start, end int, ok bool) {
	if from < 0 {
		from = 0
	}

	for i := from; i+1 < len(buf); i++ {
		if buf[i] != '[' || buf[i+1] != '/' {
			continue
		}

		j := i + 2
		for j < len(buf) && isPathByte(buf[j]) {
			j++
		}

		if j == i+2 || j >= len(buf) || buf[j] != ']' {
			continue
		}

		return buf[i+2 : j], i, j + 1, true
	}

	return "", 0, 0, false
}

// IsIndex reports whether a segment is a non-negative integer literal.
func IsIndex(segment string) bool {
	if segment == "" {
		return false
	}

	for i := range len(segment) {
		if !isDigit(segment[i]) {
			return false
		}
	}

	return true
}

func isPathByte(b byte) bool {
	return isWordByte(b) || b == '.'
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b) || b == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
