package token

import "bytes"

// Scanner is a cursor over d.
type Scanner struct {
	d    []byte
	I    int
	Line int
	Col  int
}

// NewScanner returns a scanner positioned at the first byte of d, which is
// at line 1, column 1.
func NewScanner(d []byte) Scanner {
	return Scanner{d: d, Line: 1, Col: 1}
}

// Peek returns the byte off bytes after the current one without advancing.
// Peek(0) is the current byte. Out of range reads return 0.
func (s *Scanner) Peek(off int) byte {
	i := s.I + off
	if i < 0 || i >= len(s.d) {
		return 0
	}
	return s.d[i]
}

// Advance moves the cursor n bytes forward on the current line. Newlines are
// not special cased; the cursor never moves past the end of the buffer.
func (s *Scanner) Advance(n int) {
	if n <= 0 {
		return
	}
	n = min(n, len(s.d)-s.I)
	s.I += n
	s.Col += n
}

// Consume is like Advance but keeps the line and column current across
// newlines in the consumed bytes.
func (s *Scanner) Consume(n int) {
	end := min(s.I+max(n, 0), len(s.d))
	for s.I < end {
		if s.d[s.I] == '\n' {
			s.Line++
			s.Col = 1
		} else {
			s.Col++
		}
		s.I++
	}
}

// SkipWhitespace skips spaces, tabs, carriage returns and newlines.
func (s *Scanner) SkipWhitespace() {
	for s.I < len(s.d) {
		switch s.d[s.I] {
		case ' ', '\t', '\r':
			s.I++
			s.Col++
		case '\n':
			s.I++
			s.Line++
			s.Col = 1
		default:
			return
		}
	}
}

func (s *Scanner) EOF() bool {
	return s.I >= len(s.d)
}

func (s *Scanner) Len() int {
	return len(s.d)
}

func (s *Scanner) Pos() Pos {
	return Pos{I: s.I, Line: s.Line, Col: s.Col}
}

// Bytes returns d[from:to] clamped to the buffer. The result aliases the
// scanned buffer.
func (s *Scanner) Bytes(from, to int) []byte {
	from = min(max(from, 0), len(s.d))
	to = min(max(to, from), len(s.d))
	return s.d[from:to]
}

// IndexByte returns the offset of the first c at or after the cursor, or -1.
func (s *Scanner) IndexByte(c byte) int {
	if s.I >= len(s.d) {
		return -1
	}
	i := bytes.IndexByte(s.d[s.I:], c)
	if i < 0 {
		return -1
	}
	return s.I + i
}
