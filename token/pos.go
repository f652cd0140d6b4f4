package token

import (
	"fmt"
	"strconv"
)

// Pos is a position within a scanned buffer.
type Pos struct {
	I    int
	Line int
	Col  int
}

func (p Pos) LineCol() (int, int) {
	return p.Line, p.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Sample returns a quoted excerpt of d around p for error messages.
func (p Pos) Sample(d []byte) string {
	if len(d) == 0 {
		return "?"
	}
	i := min(max(p.I, 0), len(d))
	sample := strconv.Quote(string(d[max(0, i-5):min(i+5, len(d))]))
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line, p.Col)
}

// PosAt returns the position of the byte at the 1-based line and col of d,
// as the scanner counts them. Positions past the end clamp to len(d).
func PosAt(d []byte, line, col int) Pos {
	s := NewScanner(d)
	for s.Line < line && !s.EOF() {
		i := s.IndexByte('\n')
		if i == -1 {
			s.Consume(len(d))
			break
		}
		s.Consume(i - s.I + 1)
	}
	if s.Line == line {
		s.Advance(col - 1)
	}
	return s.Pos()
}
