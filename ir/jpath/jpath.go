package jpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnterminatedIndex = errors.New("unterminated index")
	ErrBadIndex          = errors.New("bad index")
)

// JPath is a parsed path. Exactly one of Field and Index is set in each
// segment.
type JPath struct {
	Field *string
	Index *int
	Next  *JPath
}

func Field(name string) *JPath {
	return &JPath{Field: &name}
}

func Index(i int) *JPath {
	return &JPath{Index: &i}
}

// Parse parses a path. The empty path parses to nil.
func Parse(path string) (*JPath, error) {
	var head, tail *JPath
	add := func(seg *JPath) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	i, n := 0, len(path)
	for i < n {
		if path[i] == '[' {
			j := strings.IndexByte(path[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w at offset %d in %q", ErrUnterminatedIndex, i, path)
			}
			idx, err := parseIndex(path[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("%w at offset %d in %q", err, i, path)
			}
			add(Index(idx))
			i += j + 1
			continue
		}
		if path[i] == '/' {
			i++
		}
		start := i
		for i < n && path[i] != '/' && path[i] != '[' {
			i++
		}
		add(Field(path[start:i]))
	}
	return head, nil
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadIndex)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadIndex, s)
		}
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadIndex, err)
	}
	return idx, nil
}

// MustParse is like Parse but panics on error.
func MustParse(path string) *JPath {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical form of p, such that Parse(p.String())
// yields an equal path.
func (p *JPath) String() string {
	var buf strings.Builder
	for x := p; x != nil; x = x.Next {
		if x.Index != nil {
			fmt.Fprintf(&buf, "[%d]", *x.Index)
			continue
		}
		if x.Field == nil {
			continue
		}
		if x != p || *x.Field == "" {
			buf.WriteByte('/')
		}
		buf.WriteString(*x.Field)
	}
	return buf.String()
}

// Append returns a copy of p with seg appended.
func (p *JPath) Append(seg *JPath) *JPath {
	if p == nil {
		return seg.copy()
	}
	res := p.copy()
	x := res
	for x.Next != nil {
		x = x.Next
	}
	x.Next = seg.copy()
	return res
}

func (p *JPath) copy() *JPath {
	if p == nil {
		return nil
	}
	res := &JPath{}
	if p.Field != nil {
		f := *p.Field
		res.Field = &f
	}
	if p.Index != nil {
		i := *p.Index
		res.Index = &i
	}
	res.Next = p.Next.copy()
	return res
}

// Len returns the number of segments in p.
func (p *JPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}
