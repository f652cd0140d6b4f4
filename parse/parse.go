package parse

import (
	"fmt"
	"os"
	"slices"

	"github.com/signadot/tony-format/go-jdoc/debug"
	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/token"

	"github.com/valyala/fastjson/fastfloat"
)

// Parse parses the document in d.
func Parse(d []byte, opts ...ParseOption) *ir.Node {
	pOpts := &parseOpts{maxDepth: MaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{s: token.NewScanner(d), opts: pOpts}
	p.s.SkipWhitespace()

	var res *ir.Node
	switch p.s.Peek(0) {
	case '{':
		res = p.parseObject(1)
	case '[':
		res = p.parseArray(1)
	default:
		res = p.fail(ir.InvalidValue)
	}
	if pOpts.trailing && res.Type != ir.ErrorType {
		p.s.SkipWhitespace()
		if !p.s.EOF() {
			res = p.fail(ir.TrailingData)
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes into %s (%d:%d)\n", len(d), res.Type, p.s.Line, p.s.Col)
		if err := ir.FirstError(res); err != nil {
			debug.Logf("first error: %v\n", err)
		}
	}
	return res
}

// ParseFile reads and parses the file at path. The error reports I/O
// failures only; parse failures are in the returned tree.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return Parse(d, opts...), nil
}

type parser struct {
	s    token.Scanner
	opts *parseOpts
}

func (p *parser) fail(k ir.ErrorKind) *ir.Node {
	return ir.FromError(k, p.s.Line, p.s.Col)
}

func (p *parser) track(node *ir.Node, pos token.Pos) *ir.Node {
	if p.opts.positions != nil {
		p.opts.positions[node] = pos
	}
	return node
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (p *parser) parseValue(depth int) *ir.Node {
	p.s.SkipWhitespace()
	if p.s.EOF() {
		return p.fail(ir.UnexpectedEnd)
	}
	switch c := p.s.Peek(0); c {
	case '"':
		return p.parseString()
	case '{':
		return p.parseObject(depth + 1)
	case '[':
		return p.parseArray(depth + 1)
	case 't', 'f':
		return p.parseBool()
	case 'n':
		return p.parseNull()
	default:
		if c == '-' || isDigit(c) {
			return p.parseNumber()
		}
	}
	return p.fail(ir.InvalidValue)
}

func (p *parser) parseString() *ir.Node {
	pos := p.s.Pos()
	p.s.Advance(1)
	end := p.s.IndexByte('"')
	if end == -1 {
		p.s.Consume(p.s.Len())
		return p.fail(ir.UnexpectedEnd)
	}
	res := ir.FromString(string(p.s.Bytes(p.s.I, end)))
	p.s.Consume(end - p.s.I + 1)
	return p.track(res, pos)
}

func (p *parser) parseBool() *ir.Node {
	pos := p.s.Pos()
	if p.s.Peek(0) == 't' {
		p.s.Advance(4)
		return p.track(ir.FromBool(true), pos)
	}
	p.s.Advance(5)
	return p.track(ir.FromBool(false), pos)
}

func (p *parser) parseNull() *ir.Node {
	pos := p.s.Pos()
	p.s.Advance(4)
	return p.track(ir.Null(), pos)
}

func (p *parser) parseNumber() *ir.Node {
	pos := p.s.Pos()
	start := p.s.I
	float := false
	for {
		c := p.s.Peek(0)
		if c == '.' {
			float = true
		} else if c != '-' && !isDigit(c) {
			break
		}
		p.s.Advance(1)
	}
	span := string(p.s.Bytes(start, p.s.I))
	if float {
		return p.track(ir.FromFloat(float32(fastfloat.ParseBestEffort(span))), pos)
	}
	return p.track(ir.FromInt(int32(fastfloat.ParseInt64BestEffort(span))), pos)
}

// tooDeep skips the container at the cursor and reports NestingTooDeep at
// its opening bracket.
func (p *parser) tooDeep() *ir.Node {
	res := p.fail(ir.NestingTooDeep)
	p.s.Advance(1)
	p.resync()
	return res
}

// resync skips to just after the bracket closing the container the cursor is
// in. Strings are skipped whole so brackets inside them are not counted.
func (p *parser) resync() {
	level := 1
	for !p.s.EOF() {
		switch p.s.Peek(0) {
		case '"':
			p.s.Advance(1)
			end := p.s.IndexByte('"')
			if end == -1 {
				p.s.Consume(p.s.Len())
				return
			}
			p.s.Consume(end - p.s.I + 1)
			continue
		case '{', '[':
			level++
		case '}', ']':
			level--
			if level == 0 {
				p.s.Advance(1)
				return
			}
		case ' ', '\t', '\r', '\n':
			p.s.SkipWhitespace()
			continue
		}
		p.s.Advance(1)
	}
}

// failContainer builds an error node of kind k at the cursor and skips the
// rest of the enclosing container.
func (p *parser) failContainer(k ir.ErrorKind) *ir.Node {
	res := p.fail(k)
	if k != ir.UnexpectedEnd {
		p.resync()
	}
	return res
}

// stuck reports whether a child parsed from start is an error that consumed
// no input. Such a child cannot be stepped over, so it fails its container.
func (p *parser) stuck(child *ir.Node, start int) bool {
	return child.Type == ir.ErrorType && p.s.I == start
}

func (p *parser) parseArray(depth int) *ir.Node {
	if depth > p.opts.maxDepth {
		return p.tooDeep()
	}
	pos := p.s.Pos()
	p.s.Advance(1)
	res := &ir.Node{Type: ir.ArrayType, Values: []*ir.Node{}}

	p.s.SkipWhitespace()
	if p.s.Peek(0) == ']' {
		p.s.Advance(1)
		return p.track(res, pos)
	}
	for {
		p.s.SkipWhitespace()
		if p.s.EOF() {
			return p.fail(ir.UnexpectedEnd)
		}
		start := p.s.I
		elt := p.parseValue(depth)
		if p.stuck(elt, start) {
			if elt.Error.Kind != ir.UnexpectedEnd {
				p.resync()
			}
			return elt
		}
		res.Values = append(res.Values, elt)

		p.s.SkipWhitespace()
		switch p.s.Peek(0) {
		case ',':
			p.s.Advance(1)
			p.s.SkipWhitespace()
			if p.s.Peek(0) != ']' {
				continue
			}
			fallthrough
		case ']':
			p.s.Advance(1)
			res.Values = slices.Clip(res.Values)
			return p.track(res, pos)
		}
		// no comma: arrays accept the next element as is.
	}
}

func (p *parser) parseObject(depth int) *ir.Node {
	if depth > p.opts.maxDepth {
		return p.tooDeep()
	}
	pos := p.s.Pos()
	p.s.Advance(1)
	res := &ir.Node{Type: ir.ObjectType, Fields: []*ir.Node{}, Values: []*ir.Node{}}

	p.s.SkipWhitespace()
	if p.s.Peek(0) == '}' {
		p.s.Advance(1)
		return p.track(res, pos)
	}
	for {
		p.s.SkipWhitespace()
		switch {
		case p.s.EOF():
			return p.fail(ir.UnexpectedEnd)
		case p.s.Peek(0) != '"':
			return p.failContainer(ir.InvalidValue)
		}
		key := p.parseString()
		if key.Type == ir.ErrorType {
			return key
		}

		p.s.SkipWhitespace()
		if p.s.Peek(0) != ':' {
			if p.s.EOF() {
				return p.fail(ir.UnexpectedEnd)
			}
			return p.failContainer(ir.MissingColon)
		}
		p.s.Advance(1)

		p.s.SkipWhitespace()
		start := p.s.I
		val := p.parseValue(depth)
		if p.stuck(val, start) {
			if val.Error.Kind != ir.UnexpectedEnd {
				p.resync()
			}
			return val
		}
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, val)

		p.s.SkipWhitespace()
		if p.s.Peek(0) == ',' {
			p.s.Advance(1)
			p.s.SkipWhitespace()
			if p.s.Peek(0) == '}' {
				p.s.Advance(1)
				return p.close(res, pos)
			}
			continue
		}
		// lookahead without commit: only a closing brace may follow.
		cp := p.s
		cp.SkipWhitespace()
		if cp.Peek(0) == '}' {
			cp.Advance(1)
			p.s = cp
			return p.close(res, pos)
		}
		if p.s.EOF() {
			return p.fail(ir.UnexpectedEnd)
		}
		return p.failContainer(ir.MissingComma)
	}
}

func (p *parser) close(obj *ir.Node, pos token.Pos) *ir.Node {
	obj.Fields = slices.Clip(obj.Fields)
	obj.Values = slices.Clip(obj.Values)
	return p.track(obj, pos)
}
