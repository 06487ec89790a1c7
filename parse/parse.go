package parse

import (
	"github.com/signadot/turbo-buf/debug"
	"github.com/signadot/turbo-buf/fio"
	"github.com/signadot/turbo-buf/ir"
)

const (
	escMarker     = '\\'
	commentMarker = '#'
	openMarker    = '{'
	closeMarker   = '}'
)

// Parse reads in to its end. On truncated input it returns the partial tree
// together with an *Error.
func Parse(in fio.Input, opts ...ParseOption) (*ir.Tree, error) {
	pOpts := &parseOpts{ignoreWhitespace: true}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		in:     in,
		tree:   ir.NewTree(),
		ws:     pOpts.ignoreWhitespace,
		refer:  pOpts.referInput && in.Mutable(),
		parent: ir.RootID,
	}
	if err := p.run(); err != nil {
		return p.tree, err
	}
	return p.tree, nil
}

// ParseBytes parses d. With ReferInput(true) the tree aliases d.
func ParseBytes(d []byte, opts ...ParseOption) (*ir.Tree, error) {
	return Parse(fio.NewFastInput(d), opts...)
}

// ParseString parses s. s is never aliased.
func ParseString(s string, opts ...ParseOption) (*ir.Tree, error) {
	return Parse(fio.NewFastInput([]byte(s)), opts...)
}

type parser struct {
	in     fio.Input
	tree   *ir.Tree
	ws     bool
	refer  bool
	parent ir.NodeID
}

func (p *parser) run() error {
	if _, ok := p.in.Curr(); !ok {
		return nil
	}
	p.tree.SetRootData(p.hexes())
	for {
		c, ok := p.in.Curr()
		if !ok {
			return nil
		}
		switch {
		case p.ws && ir.IsSpace(c):
			p.in.Advance()
		case c == commentMarker:
			p.comment()
		case c == ir.TextMarker:
			if err := p.text(); err != nil {
				return err
			}
		case c == closeMarker:
			p.in.Advance()
			if p.parent != ir.RootID {
				p.parent = p.tree.Parent(p.parent)
			} else if debug.Parse() {
				debug.Logf("parse: ignoring excess closer at %d\n", int(p.in.Mark())-1)
			}
		default:
			if err := p.norm(); err != nil {
				return err
			}
		}
	}
}

func (p *parser) truncated(m fio.Mark, reason string) error {
	if debug.Parse() {
		debug.Logf("parse: truncated %s started at %d\n", reason, int(m))
	}
	return &Error{Offset: int(m), Reason: reason}
}

// str materializes a span as a borrowed view or a pooled copy.
func (p *parser) str(s fio.LenString) ir.Str {
	if len(s) == 0 {
		return ir.Str{}
	}
	if p.refer {
		return ir.Borrow(s.UnsafeString())
	}
	return p.tree.Pool().Intern(s)
}

func (p *parser) unescaped(s fio.LenString) ir.Str {
	if p.refer {
		return p.str(s.UnescapeInPlace(escMarker))
	}
	return p.tree.Pool().Intern(s.Unescape(escMarker))
}

// hexes reads the maximal run of [0-9A-F], possibly empty.
func (p *parser) hexes() ir.Hexes {
	m := p.in.Mark()
	for {
		c, ok := p.in.Curr()
		if !ok || !ir.IsHexChar(c) {
			break
		}
		p.in.Advance()
	}
	return ir.MakeHexes(p.str(p.in.FromMarkToLast(m)))
}

func (p *parser) comment() {
	for {
		c, ok := p.in.Curr()
		if !ok {
			return
		}
		p.in.Advance()
		if c == '\n' {
			return
		}
	}
}

func (p *parser) text() error {
	start := p.in.Mark()
	for {
		c, ok := p.in.Curr()
		if !ok {
			return p.truncated(start, "text node name")
		}
		if c == openMarker {
			break
		}
		p.in.Advance()
	}
	name := p.in.FromMarkToLast(start)
	p.in.Advance()
	bm := p.in.Mark()
	escaped := false
	for {
		c, ok := p.in.Curr()
		if !ok {
			return p.truncated(start, "text node body")
		}
		if escaped {
			escaped = false
		} else if c == escMarker {
			escaped = true
		} else if c == closeMarker {
			break
		}
		p.in.Advance()
	}
	body := p.in.FromMarkToLast(bm)
	p.in.Advance()
	p.tree.AppendCore(p.parent, ir.NodeCore{
		Kind: ir.TextKind,
		Name: p.str(name),
		Text: p.unescaped(body),
	})
	return nil
}

func (p *parser) norm() error {
	start := p.in.Mark()
	for {
		c, ok := p.in.Curr()
		if !ok {
			return p.truncated(start, "name without '{' or whitespace")
		}
		if c == openMarker {
			break
		}
		if ir.IsSpace(c) {
			name := p.in.FromMarkToLast(start)
			p.in.Advance()
			p.tree.AppendCore(p.parent, ir.NodeCore{
				Kind: ir.NormKind,
				Name: p.str(name),
			})
			return nil
		}
		p.in.Advance()
	}
	name := p.in.FromMarkToLast(start)
	p.in.Advance()
	p.parent = p.tree.AppendCore(p.parent, ir.NodeCore{
		Kind: ir.NormKind,
		Name: p.str(name),
		Data: p.hexes(),
	})
	return nil
}
