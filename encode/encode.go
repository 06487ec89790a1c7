package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/turbo-buf/format"
	"github.com/signadot/turbo-buf/ir"
)

var ErrEncoding = errors.New("encoding error")

const (
	escMarker   = '\\'
	openMarker  = "{"
	closeMarker = "}"
)

type EncState struct {
	// col is the number of bytes written on the current line.
	col   int
	style format.Style

	// open is the depth of the innermost node whose '{' has been written
	// and whose '}' has not.
	open int
	// afterOpen is set when the last thing written is a root payload or an
	// opener with its payload, so that a hex digit would extend it.
	afterOpen bool

	Color func(ir.NodeKind, ColorAttr, string) string
}

// Encode writes the subtree of t at from to w. Errors only come from w.
func Encode(t *ir.Tree, from ir.NodeID, w io.Writer, opts ...EncodeOption) error {
	if !t.Valid(from) {
		return fmt.Errorf("%w: no node %d", ErrEncoding, from)
	}
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	es.afterOpen = true
	base := 1
	if t.Core(from).Kind == ir.RootKind {
		base = 0
	}
	err := t.Walk(from, func(id ir.NodeID, depth int, leaf bool) error {
		return encodeNode(t.Core(id), depth+base, leaf, w, es)
	})
	if err != nil {
		return err
	}
	if err := writeClosers(w, es, 1); err != nil {
		return err
	}
	if es.style.IsPretty() && es.col > 0 {
		return writeNL(w, es)
	}
	return nil
}

func encodeNode(core ir.NodeCore, depth int, leaf bool, w io.Writer, es *EncState) error {
	if depth == 0 {
		return writeColored(w, es, core.Kind, DataColor, core.Data.Digits())
	}
	if err := writeClosers(w, es, depth); err != nil {
		return err
	}
	name := core.Name.String()
	sep := es.afterOpen && name != "" && ir.IsHexChar(name[0])
	es.afterOpen = false
	if es.style.IsPretty() {
		if es.col > 0 || sep {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := writeIndent(w, es, depth-1); err != nil {
			return err
		}
	} else if sep {
		if err := writeString(w, es, " "); err != nil {
			return err
		}
	}
	if err := writeColored(w, es, core.Kind, NameColor, name); err != nil {
		return err
	}
	if leaf && core.IsEmptyLeaf() {
		if es.style.IsDense() {
			return writeString(w, es, " ")
		}
		return nil
	}
	if err := writeColored(w, es, core.Kind, SepColor, openMarker); err != nil {
		return err
	}
	var err error
	if core.Kind == ir.TextKind {
		err = writeColored(w, es, core.Kind, TextColor, escapeText(core.Text.String()))
	} else {
		err = writeColored(w, es, core.Kind, DataColor, core.Data.Digits())
	}
	if err != nil {
		return err
	}
	if leaf {
		return writeColored(w, es, core.Kind, SepColor, closeMarker)
	}
	es.open = depth
	es.afterOpen = true
	return nil
}

// writeClosers closes every open level at or below depth.
func writeClosers(w io.Writer, es *EncState, depth int) error {
	for ; es.open >= depth && es.open > 0; es.open-- {
		if es.style.IsPretty() {
			if err := writeNL(w, es); err != nil {
				return err
			}
			if err := writeIndent(w, es, es.open-1); err != nil {
				return err
			}
		}
		if err := writeColored(w, es, ir.NormKind, SepColor, closeMarker); err != nil {
			return err
		}
	}
	return nil
}

func writeNL(w io.Writer, es *EncState) error {
	if err := writeString(w, es, "\n"); err != nil {
		return err
	}
	es.col = 0
	return nil
}

func writeIndent(w io.Writer, es *EncState, n int) error {
	if n <= 0 {
		return nil
	}
	return writeString(w, es, strings.Repeat("\t", n))
}

func writeColored(w io.Writer, es *EncState, k ir.NodeKind, a ColorAttr, s string) error {
	if s == "" {
		return nil
	}
	if es.Color != nil {
		s = es.Color(k, a, s)
	}
	return writeString(w, es, s)
}

func writeString(w io.Writer, es *EncState, s string) error {
	_, err := io.WriteString(w, s)
	es.col += len(s)
	return err
}

// escapeText prefixes every '\' and '}' of s with '\'.
func escapeText(s string) string {
	if !strings.ContainsAny(s, `\}`) {
		return s
	}
	buf := &strings.Builder{}
	buf.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == escMarker || c == '}' {
			buf.WriteByte(escMarker)
		}
		buf.WriteByte(c)
	}
	return buf.String()
}
