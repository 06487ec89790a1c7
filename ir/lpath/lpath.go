package lpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadPath = errors.New("bad path")

// LevelDescender selects one child of a node.
type LevelDescender struct {
	// Name is the exact name or, when Prefix is set, the name prefix.
	Name string
	// Index is the zero-based position among the matching children.
	Index int
	// Prefix selects by name prefix instead of exact name.
	Prefix bool
}

func Exact(name string, index int) LevelDescender {
	return LevelDescender{Name: name, Index: index}
}

func Prefixed(prefix string, index int) LevelDescender {
	return LevelDescender{Name: prefix, Index: index, Prefix: true}
}

// Matches tells whether a child called name counts as a match.
func (d LevelDescender) Matches(name string) bool {
	if d.Prefix {
		return strings.HasPrefix(name, d.Name)
	}
	return name == d.Name
}

func (d LevelDescender) String() string {
	buf := &strings.Builder{}
	d.writeTo(buf)
	return buf.String()
}

func (d LevelDescender) writeTo(buf *strings.Builder) {
	for i := 0; i < len(d.Name); i++ {
		switch c := d.Name[i]; c {
		case '\\', '/', '*', '[':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		default:
			buf.WriteByte(c)
		}
	}
	if d.Prefix {
		buf.WriteByte('*')
	}
	if d.Index != 0 {
		buf.WriteByte('[')
		buf.WriteString(strconv.Itoa(d.Index))
		buf.WriteByte(']')
	}
}

// Path is a sequence of selectors applied from a starting node.
type Path []LevelDescender

func (p Path) String() string {
	buf := &strings.Builder{}
	for i := range p {
		if i != 0 {
			buf.WriteByte('/')
		}
		p[i].writeTo(buf)
	}
	return buf.String()
}

// Append returns p followed by ds. p is not modified.
func (p Path) Append(ds ...LevelDescender) Path {
	res := make(Path, 0, len(p)+len(ds))
	res = append(res, p...)
	return append(res, ds...)
}

// Parent returns p without its last selector, or nil for an empty path.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// Parse reads the textual form of a path.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	var res Path
	i := 0
	for {
		d, n, err := parseSegment(s, i)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
		i = n
		if i == len(s) {
			return res, nil
		}
		// s[i] == '/'
		i++
		if i == len(s) {
			return nil, fmt.Errorf("%w: trailing '/' in %q", ErrBadPath, s)
		}
	}
}

func parseSegment(s string, i int) (LevelDescender, int, error) {
	var (
		d    LevelDescender
		name strings.Builder
	)
	start := i
name:
	for i < len(s) {
		switch c := s[i]; c {
		case '\\':
			if i+1 == len(s) {
				return d, 0, fmt.Errorf("%w: dangling escape in %q", ErrBadPath, s)
			}
			name.WriteByte(s[i+1])
			i += 2
		case '/', '*', '[':
			break name
		default:
			name.WriteByte(c)
			i++
		}
	}
	d.Name = name.String()
	if i < len(s) && s[i] == '*' {
		d.Prefix = true
		i++
	}
	if i == start {
		return d, 0, fmt.Errorf("%w: empty segment at offset %d in %q", ErrBadPath, start, s)
	}
	if i < len(s) && s[i] == '[' {
		end := strings.IndexByte(s[i:], ']')
		if end < 0 {
			return d, 0, fmt.Errorf("%w: unterminated index in %q", ErrBadPath, s)
		}
		digits := s[i+1 : i+end]
		n, err := strconv.ParseUint(digits, 10, 31)
		if err != nil {
			return d, 0, fmt.Errorf("%w: bad index %q in %q", ErrBadPath, digits, s)
		}
		d.Index = int(n)
		i += end + 1
	}
	if i < len(s) && s[i] != '/' {
		return d, 0, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrBadPath, s[i], i, s)
	}
	return d, i, nil
}
