package format

import (
	"errors"
	"fmt"
)

type Style int

const (
	// PrettyStyle writes one node per line, indented with tabs.
	PrettyStyle Style = iota
	// DenseStyle writes the whole tree on one line with the minimum of
	// separators.
	DenseStyle
)

var ErrBadStyle = errors.New("bad style")

func ParseStyle(v string) (Style, error) {
	s, ok := map[string]Style{
		"p":      PrettyStyle,
		"pretty": PrettyStyle,
		"d":      DenseStyle,
		"dense":  DenseStyle,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyle, v)
}

func (s Style) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case PrettyStyle:
		return []byte("pretty"), nil
	case DenseStyle:
		return []byte("dense"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a style>", s)
	}
}

func (s *Style) UnmarshalText(d []byte) error {
	ps, err := ParseStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

func (s Style) IsPretty() bool { return s == PrettyStyle }
func (s Style) IsDense() bool  { return s == DenseStyle }

// AllStyles returns all supported styles in preference order.
func AllStyles() []Style {
	return []Style{PrettyStyle, DenseStyle}
}
