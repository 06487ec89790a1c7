package encode

import (
	"strings"

	"github.com/signadot/turbo-buf/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.NodeKind
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	DataColor
	TextColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = DataColor
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able := Colorable{Kind: ir.NormKind, Attr: NameColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Kind = ir.TextKind
	able.Attr = NameColor
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Attr = TextColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = ir.RootKind
	able.Attr = DataColor
	colors.Map[able] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.NodeKind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.NodeKind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
