package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/format"
	"github.com/signadot/turbo-buf/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Dense  bool `cli:"name=d aliases=dense desc='output in dense style'"`
	Color  bool `cli:"name=color desc='encode with color'"`
	Refer  bool `cli:"name=refer desc='let trees alias input buffers instead of copying strings'"`
	KeepWS bool `cli:"name=keepws desc='do not skip whitespace between tokens'"`

	Style *format.Style

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) styleFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		s, err := format.ParseStyle(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Style = &s
		return s, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ReferInput(cfg.Refer),
		parse.IgnoreWhitespace(!cfg.KeepWS),
	}
}

func (cfg *MainConfig) style() format.Style {
	if cfg.Style != nil {
		return *cfg.Style
	}
	if cfg.Dense {
		return format.DenseStyle
	}
	return format.PrettyStyle
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeStyle(cfg.style()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

// endDoc terminates a document written in the dense style, which has no
// final newline of its own.
func (cfg *MainConfig) endDoc(w io.Writer) error {
	if cfg.style().IsPretty() {
		return nil
	}
	_, err := w.Write([]byte("\n"))
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Limit  int  `cli:"name=n desc='stop after n matches in each file'"`
	Values bool `cli:"name=v desc='print the matching subtrees instead of their paths'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Lines   bool `cli:"name=lines desc='diff the encodings line by line'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Merge  bool `cli:"name=merge desc='patch is a JSON merge patch'"`

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Indent bool `cli:"name=i desc='indent the JSON output'"`

	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig

	Load *cli.Command
}
