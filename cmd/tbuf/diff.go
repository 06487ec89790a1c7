package main

import (
	"fmt"

	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/ir"
	"github.com/signadot/turbo-buf/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	a, err := getTree(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	b, err := getTree(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if cfg.Lines {
		txt := libdiff.DiffText(a, ir.RootID, b, ir.RootID)
		if txt == "" {
			return nil
		}
		if _, err := cc.Out.Write([]byte(txt)); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	changes := libdiff.Diff(a, ir.RootID, b, ir.RootID)
	if len(changes) == 0 {
		return nil
	}
	opts := append(cfg.encOpts(cc.Out), encode.Pretty(false))
	for _, c := range changes {
		var what string
		switch c.Op {
		case libdiff.Delete:
			what = encode.MustString(a, c.From, opts...)
		case libdiff.Insert:
			what = encode.MustString(b, c.To, opts...)
		case libdiff.Replace:
			what = fmt.Sprintf("%s -> %s", payload(a, c.From), payload(b, c.To))
		}
		fmt.Fprintf(cc.Out, "%s\t%s\n", c, what)
	}
	return cli.ExitCodeErr(1)
}

func payload(t *ir.Tree, id ir.NodeID) string {
	c := t.Core(id)
	if c.Kind == ir.TextKind {
		return fmt.Sprintf("%q", c.Text.String())
	}
	if c.Data.IsEmpty() {
		return "{}"
	}
	return c.Data.Digits()
}
