package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/turbo-buf/ir"

	"github.com/scott-cotton/cli"

	json "github.com/goccy/go-json"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		tree, err := getTree(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := dumpTree(cfg, cc.Out, tree); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func dumpTree(cfg *DumpConfig, w io.Writer, tree *ir.Tree) error {
	j, err := tree.MarshalJSON()
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	if cfg.Indent {
		buf := bytes.NewBuffer(nil)
		if err := json.Indent(buf, j, "", "  "); err != nil {
			return err
		}
		j = buf.Bytes()
	}
	if _, err := w.Write(append(j, '\n')); err != nil {
		return fmt.Errorf("error writing: %w", err)
	}
	return nil
}
