package main

import (
	"fmt"
	"io"
	"os"

	tbuf "github.com/signadot/turbo-buf"
	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	doc, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	apply := tbuf.Patch
	if cfg.Merge {
		apply = tbuf.MergePatch
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputs(args[1:]) {
		target, err := getTree(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := apply(target, doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res, ir.RootID, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if err := cfg.endDoc(cc.Out); err != nil {
			return err
		}
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
