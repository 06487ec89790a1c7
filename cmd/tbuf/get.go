package main

import (
	"errors"
	"fmt"

	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/ir"
	"github.com/signadot/turbo-buf/ir/lpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := lpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputs(args[1:]) {
		tree, err := getTree(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		id, err := tree.Get(ir.RootID, p)
		if errors.Is(err, ir.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := encode.Encode(tree, id, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s of %s: %w", p, file, err)
		}
		if err := cfg.endDoc(cc.Out); err != nil {
			return err
		}
	}
	return nil
}
