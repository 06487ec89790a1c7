package main

import (
	"fmt"

	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputs(args) {
		tree, err := getTree(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := encode.Encode(tree, ir.RootID, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if err := cfg.endDoc(cc.Out); err != nil {
			return err
		}
	}
	return nil
}
