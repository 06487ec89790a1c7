package main

import (
	"fmt"

	tbuf "github.com/signadot/turbo-buf"
	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a predicate", cli.ErrUsage)
	}
	pred := args[0]
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputs(args[1:]) {
		tree, err := getTree(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		ids, err := tbuf.Match(tree, ir.RootID, pred, tbuf.MatchLimit(cfg.Limit))
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		for _, id := range ids {
			if !cfg.Values {
				fmt.Fprintf(cc.Out, "/%s\n", tree.LPath(id))
				continue
			}
			if err := encode.Encode(tree, id, cc.Out, opts...); err != nil {
				return fmt.Errorf("error encoding output: %w", err)
			}
			if err := cfg.endDoc(cc.Out); err != nil {
				return err
			}
		}
	}
	return nil
}
