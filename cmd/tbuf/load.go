package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/turbo-buf/encode"
	"github.com/signadot/turbo-buf/ir"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputs(args) {
		tree, err := loadTree(cc, file)
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

// loadTree reads a tree in the JSON form written by dump.
func loadTree(cc *cli.Context, file string) (*ir.Tree, error) {
	var (
		d   []byte
		err error
	)
	if file != "-" {
		d, err = os.ReadFile(file)
	} else {
		d, err = io.ReadAll(cc.In)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	tree := ir.NewTree()
	if err := tree.UnmarshalJSON(d); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return tree, nil
}
