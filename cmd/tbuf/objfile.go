package main

import (
	"fmt"

	"github.com/signadot/turbo-buf/fio"
	"github.com/signadot/turbo-buf/ir"
	"github.com/signadot/turbo-buf/parse"

	"github.com/scott-cotton/cli"
)

// getTree parses the file at path, or standard input for "-". The input
// buffer is kept by the tree when parsing with -refer.
func getTree(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Tree, error) {
	var (
		in  *fio.FastInput
		err error
	)
	if path != "-" {
		in, err = fio.ReadFile(path)
	} else {
		in, err = fio.ReadAll(cc.In)
	}
	if err != nil {
		return nil, err
	}
	tree, err := parse.Parse(in, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return tree, nil
}

// inputs returns the file arguments, standard input when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
