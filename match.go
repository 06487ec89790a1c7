package tbuf

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/turbo-buf/debug"
	"github.com/signadot/turbo-buf/ir"
	"github.com/signadot/turbo-buf/ir/lpath"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/vm"
)

var errStop = errors.New("stop")

type MatchConfig struct {
	Limit int
}

type MatchOpt func(*MatchConfig)

// MatchLimit stops matching after n matches. n <= 0 means no limit.
func MatchLimit(n int) MatchOpt {
	return func(c *MatchConfig) { c.Limit = n }
}

// NodeEnv is what a match predicate sees of a node.
type NodeEnv struct {
	Kind     string `expr:"kind"`
	Name     string `expr:"name"`
	Text     string `expr:"text"`
	Data     string `expr:"data"`
	Value    uint64 `expr:"value"`
	Depth    int    `expr:"depth"`
	Leaf     bool   `expr:"leaf"`
	Children int    `expr:"children"`
	Path     string `expr:"path"`

	t  *ir.Tree
	id ir.NodeID
}

// HasChild tells whether the node has a child called name.
func (e NodeEnv) HasChild(name string) bool {
	for c := range e.t.Children(e.id) {
		if e.t.Core(c).Name.String() == name {
			return true
		}
	}
	return false
}

func newNodeEnv(t *ir.Tree, id ir.NodeID, depth int) NodeEnv {
	core := t.Core(id)
	return NodeEnv{
		Kind:     core.Kind.String(),
		Name:     core.Name.String(),
		Text:     core.Text.String(),
		Data:     core.Data.Digits(),
		Value:    core.Data.Uint64(),
		Depth:    depth,
		Leaf:     t.IsLeaf(id),
		Children: t.ChildCount(id),
		t:        t,
		id:       id,
	}
}

// pathTracker builds the textual path of each node of a pre-order walk from
// its parent's, counting names per level for the selector indexes.
type pathTracker struct {
	t     *ir.Tree
	paths []string
	seen  []map[string]int
}

func (pt *pathTracker) visit(id ir.NodeID, depth int) string {
	pt.paths = pt.paths[:depth]
	pt.seen = pt.seen[:depth]
	var p string
	if depth == 0 {
		p = pt.t.LPath(id).String()
	} else {
		if pt.seen[depth-1] == nil {
			pt.seen[depth-1] = map[string]int{}
		}
		name := pt.t.Core(id).Name.String()
		idx := pt.seen[depth-1][name]
		pt.seen[depth-1][name] = idx + 1
		p = lpath.Exact(name, idx).String()
		if parent := pt.paths[depth-1]; parent != "" {
			p = parent + "/" + p
		}
	}
	pt.paths = append(pt.paths, p)
	pt.seen = append(pt.seen, nil)
	return p
}

// pathUse records whether a predicate reads the path of nodes.
type pathUse struct {
	used bool
}

func (u *pathUse) Visit(node *ast.Node) {
	if id, ok := (*node).(*ast.IdentifierNode); ok {
		switch id.Value {
		case "path", "$env":
			u.used = true
		}
	}
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(NodeEnv{}),
		expr.AsBool(),
		expr.Function("hex", func(params ...any) (any, error) {
			v, err := strconv.ParseUint(params[0].(string), 16, 64)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
			new(func(string) uint64)),
	}
}

// Match returns, in document order, the nodes of the subtree at from for
// which predicate holds. The predicate is an expr-lang boolean expression
// over the fields of NodeEnv, for example
//
//	kind == "norm" && name startsWith "fruit" && value >= hex("10")
//
// depth is relative to from. path is only computed when the predicate reads
// it.
func Match(t *ir.Tree, from ir.NodeID, predicate string, opts ...MatchOpt) ([]ir.NodeID, error) {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if !t.Valid(from) {
		return nil, fmt.Errorf("%w: no node %d", ir.ErrBadNode, from)
	}
	use := &pathUse{}
	prg, err := expr.Compile(predicate, append(exprOpts(), expr.Patch(use))...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", predicate, err)
	}
	var (
		res   []ir.NodeID
		paths *pathTracker
	)
	if use.used || debug.Match() {
		paths = &pathTracker{t: t}
	}
	err = t.Walk(from, func(id ir.NodeID, depth int, _ bool) error {
		env := newNodeEnv(t, id, depth)
		if paths != nil {
			env.Path = paths.visit(id, depth)
		}
		v, err := vm.Run(prg, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q at node %d: %w", predicate, id, err)
		}
		if debug.Match() {
			debug.Logf("match %q at %q: %v\n", predicate, env.Path, v)
		}
		if ok, _ := v.(bool); !ok {
			return nil
		}
		res = append(res, id)
		if cfg.Limit > 0 && len(res) == cfg.Limit {
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	return res, nil
}
