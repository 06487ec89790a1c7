package tbuf

import (
	"fmt"

	"github.com/signadot/turbo-buf/debug"
	"github.com/signadot/turbo-buf/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies the RFC 6902 JSON patch document patch to the JSON form of
// t and returns the resulting tree. t is not modified.
func Patch(t *ir.Tree, patch []byte) (*ir.Tree, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return applyJSON(t, "json-patch", ops.Apply)
}

// MergePatch applies the RFC 7386 merge patch document patch to the JSON
// form of t. Children lists are replaced as a whole.
func MergePatch(t *ir.Tree, patch []byte) (*ir.Tree, error) {
	return applyJSON(t, "merge-patch", func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func applyJSON(t *ir.Tree, what string, apply func([]byte) ([]byte, error)) (*ir.Tree, error) {
	d, err := t.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("%s: before %s\n", what, string(d))
	}
	out, err := apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying %s: %w", what, err)
	}
	if debug.Patch() {
		debug.Logf("%s: after %s\n", what, string(out))
	}
	res := ir.NewTree()
	if err := res.UnmarshalJSON(out); err != nil {
		return nil, fmt.Errorf("%s result is not a tree: %w", what, err)
	}
	return res, nil
}
