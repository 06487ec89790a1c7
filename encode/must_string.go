package encode

import (
	"bytes"

	"github.com/signadot/turbo-buf/ir"
)

// MustString encodes the subtree at from into a string. Trailing whitespace
// is kept: the dense style ends empty leaves with a space.
func MustString(t *ir.Tree, from ir.NodeID, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, from, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
