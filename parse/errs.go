package parse

import (
	"fmt"

	"github.com/signadot/turbo-buf/ir"
)

// Error reports input that ended inside a name or a text node.
type Error struct {
	// Offset is the position of the first input byte not represented in the
	// tree returned alongside the error.
	Offset int
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ir.ErrTruncatedInput, e.Offset, e.Reason)
}

func (e *Error) Unwrap() error {
	return ir.ErrTruncatedInput
}
