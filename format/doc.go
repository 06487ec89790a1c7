// Package format names the output styles of the turbo-buf encoder.
//
// # Usage
//
//	s, err := format.ParseStyle("dense")
//	if err != nil {
//	    return err
//	}
//	encode.Encode(tree, ir.RootID, os.Stdout, encode.EncodeStyle(s))
//
// Style implements encoding.TextMarshaler and encoding.TextUnmarshaler so it
// can be used directly as a flag or configuration value.
package format
