// Package debug holds the debugging switches of turbo-buf and a logger.
//
// Each switch is read once from the environment at start up:
//
//	TBUF_DEBUG_PARSE  parser tokens and truncations
//	TBUF_DEBUG_MATCH  match predicates and their results
//	TBUF_DEBUG_PATCH  JSON patch documents before and after application
//	TBUF_DEBUG_DIFF   line diffs of trees
//
// Call sites guard logging with the switch:
//
//	if debug.Parse() {
//		debug.Logf("parse: %s at %d\n", what, off)
//	}
package debug
