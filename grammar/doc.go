/*
Package grammar implements the grammar precomputation stage: interning a
caller-supplied list of rules into small-integer symbol and rule ids, and
computing the transitive-closure bit matrices (sympred, right_recursion)
and the by-symbol prediction lists that the Earley chart engine in
package parser drives its hot path from.

A Grammar is built once via New (or the fluent Builder) and is immutable
and safely shared by any number of parsers afterwards.
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'earleyleo.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("earleyleo.grammar")
}
