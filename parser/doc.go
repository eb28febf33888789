/*
Package parser implements the Earley recognizer driver (predict / scan /
advance / complete, folded into predict / advance / complete per the
recognizer design) together with Joop Leo's right-recursion collapse.

A Parser is constructed once over an immutable *grammar.Grammar, fed
tokens one at a time via Push, and queried with Success. Pushing a token
runs the per-token pipeline to a fixed point before returning — there is
no internal concurrency and no suspension point. A Parser owns its chart
exclusively and is not safe for concurrent use; a Grammar, by contrast,
may be shared across any number of Parsers running on independent
goroutines.
*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'earleyleo.parser'.
func tracer() tracing.Trace {
	return tracing.Select("earleyleo.parser")
}
