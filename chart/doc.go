/*
Package chart implements the Earley chart: dotted-rule items, the
per-position Earley set that deduplicates and grows them, and the
sequence of sets (indexed by input position) that the recognizer in
package parser drives.

A Set tolerates being iterated while it grows — items appended during a
traversal are visited by that same traversal — which is what lets the
predict/complete fixed point converge within a single pass per input
token instead of requiring an outer worklist loop.
*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'earleyleo.chart'.
func tracer() tracing.Trace {
	return tracing.Select("earleyleo.chart")
}
