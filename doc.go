/*
Package earleyleo implements a general context-free recognizer based on
the Earley algorithm, enhanced with Joop Leo's right-recursion
optimization and Aycock–Horspool-style precomputation of prediction
closures over bit matrices. Package structure is as follows:

■ grammar: Package grammar turns a symbolic rule list into an interned,
numbered grammar and precomputes the closure matrices the recognizer's
hot path consults.

■ chart: Package chart holds the ordered Earley sets of dotted-rule
items that make up one parse run.

■ parser: Package parser drives predict/advance/complete over a chart
for each input token and answers success queries, including the Leo
fast path for right-recursive rules.

■ bits: Package bits is the bit-vector/bit-matrix kernel the other
packages build their transitive closures on.

The base package contains the token vocabulary shared by all of the
above, plus Parse and Tokenize convenience wrappers.

License

Governed by a 3-Clause BSD license.

*/
package earleyleo
