/*
Package bits implements the fixed-width bitset and bit-matrix kernel that
the rest of this module's closure computations sit on top of: a bitset of
width W, a W×W matrix of such bitsets, and an in-place Warshall-style
transitive closure over that matrix.

Nothing in here is Earley-specific. It is the leaf dependency of package
grammar, which builds the symbol-predicts-symbol and right-recursion
matrices described in the grammar precomputation design.
*/
package bits
