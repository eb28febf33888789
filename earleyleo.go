package earleyleo

import (
	"fmt"

	"github.com/gorgonaut/earleyleo/grammar"
	"github.com/gorgonaut/earleyleo/parser"
)

// Token is the unit pushed into a Parser; re-exported from package
// parser so callers that only import the root package never need to
// reach into parser directly for the one type they push.
type Token = parser.Token

// Lit is the simplest Token: a bare string compared literally against a
// grammar's terminal names.
type Lit = parser.Lit

// CharToken is a Token for a single rune of input, carrying its Span so
// a caller can report where in the source an unknown or unmatched
// character occurred.
type CharToken struct {
	Ch  rune
	Pos Span
}

// Literal implements Token by rendering the rune as a one-character
// string, matching the convention (used throughout the reference
// scenarios) that a Terminal's literal is a single character.
func (t CharToken) Literal() string {
	return string(t.Ch)
}

func (t CharToken) String() string {
	return fmt.Sprintf("%q@%s", t.Ch, t.Pos)
}

// Tokenize turns a string into one CharToken per rune, each carrying
// its rune-index span. It is the reference tokenization described by
// the external interfaces: input is a string, and each character is a
// token whose literal is a single character.
func Tokenize(s string) []Token {
	runes := []rune(s)
	toks := make([]Token, len(runes))
	for i, r := range runes {
		toks[i] = CharToken{Ch: r, Pos: Span{uint64(i), uint64(i + 1)}}
	}
	return toks
}

// Parse builds a Parser over g, pushes every token in input in order,
// and reports Success; a thin convenience wrapper equivalent to
// constructing a parser.Parser directly and driving it by hand.
func Parse(g *grammar.Grammar, input []Token) bool {
	return parser.Parse(g, input)
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input token positions: a start position and
// the position just behind the end. Trimmed from the richer Token type
// this package's teacher uses — there is no parse tree here to
// accumulate spans over, so Span is kept only for diagnostics such as
// reporting where an unknown token occurred.
type Span [2]uint64

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y).
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull reports whether the span is the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend grows s to also cover other, returning the smallest span
// containing both.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
