package parser

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorgonaut/earleyleo/chart"
	"github.com/gorgonaut/earleyleo/grammar"
)

func lits(s string) []Token {
	out := make([]Token, len(s))
	for i, r := range s {
		out[i] = Lit(string(r))
	}
	return out
}

func mustGrammar(t *testing.T, defs ...grammar.RuleDef) *grammar.Grammar {
	t.Helper()
	g, err := grammar.New(defs)
	require.NoError(t, err)
	return g
}

// Scenario 1/2/3: start -> a
func TestScenarioSingleTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleyleo.parser")
	defer teardown()

	g := mustGrammar(t, grammar.Rule("start", grammar.Terminal("a")))

	assert.True(t, Parse(g, lits("a")), "scenario 1: exact match should succeed")
	assert.False(t, Parse(g, lits("b")), "scenario 2: wrong terminal should fail")
	assert.False(t, Parse(g, lits("aa")), "scenario 3: extra input should fail")
}

// Scenario 4: start -> A; A -> A a; A -> a (left-recursive).
func TestScenarioLeftRecursive(t *testing.T) {
	g := mustGrammar(t,
		grammar.Rule("start", grammar.Ref("A")),
		grammar.Rule("A", grammar.Ref("A"), grammar.Terminal("a")),
		grammar.Rule("A", grammar.Terminal("a")),
	)
	assert.True(t, Parse(g, lits(strings.Repeat("a", 11))))
}

// Scenario 5: start -> A; A -> a A; A -> a (right-recursive, must use Leo).
// Chart size should grow linearly, not quadratically, in input length.
func TestScenarioRightRecursiveLeo(t *testing.T) {
	g := mustGrammar(t,
		grammar.Rule("start", grammar.Ref("A")),
		grammar.Rule("A", grammar.Terminal("a"), grammar.Ref("A")),
		grammar.Rule("A", grammar.Terminal("a")),
	)

	sizes := make(map[int]int)
	for _, n := range []int{6, 12, 18, 24} {
		p := NewParser(g)
		for _, tok := range lits(strings.Repeat("a", n)) {
			p.Push(tok)
		}
		require.True(t, p.Success(), "n=%d should succeed", n)
		sizes[n] = p.ItemCount()
	}

	// Linear growth: doubling the input roughly doubles chart size,
	// rather than quadrupling it as plain Earley would for this
	// grammar without Leo's collapse.
	ratio := float64(sizes[24]) / float64(sizes[12])
	assert.Less(t, ratio, 3.0, "chart size %v should scale linearly, not quadratically", sizes)
}

// Scenario 6: start -> a; start -> ε
func TestScenarioNullableStart(t *testing.T) {
	g := mustGrammar(t,
		grammar.Rule("start", grammar.Terminal("a")),
		grammar.Rule("start"),
	)
	assert.True(t, Parse(g, lits("")))
	assert.True(t, Parse(g, lits("a")))
}

func TestEmptyInputWithoutNullableStartFails(t *testing.T) {
	g := mustGrammar(t, grammar.Rule("start", grammar.Terminal("a")))
	assert.False(t, Parse(g, nil))
}

func TestUnknownTokenFailsWithoutPanic(t *testing.T) {
	g := mustGrammar(t, grammar.Rule("start", grammar.Terminal("a")))
	assert.NotPanics(t, func() {
		assert.False(t, Parse(g, lits("z")))
	})
}

func TestDeterminismAcrossRepeatedParses(t *testing.T) {
	g := mustGrammar(t,
		grammar.Rule("start", grammar.Ref("A")),
		grammar.Rule("A", grammar.Terminal("a"), grammar.Ref("A")),
		grammar.Rule("A", grammar.Terminal("a")),
	)
	input := lits("aaaaa")
	first := Parse(g, input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Parse(g, input))
	}
}

// Identity uniqueness and origin bound, checked directly against the
// chart produced for a grammar with a nullable alternative (A -> ε).
func TestIdentityUniquenessAndOriginBound(t *testing.T) {
	g := mustGrammar(t,
		grammar.Rule("start", grammar.Ref("A"), grammar.Ref("B")),
		grammar.Rule("A", grammar.Terminal("a")),
		grammar.Rule("A"),
		grammar.Rule("B", grammar.Terminal("a")),
	)
	p := NewParser(g)
	for _, tok := range lits("a") {
		p.Push(tok)
	}
	for k := 0; k < p.SetCount(); k++ {
		set := p.ch.Set(k)
		seen := map[[3]int]bool{}
		for i := 0; i < set.Len(); i++ {
			it := set.At(i)
			assert.GreaterOrEqual(t, it.Origin, 0)
			assert.LessOrEqual(t, it.Origin, k)
			key := [3]int{it.RuleNo, it.Pos, it.Origin}
			assert.False(t, seen[key], "duplicate identity %v in set %d", key, k)
			seen[key] = true
		}
	}
}

func TestMultipleMatchesReportAmbiguity(t *testing.T) {
	// A genuinely ambiguous grammar: "a" derives via two distinct
	// accept-spanning parses.
	g := mustGrammar(t,
		grammar.Rule("start", grammar.Ref("A")),
		grammar.Rule("start", grammar.Ref("B")),
		grammar.Rule("A", grammar.Terminal("a")),
		grammar.Rule("B", grammar.Terminal("a")),
	)
	p := NewParser(g)
	p.Push(Lit("a"))
	assert.Equal(t, 2, p.MatchCount())
	assert.False(t, p.Success())
}

func TestLeoTargetUniquenessAssertion(t *testing.T) {
	// Exercises the Leo path without tripping its uniqueness panic on a
	// well-formed grammar; a regression here would mean the assertion
	// in findLeoTarget is miscalibrated for ordinary right recursion.
	g := mustGrammar(t,
		grammar.Rule("start", grammar.Ref("A")),
		grammar.Rule("A", grammar.Terminal("a"), grammar.Ref("A")),
		grammar.Rule("A", grammar.Terminal("a")),
	)
	assert.NotPanics(t, func() {
		Parse(g, lits(strings.Repeat("a", 30)))
	})
}

func TestRightRecursiveParseUsesLeoPath(t *testing.T) {
	g := mustGrammar(t,
		grammar.Rule("start", grammar.Ref("A")),
		grammar.Rule("A", grammar.Terminal("a"), grammar.Ref("A")),
		grammar.Rule("A", grammar.Terminal("a")),
	)
	p := NewParser(g)
	for _, tok := range lits("aaa") {
		p.Push(tok)
	}
	found := false
	last := p.ch.Set(p.ch.Len() - 1)
	for i := 0; i < last.Len(); i++ {
		if last.At(i).Kind == chart.KindLeo || last.At(i).Kind == chart.KindAdvanced {
			found = true
		}
	}
	assert.True(t, found, "right-recursive parse should exercise the Leo path")
}
