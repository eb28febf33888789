package parser

import (
	"fmt"

	"github.com/gorgonaut/earleyleo/chart"
	"github.com/gorgonaut/earleyleo/grammar"
)

// leoEligible reports whether a rule, with its dot at pos, qualifies for
// Leo's right-recursion collapse: only the rule's tail symbol remains to
// be matched, and that tail symbol can, through some chain of rules each
// using its own rightmost symbol, lead back to the rule's own lhs (the
// lhs-equals-tail case is the reflexive instance of that same chain).
//
// The direction of the matrix test matters: right_recursion[X][Y] means
// rules headed by X can reach, through a chain of rightmost symbols, a
// rule ending in Y. Every non-empty rule sets right_recursion[lhs][tail]
// for itself directly, so testing that pair is trivially true regardless
// of any actual recursion — the test has to run the other way, asking
// whether tail loops back around to lhs.
func leoEligible(g *grammar.Grammar, rule grammar.CompiledRule, pos int) bool {
	n := len(rule.RHS)
	if n == 0 || pos != n-1 {
		return false
	}
	tail := rule.RHS[n-1]
	return tail == rule.LHS || g.RightRecursive(tail, rule.LHS)
}

// nextLeo computes the Leo annotation for an item produced by moving a
// dot to newPos: carry forward priorLeo if the dot-mover already carried
// one, otherwise run the eligibility test at the new position. priorLeo
// is chart.NoLeo when there is no dot-mover to inherit from (e.g. a
// freshly predicted item).
func (p *Parser) nextLeo(ruleNo, origin, priorLeo, newPos int) int {
	if priorLeo != chart.NoLeo {
		return priorLeo
	}
	if leoEligible(p.g, p.g.Rule(ruleNo), newPos) {
		return origin
	}
	return chart.NoLeo
}

// findLeoTarget searches sets[origin] for the single item whose next
// expected symbol is lhs — the item a Leo chain collapses completion
// into. In a sound grammar at most one such item exists per (origin,
// lhs) pair; findLeoTarget asserts this rather than silently picking
// one, per the design note on alreadyLeo.
func (p *Parser) findLeoTarget(origin, lhs int) (chart.Item, bool) {
	set := p.ch.Set(origin)
	var found chart.Item
	count := 0
	for i := 0; i < set.Len(); i++ {
		it := set.At(i)
		rule := p.g.Rule(it.RuleNo)
		if it.Pos >= len(rule.RHS) || rule.RHS[it.Pos] != lhs {
			continue
		}
		if count == 1 {
			panic(fmt.Sprintf("earleyleo: non-unique Leo target for symbol %d in set %d (rule %d and rule %d both waiting)",
				lhs, origin, found.RuleNo, it.RuleNo))
		}
		found, count = it, 1
	}
	if count == 0 {
		return chart.Item{}, false
	}
	return found, true
}
