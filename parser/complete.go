package parser

import "github.com/gorgonaut/earleyleo/chart"

// complete drives set k to a fixed point over its completed items
// (items whose dot has reached the end of their rule's rhs). The loop
// is grow-while-iterate: both completion branches may insert further
// items into set k, and those items are themselves visited before the
// loop exits, exactly as chart.Set's Add/Len contract requires.
func (p *Parser) complete(k int) {
	set := p.ch.Set(k)
	for i := 0; i < set.Len(); i++ {
		d := set.At(i)
		rule := p.g.Rule(d.RuleNo)
		if d.Pos != len(rule.RHS) {
			continue
		}
		if d.HasLeo() {
			p.completeLeo(k, d, rule.LHS)
		} else {
			p.completeEarley(k, d, rule.LHS)
		}
	}
}

// completeLeo runs the O(1) Leo fast path: instead of walking every item
// waiting on lhs across the whole completion chain, it jumps straight to
// the single item the chain ultimately reduces to.
func (p *Parser) completeLeo(k int, d chart.Item, lhs int) {
	target, ok := p.findLeoTarget(d.Leo, lhs)
	if !ok {
		return
	}
	origin := target.Leo
	if origin == chart.NoLeo {
		origin = target.Origin
	}
	newPos := target.Pos + 1
	leo := p.nextLeo(target.RuleNo, origin, target.Leo, newPos)
	p.insert(k, chart.Item{RuleNo: target.RuleNo, Pos: newPos, Origin: origin, Leo: leo, Kind: chart.KindLeo})
}

// completeEarley runs the ordinary Earley completion: every predicted
// rule in sets[d.origin] whose first rhs symbol transitively expects
// lhs advances one position, and — symmetrically — every item in
// sets[d.origin-1] waiting on a symbol lhs transitively satisfies also
// advances. The sympred test, rather than plain symbol equality, is
// what lets a single completion satisfy an entire unit-rule chain in
// one step.
func (p *Parser) completeEarley(k int, d chart.Item, lhs int) {
	origin := d.Origin
	originSet := p.ch.Set(origin)
	for i := 0; i < originSet.Len(); i++ {
		it := originSet.At(i)
		if it.Pos != 0 {
			continue
		}
		rule := p.g.Rule(it.RuleNo)
		if len(rule.RHS) == 0 || !p.g.SymPred(lhs, rule.RHS[0]) {
			continue
		}
		newPos := 1
		leo := p.nextLeo(it.RuleNo, origin, it.Leo, newPos)
		p.insert(k, chart.Item{RuleNo: it.RuleNo, Pos: newPos, Origin: origin, Leo: leo, Kind: chart.KindCompleted})
	}

	if origin == 0 {
		return
	}
	prevSet := p.ch.Set(origin - 1)
	for i := 0; i < prevSet.Len(); i++ {
		c := prevSet.At(i)
		rule := p.g.Rule(c.RuleNo)
		if c.Pos >= len(rule.RHS) || !p.g.SymPred(lhs, rule.RHS[c.Pos]) {
			continue
		}
		newPos := c.Pos + 1
		leo := p.nextLeo(c.RuleNo, c.Origin, c.Leo, newPos)
		p.insert(k, chart.Item{RuleNo: c.RuleNo, Pos: newPos, Origin: c.Origin, Leo: leo, Kind: chart.KindCompleted})
	}
}
