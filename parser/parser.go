package parser

import (
	"github.com/gorgonaut/earleyleo/chart"
	"github.com/gorgonaut/earleyleo/grammar"
)

// Parser drives one Earley/Leo recognition run over an immutable
// Grammar. Construct with NewParser, feed input with Push, and ask
// Success once all tokens have been pushed. A Parser is single-use and
// not safe for concurrent access; build one Parser per input.
type Parser struct {
	g *grammar.Grammar
	ch *chart.Chart

	traceItems bool
}

// NewParser builds a Parser over g and seeds its chart's initial Earley
// set from predictions_for_symbols[_accept], then runs the set-0
// completion pass — so an empty input is already correctly judged
// before any token is pushed.
func NewParser(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{g: g, ch: chart.NewChart()}
	for _, o := range opts {
		o(p)
	}
	p.seed()
	return p
}

// seed populates set 0 with the transitively-closed prediction list for
// the synthetic accept symbol, then completes it. predictions_for_symbols
// is already transitively closed (see grammar's sympred derivation), so
// no further predict-from-candidate pass is needed here.
func (p *Parser) seed() {
	set0 := p.ch.Set(0)
	for _, ruleID := range p.g.PredictionsFor(p.g.AcceptSymbolID()) {
		leo := p.nextLeo(ruleID, 0, chart.NoLeo, 0)
		set0.Add(chart.Item{RuleNo: ruleID, Pos: 0, Origin: 0, Leo: leo, Kind: chart.KindInitial})
	}
	p.complete(0)
	if p.traceItems {
		chart.DumpSet(set0)
	}
}

// insert adds item to the set at setIdx and, if it was newly inserted
// and still expects a symbol, materializes that symbol's predictions in
// the same set (predict-from-candidate). Because predictions_for_symbols
// is precomputed and already transitively closed, this single hook
// covers every way a new expectation can arise — scanning a token,
// advancing past a completed nonterminal, or a Leo collapse — without a
// separate predict phase.
func (p *Parser) insert(setIdx int, item chart.Item) {
	set := p.ch.Set(setIdx)
	if !set.Add(item) {
		return
	}
	rule := p.g.Rule(item.RuleNo)
	if item.Pos >= len(rule.RHS) {
		return
	}
	expected := rule.RHS[item.Pos]
	for _, rid := range p.g.PredictionsFor(expected) {
		leo := p.nextLeo(rid, setIdx, chart.NoLeo, 0)
		p.insert(setIdx, chart.Item{RuleNo: rid, Pos: 0, Origin: setIdx, Leo: leo, Kind: chart.KindPredicted})
	}
}

// Push advances the parse by one token: every item in the most recent
// set expecting tok's symbol is advanced into a freshly grown set, which
// is then driven to a fixed point by complete.
func (p *Parser) Push(tok Token) {
	prevIdx := p.ch.Len() - 1
	prev := p.ch.Set(prevIdx)
	k := p.ch.Grow()

	tokSym, _ := p.g.SymbolID(tok.Literal())

	for i := 0; i < prev.Len(); i++ {
		it := prev.At(i)
		rule := p.g.Rule(it.RuleNo)
		if it.Pos >= len(rule.RHS) || rule.RHS[it.Pos] != tokSym {
			continue
		}
		newPos := it.Pos + 1
		leo := p.nextLeo(it.RuleNo, it.Origin, it.Leo, newPos)
		kind := chart.KindScanned
		if leo != chart.NoLeo {
			kind = chart.KindAdvanced
		}
		p.insert(k, chart.Item{RuleNo: it.RuleNo, Pos: newPos, Origin: it.Origin, Leo: leo, Kind: kind})
	}

	p.complete(k)
	if p.traceItems {
		chart.DumpSet(p.ch.Set(k))
	}
}

// Success reports whether the input pushed so far has exactly one
// accepting derivation (MatchCount() == 1): a completed start rule
// spanning the entire input from position 0. An ambiguous parse reports
// false.
func (p *Parser) Success() bool {
	return p.MatchCount() == 1
}

// MatchCount counts distinct accepting derivations spanning the whole
// input pushed so far: the completed items in the last set whose rule has
// the start symbol as lhs and whose origin is 0. Each distinct start rule
// counts once; ambiguity below the start rule (two ways to derive the
// right-hand side of the same start rule) is not counted.
func (p *Parser) MatchCount() int {
	start := p.g.Rule(p.g.AcceptRuleID()).RHS[0]
	last := p.ch.Set(p.ch.Len() - 1)
	count := 0
	for i := 0; i < last.Len(); i++ {
		it := last.At(i)
		rule := p.g.Rule(it.RuleNo)
		if rule.LHS == start && it.Origin == 0 && it.Pos == len(rule.RHS) {
			count++
		}
	}
	return count
}

// ItemCount returns the total number of items across every Earley set
// built so far — a diagnostic for confirming Leo's linear, rather than
// quadratic, chart growth on right-recursive grammars.
func (p *Parser) ItemCount() int {
	return p.ch.Size()
}

// SetCount returns the number of Earley sets built so far: one more
// than the number of tokens pushed.
func (p *Parser) SetCount() int {
	return p.ch.Len()
}

// Parse is a convenience wrapper: build a Parser over g, push every
// token in input in order, and report Success.
func Parse(g *grammar.Grammar, input []Token) bool {
	p := NewParser(g)
	for _, tok := range input {
		p.Push(tok)
	}
	return p.Success()
}
