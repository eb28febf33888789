package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/gorgonaut/earleyleo/bits"
)

// Grammar is the immutable, processed form of a caller-supplied rule
// list: an interned symbol table, a numbered rule vector, and the
// precomputed closure matrices the recognizer's hot path consults.
//
// A Grammar is constructed once (New or Builder.Build) and may be shared
// read-only across any number of Parsers.
type Grammar struct {
	symbols   []Symbol
	nameToID  map[string]int
	rules     []CompiledRule
	bySymbol  [][]int // by_symbol[s] = rule ids with lhs == s
	sympred   *bits.Matrix
	predicted [][]int // predictions_for_symbols[s]
	rightRec  *bits.Matrix

	acceptRuleID   int
	acceptSymbolID int
	startSymbolID  int
	hasStartRule   bool
}

// New processes a caller-supplied rule list into an immutable Grammar,
// following the pipeline in the grammar precomputation design: append
// the synthetic accept rule, intern symbols, index by_symbol, and
// compute sympred, predictions_for_symbols and right_recursion.
//
// Grammar construction is permissive: a rule list with no production for
// "start" still builds successfully (the resulting grammar simply cannot
// accept any input). The only hard error is a caller rule colliding with
// the reserved "_accept" name.
func New(ruleDefs []RuleDef) (*Grammar, error) {
	for _, rd := range ruleDefs {
		if rd.Name == acceptSymbolName {
			return nil, fmt.Errorf("grammar: rule name %q is reserved for the synthetic accept rule", acceptSymbolName)
		}
	}

	// Step 1: append the synthetic accept rule `_accept → start`.
	all := make([]RuleDef, 0, len(ruleDefs)+1)
	all = append(all, ruleDefs...)
	acceptRuleID := len(all)
	all = append(all, RuleDef{Name: acceptSymbolName, RHS: []Elem{Ref(startSymbolName)}})

	g := &Grammar{
		nameToID:     make(map[string]int),
		acceptRuleID: acceptRuleID,
	}

	// Step 2: census symbols; rewrite rules from names to ids.
	g.rules = make([]CompiledRule, len(all))
	for i, rd := range all {
		lhsID := g.internSymbol(rd.Name)
		rhsIDs := make([]int, len(rd.RHS))
		for j, e := range rd.RHS {
			rhsIDs[j] = g.internSymbol(e.Name)
		}
		g.rules[i] = CompiledRule{ID: i, LHS: lhsID, RHS: rhsIDs}
	}
	g.acceptSymbolID = g.nameToID[acceptSymbolName]
	if id, ok := g.nameToID[startSymbolName]; ok {
		g.startSymbolID = id
		g.hasStartRule = true // a symbol named "start" was referenced; whether it has rules is checked below
	} else {
		g.startSymbolID = UnknownSymbol
	}

	// A symbol is terminal iff it never occurs as any rule's lhs.
	hasRules := make([]bool, len(g.symbols))
	for _, r := range g.rules {
		hasRules[r.LHS] = true
	}
	for i := range g.symbols {
		g.symbols[i].Terminal = !hasRules[i]
	}
	g.hasStartRule = g.startSymbolID != UnknownSymbol && hasRules[g.startSymbolID]

	// Step 3: index by_symbol.
	n := len(g.symbols)
	g.bySymbol = make([][]int, n)
	buckets := make([]*treeset.Set, n)
	for i := range buckets {
		buckets[i] = treeset.NewWith(utils.IntComparator)
	}
	for _, r := range g.rules {
		buckets[r.LHS].Add(r.ID)
	}
	for i, b := range buckets {
		g.bySymbol[i] = intSliceOf(b)
	}

	// Step 4: sympred (symbol×symbol): sympred[rhs[0]][lhs(r)] = 1 for
	// every non-empty rule, plus the reflexive diagonal; then close.
	g.sympred = bits.NewMatrix(n)
	for i := 0; i < n; i++ {
		g.sympred.Set(i, i)
	}
	for _, r := range g.rules {
		if len(r.RHS) > 0 {
			g.sympred.Set(r.RHS[0], r.LHS)
		}
	}
	g.sympred.TransitiveClosure()

	// Step 5: predictions_for_symbols[s] = union over t with
	// sympred[t][s] of by_symbol[t] — see DESIGN.md for the derivation.
	g.predicted = make([][]int, n)
	accum := make([]*treeset.Set, n)
	for i := range accum {
		accum[i] = treeset.NewWith(utils.IntComparator)
	}
	for t := 0; t < n; t++ {
		if len(g.bySymbol[t]) == 0 {
			continue
		}
		g.sympred.Row(t).Each(func(s int) {
			for _, ruleID := range g.bySymbol[t] {
				accum[s].Add(ruleID)
			}
		})
	}
	for s := 0; s < n; s++ {
		g.predicted[s] = intSliceOf(accum[s])
	}

	// Step 6: right_recursion (symbol×symbol): for every non-empty rule,
	// right_recursion[lhs][last(rhs)] = 1; then close.
	g.rightRec = bits.NewMatrix(n)
	for _, r := range g.rules {
		if len(r.RHS) > 0 {
			g.rightRec.Set(r.LHS, r.RHS[len(r.RHS)-1])
		}
	}
	g.rightRec.TransitiveClosure()

	tracer().Debugf("grammar built: %d symbols, %d rules, accept-rule=%d", n, len(g.rules), acceptRuleID)
	return g, nil
}

func (g *Grammar) internSymbol(name string) int {
	if id, ok := g.nameToID[name]; ok {
		return id
	}
	id := len(g.symbols)
	g.symbols = append(g.symbols, Symbol{ID: id, Name: name})
	g.nameToID[name] = id
	return id
}

func intSliceOf(s *treeset.Set) []int {
	vals := s.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out
}

// NumSymbols returns the number of distinct symbols interned.
func (g *Grammar) NumSymbols() int {
	return len(g.symbols)
}

// NumRules returns the number of rules, including the synthetic accept rule.
func (g *Grammar) NumRules() int {
	return len(g.rules)
}

// Symbol returns the Symbol record for id.
func (g *Grammar) Symbol(id int) Symbol {
	return g.symbols[id]
}

// SymbolID resolves a name to its interned id, or (UnknownSymbol, false)
// if the name was never seen during construction.
func (g *Grammar) SymbolID(name string) (int, bool) {
	id, ok := g.nameToID[name]
	if !ok {
		return UnknownSymbol, false
	}
	return id, true
}

// Rule returns the compiled rule with the given id.
func (g *Grammar) Rule(id int) CompiledRule {
	return g.rules[id]
}

// AcceptRuleID returns the id of the synthetic `_accept → start` rule.
func (g *Grammar) AcceptRuleID() int {
	return g.acceptRuleID
}

// AcceptSymbolID returns the interned id of the reserved "_accept" symbol.
func (g *Grammar) AcceptSymbolID() int {
	return g.acceptSymbolID
}

// HasStartRule reports whether some rule's lhs is the "start" symbol. A
// grammar without one is still valid to construct, but can never accept
// any input (see New's doc comment).
func (g *Grammar) HasStartRule() bool {
	return g.hasStartRule
}

// BySymbol returns the (sorted, deduplicated) rule ids whose lhs is s.
func (g *Grammar) BySymbol(s int) []int {
	return g.bySymbol[s]
}

// PredictionsFor returns the rule ids that must be added to an Earley
// set when symbol s is predicted there.
func (g *Grammar) PredictionsFor(s int) []int {
	return g.predicted[s]
}

// SymPred reports whether a is a (transitively) left-corner of b — i.e.
// some chain of rules lets a derivation of b begin with a, so an item
// expecting b may require predicting rules whose lhs is a.
func (g *Grammar) SymPred(a, b int) bool {
	return g.sympred.Test(a, b)
}

// RightRecursive reports whether rules with lhs could, through a chain
// of rules each using its rightmost symbol, reach a rule ending in sym.
func (g *Grammar) RightRecursive(lhs, sym int) bool {
	return g.rightRec.Test(lhs, sym)
}

// Dump logs the rule table and symbol table at debug level; a debugging
// helper, not on the hot path.
func (g *Grammar) Dump() {
	tracer().Debugf("=== grammar: %d symbols, %d rules ===", len(g.symbols), len(g.rules))
	for _, s := range g.symbols {
		tracer().Debugf("  symbol[%d] = %s (terminal=%v)", s.ID, s.Name, s.Terminal)
	}
	for _, r := range g.rules {
		tracer().Debugf("  %s", r)
	}
}
