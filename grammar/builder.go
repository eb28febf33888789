package grammar

// Builder accumulates RuleDefs fluently before calling New, mirroring the
// teacher's own grammar-builder usage pattern (lr.NewGrammarBuilder(...).
// LHS(...).N(...).T(...).End()) adapted to this package's Ref/Terminal
// vocabulary.
type Builder struct {
	rules []RuleDef
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Rule appends a production to the builder and returns it for chaining.
func (b *Builder) Rule(name string, rhs ...Elem) *Builder {
	b.rules = append(b.rules, Rule(name, rhs...))
	return b
}

// Build processes the accumulated rules into an immutable Grammar.
func (b *Builder) Build() (*Grammar, error) {
	return New(b.rules)
}
