package grammar

import "fmt"

// acceptSymbolName is the reserved name of the synthetic accept rule's
// left-hand side, appended by every Grammar as `_accept → start`.
const acceptSymbolName = "_accept"

// startSymbolName is the conventional name of the grammar's goal symbol;
// New appends the synthetic rule `_accept → start` regardless of whether
// any rule actually defines it.
const startSymbolName = "start"

// UnknownSymbol is returned by SymbolID for a name never seen during
// grammar construction.
const UnknownSymbol = -1

// ElemKind distinguishes a reference to another rule from a terminal
// literal within a rule's right-hand side.
type ElemKind int

const (
	// RefKind marks an Elem referring to another rule's left-hand side.
	RefKind ElemKind = iota
	// TerminalKind marks an Elem matched literally against an input token.
	TerminalKind
)

// Elem is one right-hand-side element of a RuleDef: either a Ref to
// another rule, or a Terminal literal.
type Elem struct {
	Kind ElemKind
	Name string
}

// Ref builds a right-hand-side element referring to another rule's lhs.
func Ref(name string) Elem {
	return Elem{Kind: RefKind, Name: name}
}

// Terminal builds a right-hand-side element matched literally against an
// input token's literal.
func Terminal(literal string) Elem {
	return Elem{Kind: TerminalKind, Name: literal}
}

// RuleDef is a caller-supplied production, referencing other rules and
// terminals by name; New resolves names to ids.
type RuleDef struct {
	Name string
	RHS  []Elem
}

// Rule builds a RuleDef with left-hand side name and an ordered
// right-hand side of Ref/Terminal elements. An empty RHS denotes a
// nullable (epsilon) production.
func Rule(name string, rhs ...Elem) RuleDef {
	return RuleDef{Name: name, RHS: rhs}
}

// Symbol is a distinct name occurring anywhere in the grammar, either as
// a rule's left-hand side or as an element of some right-hand side.
type Symbol struct {
	ID       int
	Name     string
	Terminal bool
}

func (s Symbol) String() string {
	if s.Terminal {
		return fmt.Sprintf("%q", s.Name)
	}
	return s.Name
}

// CompiledRule is a production with left- and right-hand sides resolved
// to symbol ids. Rules are identified by their index into Grammar's rule
// vector, assigned in input order (the synthetic accept rule is appended
// last).
type CompiledRule struct {
	ID  int
	LHS int
	RHS []int
}

// Nullable reports whether the rule has an empty right-hand side.
func (r CompiledRule) Nullable() bool {
	return len(r.RHS) == 0
}

func (r CompiledRule) String() string {
	return fmt.Sprintf("rule[%d]: %d -> %v", r.ID, r.LHS, r.RHS)
}
