package cfg

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"

	lotsawa "github.com/dan-zheng/Lotsawa"
)

// Non-terminals are numbered upwards from this base value. Token values of
// terminals must stay below it (text/scanner token types are negative,
// printable runes are well below 10000).
const nonTermValueBase = 10000

// Symbol is a grammar symbol, i.e. a terminal or a non-terminal.
// Symbols are interned per grammar: two symbols of the same grammar are equal
// iff they are pointer-identical. A nil *Symbol is the "no symbol" sentinel,
// returned e.g. by DottedRule.PeekSymbol for completed rules.
type Symbol struct {
	Name     string
	Value    int // token value for terminals, serial ≥ nonTermValueBase otherwise
	terminal bool
}

// IsTerminal returns true if this symbol represents a terminal.
func (A *Symbol) IsTerminal() bool {
	return A.terminal
}

// TokenType returns the token value of a terminal symbol.
func (A *Symbol) TokenType() lotsawa.TokType {
	return lotsawa.TokType(A.Value)
}

func (A *Symbol) String() string {
	if A == nil {
		return "<none>"
	}
	return A.Name
}

// --- Rules ------------------------------------------------------------

// Rule is a type for rules of a grammar. Rules are immutable after the
// grammar has been built; clients should only ever access a rule through
// its grammar.
type Rule struct {
	Serial int     // order number of this rule within its grammar
	LHS    *Symbol // left hand side of the rule
	rhs    []*Symbol
}

// RHS returns the right hand side of the rule as a shared slice.
// Callers must not mutate it.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEpsRule returns true if the rule is an epsilon-production.
func (r *Rule) IsEpsRule() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("%v ::= %v", r.LHS, symbolList(r.rhs))
}

func symbolList(syms []*Symbol) string {
	var b strings.Builder
	b.WriteString("[")
	for i, A := range syms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}

// --- Dotted rules -----------------------------------------------------

// DottedRule is a rule together with a cursor position ("dot") into its
// right hand side. The dot marks how much of the RHS has been recognized.
// DottedRules are cheap value types and are compared with ==.
type DottedRule struct {
	rule *Rule
	dot  int
}

// RuleStart returns a dotted rule for r with the dot at position 0.
func RuleStart(r *Rule) DottedRule {
	return DottedRule{rule: r}
}

// Rule returns the underlying grammar rule.
func (dr DottedRule) Rule() *Rule {
	return dr.rule
}

// Lhs returns the left hand side symbol of the underlying rule.
func (dr DottedRule) Lhs() *Symbol {
	return dr.rule.LHS
}

// IsComplete returns true if the dot has passed the last RHS symbol.
func (dr DottedRule) IsComplete() bool {
	return dr.dot >= len(dr.rule.rhs)
}

// PeekSymbol returns the symbol right after the dot (the postdot symbol),
// or nil if the rule is completed.
func (dr DottedRule) PeekSymbol() *Symbol {
	if dr.dot < len(dr.rule.rhs) {
		return dr.rule.rhs[dr.dot]
	}
	return nil
}

// Advance returns the dotted rule with the dot moved one position to the
// right. Advancing past the end of the RHS is a programming error.
func (dr DottedRule) Advance() DottedRule {
	if dr.IsComplete() {
		panic(fmt.Sprintf("cannot advance dot of completed rule %v", dr))
	}
	return DottedRule{rule: dr.rule, dot: dr.dot + 1}
}

// Penult returns the penultimate transition symbol of the dotted rule:
// the postdot symbol, iff it is the last symbol of the RHS and the RHS
// consists of at least two symbols. Otherwise nil. This is the symbol
// Leo items are keyed by.
func (dr DottedRule) Penult() *Symbol {
	if len(dr.rule.rhs) < 2 {
		return nil
	}
	if dr.dot == len(dr.rule.rhs)-1 {
		return dr.rule.rhs[dr.dot]
	}
	return nil
}

// Prefix returns the symbols of the RHS before the dot.
func (dr DottedRule) Prefix() []*Symbol {
	return dr.rule.rhs[:dr.dot]
}

func (dr DottedRule) String() string {
	var b strings.Builder
	b.WriteString(dr.rule.LHS.Name)
	b.WriteString(" ::= [")
	for i, A := range dr.rule.rhs {
		if i == dr.dot {
			b.WriteString("∙")
		} else if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	if dr.IsComplete() {
		b.WriteString("∙")
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ----------------------------------------------------------

// Grammar is an immutable set of rules over interned symbols.
// Construct a grammar with a GrammarBuilder.
type Grammar struct {
	Name          string // a grammar may be given a name, for documentation only
	rules         []*Rule
	symbols       *treeset.Set // of *Symbol, ordered by Value
	symbolsByName map[string]*Symbol
	alternatives  map[*Symbol][]*Rule // rules grouped by LHS
}

// newGrammar is called by the builder only.
func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:          name,
		symbols:       treeset.NewWith(symbolComparator),
		symbolsByName: map[string]*Symbol{},
		alternatives:  map[*Symbol][]*Rule{},
	}
}

// We need this for the ordered set of symbols. It sorts symbols by value.
func symbolComparator(s1, s2 interface{}) int {
	A1 := s1.(*Symbol)
	A2 := s2.(*Symbol)
	return utils.IntComparator(A1.Value, A2.Value)
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns a grammar rule by its serial number, or nil.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// SymbolByName returns the symbol with the given name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbolsByName[name]
}

// Terminal returns the terminal symbol with the given token value, or nil.
func (g *Grammar) Terminal(tokval int) *Symbol {
	it := g.symbols.Iterator()
	for it.Next() {
		A := it.Value().(*Symbol)
		if A.IsTerminal() && A.Value == tokval {
			return A
		}
	}
	return nil
}

// EachSymbol iterates over all symbols of the grammar, in ascending order
// of symbol value (terminals first). It applies a mapper function to each
// symbol and collects the non-nil results.
func (g *Grammar) EachSymbol(f func(A *Symbol) interface{}) []interface{} {
	var results []interface{}
	it := g.symbols.Iterator()
	for it.Next() {
		if r := f(it.Value().(*Symbol)); r != nil {
			results = append(results, r)
		}
	}
	return results
}

// EachNonTerminal iterates over all non-terminal symbols of the grammar
// (see EachSymbol).
func (g *Grammar) EachNonTerminal(f func(A *Symbol) interface{}) []interface{} {
	return g.EachSymbol(func(A *Symbol) interface{} {
		if A.IsTerminal() {
			return nil
		}
		return f(A)
	})
}

// Alternatives returns the RHS alternatives for a non-terminal A, each as a
// dotted rule with the dot at position 0. For terminals, or for
// non-terminals without rules, an empty slice is returned.
func (g *Grammar) Alternatives(A *Symbol) []DottedRule {
	rules := g.alternatives[A]
	if len(rules) == 0 {
		return nil
	}
	alts := make([]DottedRule, len(rules))
	for i, r := range rules {
		alts[i] = RuleStart(r)
	}
	return alts
}

// Hash returns a version-stable fingerprint of the grammar, identifying
// the rule set independently of the builder call-order for symbols.
func (g *Grammar) Hash() string {
	type ruleImage struct {
		LHS string
		RHS []string
	}
	images := make([]ruleImage, len(g.rules))
	for i, r := range g.rules {
		img := ruleImage{LHS: r.LHS.Name, RHS: make([]string, len(r.rhs))}
		for j, A := range r.rhs {
			img.RHS[j] = A.Name
		}
		images[i] = img
	}
	h, err := structhash.Hash(images, 1)
	if err != nil {
		panic(fmt.Sprintf("cannot hash grammar: %v", err))
	}
	return h
}

// Dump is a debugging helper, listing all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
	var terminals []*Symbol
	g.EachSymbol(func(A *Symbol) interface{} {
		if A.IsTerminal() {
			terminals = append(terminals, A)
		}
		return nil
	})
	slices.SortFunc(terminals, func(a, b *Symbol) bool { return a.Value < b.Value })
	for _, A := range terminals {
		tracer().Debugf("     %s = %d", A.Name, A.Value)
	}
	tracer().Debugf("-------------------------")
}
