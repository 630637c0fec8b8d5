package cfg

import (
	"fmt"
	"text/scanner"
)

// GrammarBuilder is a builder type for grammars. Use it like this:
//
//	b := cfg.NewGrammarBuilder("G")
//	b.LHS("S").N("A").T("a", 1).End()   // S  ->  A a
//	b.LHS("A").T("b", 2).End()          // A  ->  b
//	b.LHS("A").Epsilon()                // A  ->
//	g, err := b.Grammar()
//
// Rule construction errors (terminal re-declared with a different token
// value, a terminal used as a LHS, …) are collected and reported by the
// final call to Grammar().
type GrammarBuilder struct {
	g       *Grammar
	ntCount int
	errors  []error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(name)}
}

func (gb *GrammarBuilder) newNonTermSymbol(name string) *Symbol {
	if A, ok := gb.g.symbolsByName[name]; ok {
		if A.IsTerminal() {
			gb.errors = append(gb.errors,
				fmt.Errorf("symbol %q is a terminal, cannot use it as a non-terminal", name))
		}
		return A
	}
	A := &Symbol{Name: name, Value: nonTermValueBase + gb.ntCount}
	gb.ntCount++
	gb.g.symbolsByName[name] = A
	gb.g.symbols.Add(A)
	return A
}

func (gb *GrammarBuilder) newTermSymbol(name string, tokval int) *Symbol {
	if tokval >= nonTermValueBase {
		gb.errors = append(gb.errors,
			fmt.Errorf("token value %d of terminal %q out of range", tokval, name))
	}
	if A, ok := gb.g.symbolsByName[name]; ok {
		if !A.IsTerminal() {
			gb.errors = append(gb.errors,
				fmt.Errorf("symbol %q is a non-terminal, cannot use it as a terminal", name))
		} else if A.Value != tokval {
			gb.errors = append(gb.errors,
				fmt.Errorf("terminal %q re-declared with token value %d (was %d)",
					name, tokval, A.Value))
		}
		return A
	}
	A := &Symbol{Name: name, Value: tokval, terminal: true}
	gb.g.symbolsByName[name] = A
	gb.g.symbols.Add(A)
	return A
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	rb := &RuleBuilder{gb: gb}
	rb.lhs = gb.newNonTermSymbol(name)
	return rb
}

// Grammar returns the grammar, which the builder is building.
// The builder must not be used any further after this call.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.errors) > 0 {
		return nil, gb.errors[0]
	}
	if len(gb.g.rules) == 0 {
		return nil, fmt.Errorf("grammar %q has no rules", gb.g.Name)
	}
	g := gb.g
	gb.g = nil
	tracer().Debugf("built grammar %q with %d rules", g.Name, g.Size())
	return g, nil
}

// RuleBuilder is a builder type for rules, returned from GrammarBuilder.LHS.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// N appends a non-terminal to the RHS of the rule under construction.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.newNonTermSymbol(name))
	return rb
}

// T appends a terminal to the RHS of the rule under construction. Terminals
// carry a token value, which identifies them in the recognizer's input.
func (rb *RuleBuilder) T(name string, tokval int) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.newTermSymbol(name, tokval))
	return rb
}

// EOF appends the end-of-input pseudo-terminal to the RHS and ends the rule.
func (rb *RuleBuilder) EOF() *Rule {
	rb.T("#eof", scanner.EOF)
	return rb.End()
}

// Epsilon ends the rule under construction as an epsilon-production, i.e.
// with an empty RHS.
func (rb *RuleBuilder) Epsilon() *Rule {
	if len(rb.rhs) > 0 {
		rb.gb.errors = append(rb.gb.errors,
			fmt.Errorf("epsilon-rule for %q must not carry RHS symbols", rb.lhs.Name))
	}
	rb.rhs = nil
	return rb.End()
}

// End ends the rule under construction and appends it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	g := rb.gb.g
	r := &Rule{
		Serial: len(g.rules),
		LHS:    rb.lhs,
		rhs:    rb.rhs,
	}
	g.rules = append(g.rules, r)
	g.alternatives[rb.lhs] = append(g.alternatives[rb.lhs], r)
	tracer().Debugf("rule %d: %v", r.Serial, r)
	rb.gb = nil // builder is dead after End()
	return r
}
