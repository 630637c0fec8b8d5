package cfg

import (
	"github.com/dan-zheng/Lotsawa/cfg/sparse"
)

// GrammarAnalysis is an object type for the results of static grammar
// analysis: nullability of symbols and right-recursiveness of rules.
// A GrammarAnalysis is immutable after construction and may be shared
// between concurrently running recognizers.
type GrammarAnalysis struct {
	g        *Grammar
	nullable map[*Symbol]bool // A ⇒* ε
	nulling  map[*Symbol]bool // A ⇒* ε and nothing else
	rightRec map[*Rule]bool   // rule is right-recursive
}

// Analysis analyses a grammar and returns the analysis results.
func Analysis(g *Grammar) *GrammarAnalysis {
	ga := &GrammarAnalysis{
		g:        g,
		nullable: map[*Symbol]bool{},
		nulling:  map[*Symbol]bool{},
		rightRec: map[*Rule]bool{},
	}
	ga.analyse()
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *GrammarAnalysis) Grammar() *Grammar {
	return ga.g
}

// IsNullable returns true iff symbol A can derive the empty string.
func (ga *GrammarAnalysis) IsNullable(A *Symbol) bool {
	return ga.nullable[A]
}

// IsNulling returns true iff symbol A derives the empty string and never
// derives anything else. Terminals are never nulling.
func (ga *GrammarAnalysis) IsNulling(A *Symbol) bool {
	return ga.nulling[A]
}

// IsRightRecursive returns true iff the underlying rule of dr is
// right-recursive: its rightmost RHS symbol derives, directly or
// transitively, a string ending in the rule's LHS.
func (ga *GrammarAnalysis) IsRightRecursive(dr DottedRule) bool {
	return ga.rightRec[dr.Rule()]
}

func (ga *GrammarAnalysis) analyse() {
	ga.markNullable()
	ga.markNulling()
	ga.markRightRecursive()
}

// markNullable finds all symbols A with A ⇒* ε, by fixpoint iteration:
// a non-terminal is nullable if it has a rule whose RHS symbols are all
// nullable (vacuously true for epsilon-rules).
func (ga *GrammarAnalysis) markNullable() {
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			if ga.nullable[r.LHS] {
				continue
			}
			allNullable := true
			for _, A := range r.rhs {
				if !ga.nullable[A] {
					allNullable = false
					break
				}
			}
			if allNullable {
				ga.nullable[r.LHS] = true
				changed = true
			}
		}
	}
	tracer().Debugf("grammar %q has %d nullable symbols", ga.g.Name, len(ga.nullable))
}

// markNulling finds all symbols which derive ε and nothing else. A nullable
// non-terminal is nulling unless it can derive a non-empty string. The
// latter is again a fixpoint: terminals grow, and a non-terminal grows if
// any alternative contains a growing symbol.
func (ga *GrammarAnalysis) markNulling() {
	grows := map[*Symbol]bool{}
	ga.g.EachSymbol(func(A *Symbol) interface{} {
		if A.IsTerminal() {
			grows[A] = true
		}
		return nil
	})
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			if grows[r.LHS] {
				continue
			}
			for _, A := range r.rhs {
				if grows[A] {
					grows[r.LHS] = true
					changed = true
					break
				}
			}
		}
	}
	for A := range ga.nullable {
		if !grows[A] {
			ga.nulling[A] = true
			tracer().Debugf("symbol %v is nulling", A)
		}
	}
}

// markRightRecursive computes a right-derivation reachability relation over
// the grammar's symbols and flags every rule whose rightmost RHS symbol
// right-derives the rule's LHS. The relation is kept in a sparse matrix,
// indexed by symbol enumeration order, and closed under transitivity with a
// Warshall iteration. Trailing nullable symbols are skipped, so that e.g.
//
//	S ::= [a S N]   with N ⇒* ε
//
// is still recognized as right-recursive.
func (ga *GrammarAnalysis) markRightRecursive() {
	index := map[*Symbol]int{}
	ga.g.EachSymbol(func(A *Symbol) interface{} {
		index[A] = len(index)
		return nil
	})
	n := len(index)
	reach := sparse.NewIntMatrix(n, n, sparse.DefaultNullValue)
	for _, r := range ga.g.rules {
		for _, A := range ga.rightmostCandidates(r) {
			reach.Set(index[r.LHS], index[A], 1)
		}
	}
	for k := 0; k < n; k++ { // Warshall closure
		for i := 0; i < n; i++ {
			if reach.Value(i, k) == reach.NullValue() {
				continue
			}
			for j := 0; j < n; j++ {
				if reach.Value(k, j) != reach.NullValue() {
					reach.Set(i, j, 1)
				}
			}
		}
	}
	for _, r := range ga.g.rules {
		for _, A := range ga.rightmostCandidates(r) {
			if A == r.LHS || reach.Value(index[A], index[r.LHS]) != reach.NullValue() {
				ga.rightRec[r] = true
				tracer().Debugf("rule %d is right-recursive: %v", r.Serial, r)
				break
			}
		}
	}
}

// rightmostCandidates returns the symbols which may end a string derived
// from r's RHS: the rightmost symbol, preceded by any symbols separated
// from the right edge only by nullable ones.
func (ga *GrammarAnalysis) rightmostCandidates(r *Rule) []*Symbol {
	var candidates []*Symbol
	for i := len(r.rhs) - 1; i >= 0; i-- {
		candidates = append(candidates, r.rhs[i])
		if !ga.nullable[r.rhs[i]] {
			break
		}
	}
	return candidates
}
