package cfg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNullable1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").N("B").End() // S -> A B
	b.LHS("A").Epsilon()           // A ->
	b.LHS("B").T("b", 'b').End()   // B -> b
	g, err := b.Grammar()
	if err != nil {
		t.Error(err)
	}
	ga := Analysis(g)
	if !ga.IsNullable(g.SymbolByName("A")) {
		t.Errorf("Expected A to be nullable")
	}
	if ga.IsNullable(g.SymbolByName("B")) || ga.IsNullable(g.SymbolByName("S")) {
		t.Errorf("Expected B and S to not be nullable")
	}
	if !ga.IsNulling(g.SymbolByName("A")) {
		t.Errorf("Expected A to be nulling")
	}
	if ga.IsNulling(g.SymbolByName("b")) {
		t.Errorf("Expected terminal b to never be nulling")
	}
}

func TestNullable2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("A").Epsilon()         // A ->
	b.LHS("A").T("a", 'a').End() // A -> a
	g, err := b.Grammar()
	if err != nil {
		t.Error(err)
	}
	ga := Analysis(g)
	if !ga.IsNullable(g.SymbolByName("A")) {
		t.Errorf("Expected A to be nullable")
	}
	if ga.IsNulling(g.SymbolByName("A")) {
		t.Errorf("Expected A to not be nulling, as it derives a non-empty string")
	}
}

func TestRightRecursion1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a", 'a').N("S").End() // S -> a S   right-recursive
	b.LHS("S").T("a", 'a').End()        // S -> a
	g, err := b.Grammar()
	if err != nil {
		t.Error(err)
	}
	ga := Analysis(g)
	if !ga.IsRightRecursive(RuleStart(g.Rule(0))) {
		t.Errorf("Expected rule 0 to be right-recursive")
	}
	if ga.IsRightRecursive(RuleStart(g.Rule(1))) {
		t.Errorf("Expected rule 1 to not be right-recursive")
	}
}

func TestRightRecursion2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("S").T("a", 'a').End() // S -> S a   left-recursive
	b.LHS("S").T("a", 'a').End()        // S -> a
	g, err := b.Grammar()
	if err != nil {
		t.Error(err)
	}
	ga := Analysis(g)
	if ga.IsRightRecursive(RuleStart(g.Rule(0))) {
		t.Errorf("Expected left-recursive rule 0 to not be right-recursive")
	}
}

func TestRightRecursion3(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	// Indirect right recursion:  A -> b B,  B -> c A
	b := NewGrammarBuilder("G")
	b.LHS("A").T("b", 'b').N("B").End()
	b.LHS("B").T("c", 'c').N("A").End()
	g, err := b.Grammar()
	if err != nil {
		t.Error(err)
	}
	ga := Analysis(g)
	if !ga.IsRightRecursive(RuleStart(g.Rule(0))) {
		t.Errorf("Expected A -> b B to be right-recursive through B")
	}
	if !ga.IsRightRecursive(RuleStart(g.Rule(1))) {
		t.Errorf("Expected B -> c A to be right-recursive through A")
	}
}

func TestRightRecursion4(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	// Right recursion behind a trailing nullable symbol:  S -> a S N,  N -> ε
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a", 'a').N("S").N("N").End()
	b.LHS("S").T("a", 'a').End()
	b.LHS("N").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Error(err)
	}
	ga := Analysis(g)
	if !ga.IsRightRecursive(RuleStart(g.Rule(0))) {
		t.Errorf("Expected S -> a S N to be right-recursive, N being nullable")
	}
}
