package cfg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a", 1).End() // S  ->  A a
	b.LHS("A").N("B").N("D").End()    // A  ->  B D
	b.LHS("B").T("b", 2).End()        // B  ->  b
	b.LHS("B").Epsilon()              // B  ->
	b.LHS("D").T("d", 3).End()        // D  ->  d
	b.LHS("D").Epsilon()              // D  ->
	g, err := b.Grammar()
	if err != nil {
		t.Error(err)
	}
	g.Dump()
	if g.Size() != 6 {
		t.Errorf("Expected grammar to have 6 rules, has %d", g.Size())
	}
	if g.SymbolByName("S") == nil || g.SymbolByName("S").IsTerminal() {
		t.Errorf("Expected S to be a non-terminal symbol")
	}
	if g.Terminal(2) == nil || g.Terminal(2).Name != "b" {
		t.Errorf("Expected terminal with token value 2 to be b")
	}
}

func TestBuilderError1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a", 1).End()
	b.LHS("a").T("x", 2).End() // terminal as LHS
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected grammar builder to flag terminal used as LHS")
	}
}

func TestBuilderError2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a", 1).T("a", 2).End() // terminal re-declared
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected grammar builder to flag re-declared terminal")
	}
}

func TestAlternatives1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a", 'a').N("S").End()
	b.LHS("S").T("a", 'a').End()
	g, err := b.Grammar()
	if err != nil {
		t.Error(err)
	}
	alts := g.Alternatives(g.SymbolByName("S"))
	if len(alts) != 2 {
		t.Fatalf("Expected 2 alternatives for S, got %d", len(alts))
	}
	for _, alt := range alts {
		if alt.IsComplete() {
			t.Errorf("Expected alternative %v to start with the dot at position 0", alt)
		}
		if alt.PeekSymbol() != g.SymbolByName("a") {
			t.Errorf("Expected alternative %v to expect terminal a", alt)
		}
	}
	if alts := g.Alternatives(g.SymbolByName("a")); len(alts) != 0 {
		t.Errorf("Expected terminal a to have no alternatives, got %d", len(alts))
	}
}

func TestDottedRule1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a", 'a').N("S").End() // S -> a S
	b.LHS("S").T("a", 'a').End()        // S -> a
	b.LHS("A").Epsilon()                // A ->
	g, err := b.Grammar()
	if err != nil {
		t.Error(err)
	}
	dr := RuleStart(g.Rule(0))
	if dr.IsComplete() {
		t.Errorf("Expected start item %v to be incomplete", dr)
	}
	if dr.PeekSymbol().Name != "a" {
		t.Errorf("Expected postdot symbol of %v to be a, is %v", dr, dr.PeekSymbol())
	}
	if dr.Penult() != nil {
		t.Errorf("Expected %v to have no penult transition, has %v", dr, dr.Penult())
	}
	dr = dr.Advance()
	if dr.Penult() != g.SymbolByName("S") {
		t.Errorf("Expected penult transition of %v to be S, is %v", dr, dr.Penult())
	}
	if len(dr.Prefix()) != 1 {
		t.Errorf("Expected prefix of %v to have length 1", dr)
	}
	dr = dr.Advance()
	if !dr.IsComplete() || dr.PeekSymbol() != nil {
		t.Errorf("Expected %v to be completed", dr)
	}
	if short := RuleStart(g.Rule(1)).Advance(); short.Penult() != nil {
		t.Errorf("Expected single-symbol rule to have no penult, has %v", short.Penult())
	}
	if eps := RuleStart(g.Rule(2)); !eps.IsComplete() {
		t.Errorf("Expected epsilon-rule start item %v to be completed", eps)
	}
}

func TestGrammarHash1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lotsawa.cfg")
	defer teardown()
	//
	mk := func() *Grammar {
		b := NewGrammarBuilder("G")
		b.LHS("S").T("a", 'a').N("S").End()
		b.LHS("S").T("a", 'a').End()
		g, err := b.Grammar()
		if err != nil {
			t.Error(err)
		}
		return g
	}
	g1, g2 := mk(), mk()
	if g1.Hash() != g2.Hash() {
		t.Errorf("Expected identical grammars to have identical hashes")
	}
}
