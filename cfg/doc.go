/*
Package cfg implements context-free grammars and their static analysis,
as consumed by the recognizer in package marpa.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token value of type int. Grammars may contain epsilon-productions.

Example:

    b := cfg.NewGrammarBuilder("G")
    b.LHS("S").N("A").N("B").End()     // S  ->  A B
    b.LHS("A").Epsilon()               // A  ->
    b.LHS("B").T("b", 2).End()         // B  ->  b

This results in the following trivial grammar:

   b.Grammar().Dump()

   0: S ::= [A B]
   1: A ::= []
   2: B ::= [b]

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to a GrammarAnalysis object, which determines
nullability of symbols and right-recursiveness of rules. The recognizer
never computes any of this itself; it relies on the analysis being
complete and immutable.

    ga := cfg.Analysis(g)
    ga.IsNulling(g.SymbolByName("A"))      // true: A derives ε and nothing else
    ga.IsRightRecursive(dottedRule)        // per-rule right-recursion flag

Dotted Rules

A DottedRule is a rule together with a cursor ("dot") into its right-hand
side. Dotted rules are small value types; the recognizer pairs them with
an origin position to form its chart items.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lotsawa.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("lotsawa.cfg")
}
