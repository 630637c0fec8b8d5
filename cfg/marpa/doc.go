/*
Package marpa implements a general context-free recognizer in the MARPA
tradition: Earley's algorithm, augmented with Joop Leo's optimization which
collapses chains of right-recursive completions into constant-time lookups.
The recognizer decides whether a finite input sequence is derivable from a
designated start symbol. It runs in linear time for the grammar classes
MARPA handles efficiently (LR-regular, right-recursive, …) and stays within
Earley's bounds for arbitrary ambiguous grammars.

Recognizing Input

Clients construct a grammar with the builder of package cfg, analyse it,
and hand the analysis to a recognizer:

    b := cfg.NewGrammarBuilder("List")
    b.LHS("S").T("a", 'a').N("S").End()
    b.LHS("S").T("a", 'a').End()
    g, _ := b.Grammar()
    rec := marpa.NewRecognizer(cfg.Analysis(g))
    ok := rec.Recognize([]lotsawa.TokType{'a', 'a', 'a'}, "S")

A recognizer may be re-used for any number of inputs; each run resets its
chart (retaining capacity). The outcome is strictly two-valued: ambiguous
inputs are accepted like any others, and malformed input simply yields a
rejection. Parse-tree construction is out of scope for this package.

The Chart

All recognizer state lives in a chart of Earley-items ("partial parses")
and Leo-items, grouped by the input position ("earleme") they were added
in. The chart grows append-only during a run; ChartString returns a
textual listing for debugging.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package marpa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lotsawa.marpa'.
func tracer() tracing.Trace {
	return tracing.Select("lotsawa.marpa")
}
