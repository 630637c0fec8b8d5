/*
Package lotsawa is a toolbox for general context-free recognition.

Lotsawa implements an Earley-family recognizer in the MARPA tradition,
i.e. Earley's algorithm augmented with Joop Leo's optimization for
right-recursive grammars. Package structure is as follows:

■ cfg: Package cfg holds the grammar machinery: a builder DSL for
context-free grammars, dotted rules, and the static grammar analysis
(nullability, right-recursion) the recognizer relies on.

■ cfg/marpa: Package marpa implements the recognizer core, working on an
append-only chart of Earley- and Leo-items.

■ cfg/scanner: Package scanner defines the tokenizer interface consumed by
the recognizer, together with two default implementations.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lotsawa
