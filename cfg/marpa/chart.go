package marpa

import (
	"bytes"
	"fmt"

	"github.com/dan-zheng/Lotsawa/cfg"
)

// partialParse is an Earley-item: a dotted rule paired with the earleme at
// which recognition of the rule began. Partial parses are small value types,
// compared with ==.
type partialParse struct {
	rule   cfg.DottedRule
	origin uint64 // earleme where recognition of this rule began
}

func (p partialParse) advanced() partialParse {
	return partialParse{rule: p.rule.Advance(), origin: p.origin}
}

func (p partialParse) isComplete() bool {
	return p.rule.IsComplete()
}

func (p partialParse) String() string {
	return fmt.Sprintf("%v (%d)", p.rule, p.origin)
}

// leoItem is a memoized shortcut record used to collapse chains of
// right-recursive completions. Within one earleme, no two Leo items share
// a transition symbol.
type leoItem struct {
	transition *cfg.Symbol
	parse      partialParse
}

func (l leoItem) String() string {
	return fmt.Sprintf("Leo %v: %v", l.transition, l.parse)
}

// chartIndex demarcates the start of an earleme within the chart's two
// item sequences.
type chartIndex struct {
	earley int // first index into chart.parses belonging to the earleme
	leo    int // first index into chart.leos belonging to the earleme
}

// chart is the complete recognizer state of a single run: two parallel
// append-only sequences holding all Earley-items and all Leo-items, plus an
// index vector demarcating the boundary of each earleme. Items are never
// removed or mutated once appended; both earlemeStart components are
// non-decreasing.
type chart struct {
	parses       []partialParse
	leos         []leoItem
	earlemeStart []chartIndex
}

// clear discards all chart state. On first use it reserves capacity for a
// run over an input of the given length; afterwards the slice capacity of
// previous runs is retained and no further capacity is reserved.
func (c *chart) clear(inputLen int) {
	if cap(c.parses) == 0 {
		c.parses = make([]partialParse, 0, 4*(inputLen+1))
		c.leos = make([]leoItem, 0, inputLen+1)
		c.earlemeStart = make([]chartIndex, 0, inputLen+1)
	}
	c.parses = c.parses[:0]
	c.leos = c.leos[:0]
	c.earlemeStart = c.earlemeStart[:0]
}

// openEarleme opens the next earleme: all items appended from now on belong
// to it.
func (c *chart) openEarleme() {
	c.earlemeStart = append(c.earlemeStart, chartIndex{
		earley: len(c.parses),
		leo:    len(c.leos),
	})
}

// currentEarleme returns the index of the most recently opened earleme.
func (c *chart) currentEarleme() int {
	return len(c.earlemeStart) - 1
}

// earleyBounds returns the half-open index range of earleme i within
// c.parses. For the current earleme the upper bound is the live slice
// length; callers iterating the current earleme while inserting must
// re-read len(c.parses) instead.
func (c *chart) earleyBounds(i int) (from, to int) {
	from = c.earlemeStart[i].earley
	to = len(c.parses)
	if i+1 < len(c.earlemeStart) {
		to = c.earlemeStart[i+1].earley
	}
	return from, to
}

// insertEarley appends p to the current earleme, unless an equal item is
// already present there. Reports whether p was appended.
func (c *chart) insertEarley(p partialParse) bool {
	for j := c.earlemeStart[c.currentEarleme()].earley; j < len(c.parses); j++ {
		if c.parses[j] == p {
			return false
		}
	}
	c.parses = append(c.parses, p)
	return true
}

// insertLeo appends a Leo item with the given transition symbol to the
// current earleme, unless one with this transition is already present.
// A duplicate insertion must agree on the parse value; a mismatch would
// indicate a bug in the recognizer or an inconsistent grammar analysis.
func (c *chart) insertLeo(p partialParse, transition *cfg.Symbol) {
	for j := c.earlemeStart[c.currentEarleme()].leo; j < len(c.leos); j++ {
		if c.leos[j].transition == transition {
			if c.leos[j].parse != p {
				panic(fmt.Sprintf("conflicting Leo item for transition %v: have %v, got %v",
					transition, c.leos[j].parse, p))
			}
			return
		}
	}
	c.leos = append(c.leos, leoItem{transition: transition, parse: p})
}

// leoItemAt looks up the Leo item with the given transition symbol in
// earleme i.
func (c *chart) leoItemAt(i int, transition *cfg.Symbol) (partialParse, bool) {
	from := c.earlemeStart[i].leo
	to := len(c.leos)
	if i+1 < len(c.earlemeStart) {
		to = c.earlemeStart[i+1].leo
	}
	for j := from; j < to; j++ {
		if c.leos[j].transition == transition {
			return c.leos[j].parse, true
		}
	}
	return partialParse{}, false
}

// String lists the chart contents per earleme, Leo items first, in
// insertion order.
func (c *chart) String() string {
	var b bytes.Buffer
	for i := 0; i < len(c.earlemeStart); i++ {
		fmt.Fprintf(&b, "=== earleme %d ===\n", i)
		leoTo := len(c.leos)
		if i+1 < len(c.earlemeStart) {
			leoTo = c.earlemeStart[i+1].leo
		}
		for j := c.earlemeStart[i].leo; j < leoTo; j++ {
			fmt.Fprintf(&b, "%v\n", c.leos[j])
		}
		from, to := c.earleyBounds(i)
		for j := from; j < to; j++ {
			fmt.Fprintf(&b, "%v\n", c.parses[j])
		}
	}
	return b.String()
}
