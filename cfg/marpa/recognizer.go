package marpa

import (
	"github.com/dan-zheng/Lotsawa/cfg"
	"github.com/dan-zheng/Lotsawa/cfg/scanner"

	lotsawa "github.com/dan-zheng/Lotsawa"
)

// Recognizer is a MARPA-style recognizer for a (previously analysed)
// grammar. Create one with marpa.NewRecognizer(…).
//
// A Recognizer is not safe for concurrent use; run concurrent recognitions
// with one Recognizer each (they may share the grammar analysis).
type Recognizer struct {
	ga     *cfg.GrammarAnalysis
	g      *cfg.Grammar
	chart  chart
	tokens []lotsawa.Token // input tokens of the current run, starting at index 1
}

// NewRecognizer creates a recognizer for a grammar. The grammar analysis is
// held immutably for the lifetime of the recognizer.
func NewRecognizer(ga *cfg.GrammarAnalysis) *Recognizer {
	return &Recognizer{
		ga: ga,
		g:  ga.Grammar(),
	}
}

// Grammar returns the grammar this recognizer recognizes.
func (p *Recognizer) Grammar() *cfg.Grammar {
	return p.g
}

// Recognize decides whether the input sequence is derivable from the given
// start symbol. The verdict is strictly two-valued: an unknown start symbol,
// a terminal given as start symbol, or input the grammar does not derive all
// yield false.
//
// Recognize may be called any number of times; every call starts from an
// empty chart.
func (p *Recognizer) Recognize(input []lotsawa.TokType, start string) bool {
	S := p.g.SymbolByName(start)
	if S == nil || S.IsTerminal() {
		tracer().Errorf("start symbol %q is not a non-terminal of grammar %q", start, p.g.Name)
		return false
	}
	tracer().Debugf("=== recognize |input|=%d from %v ===", len(input), S)
	p.chart.clear(len(input))
	p.chart.openEarleme()
	for _, alt := range p.g.Alternatives(S) {
		p.chart.insertEarley(partialParse{rule: alt, origin: 0})
	}
	cursor := 0
	for i := 0; i < len(p.chart.earlemeStart); i++ {
		// Prediction and completion may append to the earleme currently being
		// processed; both loop bounds are therefore re-read on every step.
		for j := p.chart.earlemeStart[i].earley; j < len(p.chart.parses); j++ {
			item := p.chart.parses[j]
			if item.isComplete() {
				p.reduce(item)
			} else {
				p.predict(item)
			}
			p.addAnyLeoItem(item)
		}
		p.dumpEarleme(i)
		if cursor < len(input) {
			p.scan(input[cursor])
			cursor++
		}
	}
	return p.accepts(S, len(input))
}

// RecognizeTokens drains a tokenizer up to EOF and recognizes the resulting
// token-type sequence. The token run is retained and accessible through
// TokenAt. Scanner failures surface as an error, with the verdict false.
func (p *Recognizer) RecognizeTokens(scan scanner.Tokenizer, start string) (bool, error) {
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		scanErr = e
	})
	p.tokens = append(p.tokens[:0], nil) // tokens start at index 1
	var input []lotsawa.TokType
	for {
		token := scan.NextToken()
		if scanErr != nil {
			return false, scanErr
		}
		if token.TokType() == scanner.EOF {
			break
		}
		p.tokens = append(p.tokens, token)
		input = append(input, token.TokType())
	}
	return p.Recognize(input, start), nil
}

// TokenAt returns the input token scanned at earleme transition pos during
// the last RecognizeTokens run, or nil.
func (p *Recognizer) TokenAt(pos uint64) lotsawa.Token {
	if pos+1 < uint64(len(p.tokens)) {
		return p.tokens[pos+1]
	}
	return nil
}

// ChartString returns a textual listing of the chart of the last run: for
// each earleme its Leo items, then its Earley items, in insertion order.
func (p *Recognizer) ChartString() string {
	return p.chart.String()
}

// predict inserts, for the postdot symbol A of an incomplete item, every
// alternative of A into the current earleme. A nulling postdot symbol is
// vacuously recognized: the advanced item is inserted as well.
func (p *Recognizer) predict(item partialParse) {
	A := item.rule.PeekSymbol()
	if A == nil {
		panic("predict called with completed item")
	}
	current := uint64(p.chart.currentEarleme())
	for _, alt := range p.g.Alternatives(A) {
		p.chart.insertEarley(partialParse{rule: alt, origin: current})
	}
	if p.ga.IsNulling(A) {
		p.chart.insertEarley(item.advanced())
	}
}

// reduce processes a completed item: through the Leo shortcut where a Leo
// item for the completed LHS exists at the item's origin, through the
// classical Earley completion otherwise.
func (p *Recognizer) reduce(item partialParse) {
	lhs := item.rule.Lhs()
	if q, ok := p.chart.leoItemAt(int(item.origin), lhs); ok {
		tracer().Debugf("Leo shortcut for %v: %v", item, q)
		p.chart.insertEarley(q)
		return
	}
	p.earleyReduce(item)
}

// earleyReduce advances every item of the origin earleme which expects the
// completed LHS. When the origin is the current earleme (a completion over
// the empty string), the upper bound must be re-read on every step, as
// insertEarley may append to the very slice being scanned.
func (p *Recognizer) earleyReduce(item partialParse) {
	lhs := item.rule.Lhs()
	origin := int(item.origin)
	if origin == p.chart.currentEarleme() {
		for j := p.chart.earlemeStart[origin].earley; j < len(p.chart.parses); j++ {
			q := p.chart.parses[j]
			if q.rule.PeekSymbol() == lhs {
				p.chart.insertEarley(q.advanced())
			}
		}
		return
	}
	from, to := p.chart.earleyBounds(origin)
	for j := from; j < to; j++ {
		q := p.chart.parses[j]
		if q.rule.PeekSymbol() == lhs {
			p.chart.insertEarley(q.advanced())
		}
	}
}

// scan advances every item of the current earleme which expects the next
// input token. The first match opens the next earleme; without a match no
// earleme is opened and the recognizer run terminates.
func (p *Recognizer) scan(t lotsawa.TokType) {
	from, to := p.chart.earleyBounds(p.chart.currentEarleme())
	opened := false
	for j := from; j < to; j++ {
		q := p.chart.parses[j]
		A := q.rule.PeekSymbol()
		if A != nil && A.IsTerminal() && A.TokenType() == t {
			if !opened {
				p.chart.openEarleme()
				opened = true
			}
			p.chart.insertEarley(q.advanced())
		}
	}
	if !opened {
		tracer().Debugf("no item expects token %d, input rejected", t)
	}
}

// addAnyLeoItem memoizes a Leo item for an eligible dotted rule. If a Leo
// predecessor exists at the item's origin, its parse is chained forward;
// otherwise the advanced item itself is recorded.
func (p *Recognizer) addAnyLeoItem(item partialParse) {
	if !p.isLeoEligible(item.rule) {
		return
	}
	s := item.rule.Penult()
	if pred, ok := p.chart.leoItemAt(int(item.origin), item.rule.Lhs()); ok {
		p.chart.insertLeo(pred, s)
		return
	}
	p.chart.insertLeo(item.advanced(), s)
}

// isLeoEligible implements Leo's uniqueness condition: the dotted rule must
// be right-recursive, sit at its penultimate position, and be the only item
// of the current earleme with this penult transition. The test is a
// snapshot over the current-earleme slice; item scheduling guarantees that
// prediction and completion reach their fixpoint before scanning.
func (p *Recognizer) isLeoEligible(dr cfg.DottedRule) bool {
	if !p.ga.IsRightRecursive(dr) {
		return false
	}
	s := dr.Penult()
	if s == nil {
		return false
	}
	count := 0
	for j := p.chart.earlemeStart[p.chart.currentEarleme()].earley; j < len(p.chart.parses); j++ {
		if p.chart.parses[j].rule.Penult() == s {
			count++
		}
	}
	return count == 1
}

// accepts checks the final state: the whole input was consumed (one earleme
// per token, plus earleme 0) and the last earleme holds a completed parse
// of the start symbol spanning the whole input.
func (p *Recognizer) accepts(start *cfg.Symbol, inputLen int) bool {
	if len(p.chart.earlemeStart) != inputLen+1 {
		return false
	}
	from, to := p.chart.earleyBounds(p.chart.currentEarleme())
	for j := from; j < to; j++ {
		q := p.chart.parses[j]
		if q.origin == 0 && q.isComplete() && q.rule.Lhs() == start {
			tracer().Debugf("accepting with %v", q)
			return true
		}
	}
	return false
}
