package marpa

// dumpEarleme traces the items of one earleme after prediction and
// completion have reached their fixpoint.
func (p *Recognizer) dumpEarleme(i int) {
	tracer().Debugf("--- earleme %04d ----------------------------------", i)
	n := 1
	leoTo := len(p.chart.leos)
	if i+1 < len(p.chart.earlemeStart) {
		leoTo = p.chart.earlemeStart[i+1].leo
	}
	for j := p.chart.earlemeStart[i].leo; j < leoTo; j++ {
		tracer().Debugf("[%2d] %v", n, p.chart.leos[j])
		n++
	}
	from, to := p.chart.earleyBounds(i)
	for j := from; j < to; j++ {
		tracer().Debugf("[%2d] %v", n, p.chart.parses[j])
		n++
	}
}
