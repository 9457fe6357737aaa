package search

// Statistics is the observability counters returned alongside a
// Result, in the teacher's own habit of exposing search internals
// (teacher's search/statistics.go) rather than the spec's letter: the
// spec never asks for these, but a complete engine reports them as
// plain in-memory counters, not persistence or I/O.
type Statistics struct {
	Nodes          uint64
	TTPuts         uint64
	TTHits         uint64
	TTMisses       uint64
	KillerCutoffs  uint64
	HistoryCutoffs uint64
	LMRReductions  uint64
	FinisherHits   uint64
}

func (s *searcher) statistics() Statistics {
	puts, hits, misses := s.tt.Stats()
	return Statistics{
		Nodes:          s.nodes,
		TTPuts:         puts,
		TTHits:         hits,
		TTMisses:       misses,
		KillerCutoffs:  s.killerCutoffs,
		HistoryCutoffs: s.historyCutoffs,
		LMRReductions:  s.lmrReductions,
		FinisherHits:   s.finisherHits,
	}
}
