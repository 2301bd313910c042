package engine

import "sync/atomic"

// SearchState is shared by the engine and its worker.
type SearchState struct {
	stopRequested atomic.Bool
	searchBusy    atomic.Bool
	debug         atomic.Bool

	// Requests with a sequence at or below abortThrough are cut short.
	abortThrough atomic.Int64
}

func (s *SearchState) RequestStop() {
	s.stopRequested.Store(true)
}

func (s *SearchState) StopRequested() bool {
	return s.stopRequested.Load()
}

func (s *SearchState) IsBusy() bool {
	return s.searchBusy.Load()
}

func (s *SearchState) setBusy(busy bool) {
	s.searchBusy.Store(busy)
}

func (s *SearchState) SetDebug(debug bool) {
	s.debug.Store(debug)
}

func (s *SearchState) Debug() bool {
	return s.debug.Load()
}

func (s *SearchState) AbortThrough(sequence int64) {
	for {
		current := s.abortThrough.Load()
		if sequence <= current || s.abortThrough.CompareAndSwap(current, sequence) {
			return
		}
	}
}

func (s *SearchState) ShouldAbort(sequence int64) bool {
	return s.StopRequested() || sequence <= s.abortThrough.Load()
}
