package service

import (
	"sync"

	"github.com/ndewijer/fii-screener/internal/model"
)

// ResultStore holds the latest completed analysis run for the API to serve.
// Only the most recent run is kept; results are never persisted.
type ResultStore struct {
	mu     sync.RWMutex
	latest *model.AnalysisRun
}

// NewResultStore creates an empty ResultStore.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Set replaces the stored run.
func (s *ResultStore) Set(run model.AnalysisRun) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &run
}

// Latest returns the most recent run, or false when no run has completed.
func (s *ResultStore) Latest() (model.AnalysisRun, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return model.AnalysisRun{}, false
	}
	return *s.latest, true
}

// Fund returns one fund's analysis from the latest run.
func (s *ResultStore) Fund(ticker string) (model.FundAnalysis, bool) {
	run, ok := s.Latest()
	if !ok {
		return model.FundAnalysis{}, false
	}
	return run.Fund(ticker)
}
