package testutil

import (
	"context"

	"github.com/ndewijer/fii-screener/internal/statusinvest"
)

// MockFetcher is a canned implementation of the analysis service's Fetcher
// dependency. It returns predefined patches instead of scraping.
type MockFetcher struct {
	// Patches maps ticker to the patch to return. Tickers absent from the
	// map get an empty patch, simulating a failed scrape.
	Patches map[string]statusinvest.Patch

	// Calls records the tickers fetched, in order.
	Calls []string
}

// NewMockFetcher creates a MockFetcher that returns empty patches for
// every ticker.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{Patches: map[string]statusinvest.Patch{}}
}

// WithPatch configures the patch returned for a ticker.
func (m *MockFetcher) WithPatch(ticker string, patch statusinvest.Patch) *MockFetcher {
	m.Patches[ticker] = patch
	return m
}

// Fetch returns the configured patch for the ticker, or an empty patch.
func (m *MockFetcher) Fetch(_ context.Context, ticker string) statusinvest.Patch {
	m.Calls = append(m.Calls, ticker)
	return m.Patches[ticker]
}
