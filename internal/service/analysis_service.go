package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/ndewijer/fii-screener/internal/apperrors"
	"github.com/ndewijer/fii-screener/internal/criteria"
	"github.com/ndewijer/fii-screener/internal/model"
	"github.com/ndewijer/fii-screener/internal/repository"
	"github.com/ndewijer/fii-screener/internal/statusinvest"
)

// Fetcher acquires the scraped attribute patch for one ticker. Satisfied by
// *statusinvest.Client; tests substitute a canned fetcher.
type Fetcher interface {
	Fetch(ctx context.Context, ticker string) statusinvest.Patch
}

// AnalysisService orchestrates a full screening run: for each configured
// ticker, in order, it fetches the live patch, resolves it against the
// static reference record, and evaluates the criteria battery.
//
// Processing is sequential. The inter-fund rate limit caps throughput
// regardless of concurrency, so there is nothing to gain from overlapping
// fetches.
type AnalysisService struct {
	refRepo *repository.ReferenceRepository
	fetcher Fetcher
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewAnalysisService creates an AnalysisService. delay is the mandatory wait
// between consecutive fund fetches, honored via a rate limiter.
func NewAnalysisService(
	refRepo *repository.ReferenceRepository,
	fetcher Fetcher,
	delay time.Duration,
	log zerolog.Logger,
) *AnalysisService {
	return &AnalysisService{
		refRepo: refRepo,
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
		log:     log.With().Str("service", "analysis").Logger(),
	}
}

// Run screens every ticker and returns the completed run. The only error
// paths are reference-dataset access and context cancellation; fetch
// failures degrade to static data and never abort the run.
func (s *AnalysisService) Run(ctx context.Context, tickers []string) (model.AnalysisRun, error) {
	allRecords, err := s.refRepo.GetAllFunds()
	if err != nil {
		return model.AnalysisRun{}, fmt.Errorf("failed to load reference dataset: %w", err)
	}

	run := model.AnalysisRun{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
		Funds:       make([]model.FundAnalysis, 0, len(tickers)),
	}

	for _, ticker := range tickers {
		// Blocking wait between consecutive funds to respect the
		// Status Invest rate limit.
		if err := s.limiter.Wait(ctx); err != nil {
			return model.AnalysisRun{}, fmt.Errorf("analysis interrupted: %w", err)
		}

		analysis, err := s.analyzeFund(ctx, ticker, allRecords)
		if err != nil {
			return model.AnalysisRun{}, err
		}
		run.Funds = append(run.Funds, analysis)
	}

	s.log.Info().
		Str("run_id", run.ID).
		Int("funds", len(run.Funds)).
		Msg("Analysis run completed")

	return run, nil
}

// analyzeFund evaluates a single ticker: fetch, resolve, evaluate.
func (s *AnalysisService) analyzeFund(
	ctx context.Context,
	ticker string,
	allRecords []model.FundRecord,
) (model.FundAnalysis, error) {
	patch := s.fetcher.Fetch(ctx, ticker)

	var static *model.FundRecord
	staticRecord, err := s.refRepo.GetFund(ticker)
	switch {
	case err == nil:
		static = &staticRecord
	case errors.Is(err, apperrors.ErrFundNotFound):
		// Unknown ticker: evaluate from the patch plus conservative
		// defaults alone.
		s.log.Warn().Str("ticker", ticker).Msg("Ticker not in reference dataset")
	default:
		return model.FundAnalysis{}, fmt.Errorf("failed to load static record for %s: %w", ticker, err)
	}

	record := Resolve(ticker, static, patch)

	peerAvg := PeerDividendYieldAverage(criteria.Category(record), allRecords)
	outcomes := criteria.Evaluate(record, peerAvg)

	if patch.IsEmpty() {
		s.log.Info().Str("ticker", ticker).Msg("Scrape yielded no fields, using static data")
	} else {
		s.log.Info().
			Str("ticker", ticker).
			Strs("refreshed", patch.Fields()).
			Msg("Scraped fields merged over static data")
	}

	return model.FundAnalysis{
		Ticker:       ticker,
		Record:       record,
		Outcomes:     outcomes,
		Score:        criteria.Score(outcomes),
		RemoteFields: patch.Fields(),
	}, nil
}
