package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given ticker does not
	// exist in the static reference dataset.
	ErrFundNotFound = errors.New("fund not found")

	// ErrNoAnalysisRun indicates that no screening run has completed yet,
	// so there are no results to serve.
	ErrNoAnalysisRun = errors.New("no completed analysis run")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidTicker indicates that a provided ticker is not a valid
	// FII ticker (four letters followed by "11").
	ErrInvalidTicker = errors.New("invalid ticker format")

	// ErrEmptyTicker indicates that a required ticker parameter is empty.
	ErrEmptyTicker = errors.New("ticker cannot be empty")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	// ErrFailedToRetrieveFunds indicates the reference dataset could not be read.
	ErrFailedToRetrieveFunds = errors.New("failed to retrieve reference funds")

	// ErrFailedToExportReport indicates a report file could not be written.
	ErrFailedToExportReport = errors.New("failed to export report")
)
