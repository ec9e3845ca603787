package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/fii-screener/internal/api/response"
	"github.com/ndewijer/fii-screener/internal/apperrors"
	"github.com/ndewijer/fii-screener/internal/service"
)

// AnalysisHandler serves the latest completed screening run.
type AnalysisHandler struct {
	store *service.ResultStore
}

// NewAnalysisHandler creates an AnalysisHandler backed by the given store.
func NewAnalysisHandler(store *service.ResultStore) *AnalysisHandler {
	return &AnalysisHandler{store: store}
}

// GetAnalysis returns the latest full run. Responds 503 while no run has
// completed yet (the server screens on startup).
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, _ *http.Request) {
	run, ok := h.store.Latest()
	if !ok {
		response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrNoAnalysisRun.Error(), "")
		return
	}

	response.RespondJSON(w, http.StatusOK, run)
}

// GetFund returns one fund's analysis from the latest run.
func (h *AnalysisHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))

	if _, ok := h.store.Latest(); !ok {
		response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrNoAnalysisRun.Error(), "")
		return
	}

	analysis, ok := h.store.Fund(ticker)
	if !ok {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), ticker)
		return
	}

	response.RespondJSON(w, http.StatusOK, analysis)
}
