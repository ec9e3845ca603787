package model_test

import (
	"testing"

	"github.com/ndewijer/fii-screener/internal/model"
)

func TestOutcomePassed(t *testing.T) {
	if !model.OutcomePass.Passed() {
		t.Error("Expected PASS to count as passed")
	}
	if model.OutcomeFail.Passed() {
		t.Error("Expected FAIL to not count as passed")
	}
	if model.OutcomeDisqualify.Passed() {
		t.Error("Expected DISQUALIFY to not count as passed")
	}
}

func TestAnalysisRunFund(t *testing.T) {
	run := model.AnalysisRun{Funds: []model.FundAnalysis{
		{Ticker: "GGRC11", Score: 18},
		{Ticker: "VISC11", Score: 9},
	}}

	t.Run("finds a present ticker", func(t *testing.T) {
		fund, ok := run.Fund("VISC11")
		if !ok || fund.Score != 9 {
			t.Errorf("Expected VISC11 with score 9, got %+v ok=%v", fund, ok)
		}
	})

	t.Run("reports absence", func(t *testing.T) {
		if _, ok := run.Fund("HGLG11"); ok {
			t.Error("Expected absent ticker to report false")
		}
	})
}
