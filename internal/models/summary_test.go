package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
	}
	txns := []Transaction{
		{Date: day(13), Amount: decimal.RequireFromString("300000"), Direction: DirectionIncome},
		{Date: day(14), Amount: decimal.RequireFromString("1200.50"), Direction: DirectionExpense},
		{Date: day(20), Amount: decimal.RequireFromString("50"), Direction: DirectionExpense},
	}

	s := Summarize(txns)

	if s.TotalCount != 3 || s.IncomeCount != 1 || s.ExpenseCount != 2 {
		t.Errorf("counts = %d/%d/%d", s.TotalCount, s.IncomeCount, s.ExpenseCount)
	}
	if !s.TotalIncome.Equal(decimal.RequireFromString("300000")) {
		t.Errorf("TotalIncome = %s", s.TotalIncome)
	}
	if !s.TotalExpense.Equal(decimal.RequireFromString("1250.50")) {
		t.Errorf("TotalExpense = %s", s.TotalExpense)
	}
	if !s.NetFlow.Equal(decimal.RequireFromString("298749.50")) {
		t.Errorf("NetFlow = %s", s.NetFlow)
	}
	if !s.FirstDate.Equal(day(13)) || !s.LastDate.Equal(day(20)) {
		t.Errorf("date range = %s .. %s", s.FirstDate, s.LastDate)
	}
	if s.Days != 8 {
		t.Errorf("Days = %d, want 8", s.Days)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	if s.TotalCount != 0 {
		t.Errorf("TotalCount = %d", s.TotalCount)
	}
	if !s.NetFlow.IsZero() {
		t.Errorf("NetFlow = %s, want 0", s.NetFlow)
	}
	if !s.FirstDate.IsZero() || s.Days != 0 {
		t.Errorf("dates = %s days = %d, want zero values", s.FirstDate, s.Days)
	}
}

func TestParseStatsDiscardRatio(t *testing.T) {
	tests := []struct {
		name  string
		stats ParseStats
		want  float64
	}{
		{"zero lines", ParseStats{}, 0},
		{"all used", ParseStats{LinesSeen: 3, LinesParsed: 2, Continuation: 1}, 0},
		{"half discarded", ParseStats{LinesSeen: 4, LinesParsed: 2}, 0.5},
		{"all discarded", ParseStats{LinesSeen: 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.DiscardRatio(); got != tt.want {
				t.Errorf("DiscardRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}
