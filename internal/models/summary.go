package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary aggregates a transaction list for the report sheets and the
// API response.
type Summary struct {
	TotalCount   int             `json:"totalCount"`
	IncomeCount  int             `json:"incomeCount"`
	ExpenseCount int             `json:"expenseCount"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetFlow      decimal.Decimal `json:"netFlow"`
	FirstDate    time.Time       `json:"firstDate,omitempty"`
	LastDate     time.Time       `json:"lastDate,omitempty"`
	Days         int             `json:"days,omitempty"`
}

// Summarize computes totals over a transaction list. Safe on empty input.
func Summarize(txns []Transaction) Summary {
	s := Summary{
		TotalCount:   len(txns),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, txn := range txns {
		if txn.Direction == DirectionExpense {
			s.ExpenseCount++
			s.TotalExpense = s.TotalExpense.Add(txn.Amount)
		} else {
			s.IncomeCount++
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
		}

		if txn.Date.IsZero() {
			continue
		}
		if s.FirstDate.IsZero() || txn.Date.Before(s.FirstDate) {
			s.FirstDate = txn.Date
		}
		if s.LastDate.IsZero() || txn.Date.After(s.LastDate) {
			s.LastDate = txn.Date
		}
	}

	s.NetFlow = s.TotalIncome.Sub(s.TotalExpense)
	if !s.FirstDate.IsZero() {
		s.Days = int(s.LastDate.Sub(s.FirstDate).Hours()/24) + 1
	}
	return s
}
