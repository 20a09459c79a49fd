package writer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
)

func sampleInfo() *models.StatementInfo {
	date := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	return &models.StatementInfo{
		Bank:       models.BankJiujiang,
		Confidence: 0.5,
		Account: models.AccountInfo{
			HolderName:    "张三",
			AccountNumber: "6228480012345678901",
			Period:        "20250101 至 20250131",
		},
		Transactions: []models.Transaction{
			{
				Date:                date,
				Weekday:             "Monday",
				BookingDate:         "20250113",
				Currency:            "CNY",
				Amount:              decimal.RequireFromString("300000"),
				Direction:           models.DirectionIncome,
				Balance:             decimal.RequireFromString("304294.31"),
				RawType:             "转账",
				Category:            models.CategoryTransfer,
				CounterpartyName:    "廖灵娇",
				CounterpartyAccount: "6214830373529923",
				RawCounterpartyText: "廖灵娇 6214830373529923",
			},
			{
				Date:                date.AddDate(0, 0, 1),
				Weekday:             "Tuesday",
				BookingDate:         "20250114",
				Currency:            "CNY",
				Amount:              decimal.RequireFromString("1200.5"),
				Direction:           models.DirectionExpense,
				Balance:             decimal.RequireFromString("303093.81"),
				RawType:             "消费",
				Category:            models.CategoryConsumption,
				CounterpartyName:    "永辉超市",
				RawCounterpartyText: "永辉超市",
			},
		},
		Stats: models.ParseStats{LinesSeen: 3, LinesParsed: 2, Continuation: 1},
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}

	if err := w.Write(&buf, sampleInfo()); err != nil {
		t.Fatal(err)
	}

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// 5 metadata rows + header + 2 transactions
	if len(records) != 8 {
		t.Fatalf("got %d records, want 8", len(records))
	}

	if records[0][0] != "# Bank" || records[0][1] != "jiujiang" {
		t.Errorf("metadata row = %v", records[0])
	}
	if records[4][0] != "# Statement Period" || records[4][1] != "20250101 至 20250131" {
		t.Errorf("metadata row = %v", records[4])
	}

	header := records[5]
	if header[0] != "Date" || header[4] != "Amount" || header[8] != "Category" {
		t.Errorf("header = %v", header)
	}

	first := records[6]
	want := []string{
		"2025-01-13", "Monday", "20250113", "CNY", "300000.00", "income",
		"304294.31", "转账", "transfer", "廖灵娇", "6214830373529923",
		"廖灵娇 6214830373529923",
	}
	for i := range want {
		if first[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, first[i], want[i])
		}
	}

	second := records[7]
	if second[4] != "1200.50" || second[5] != "expense" {
		t.Errorf("second row = %v", second)
	}
	if second[10] != "" {
		t.Errorf("expected empty counterparty account, got %q", second[10])
	}
}

func TestCSVWriterNoMetadataHeader(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: false}

	if err := w.Write(&buf, sampleInfo()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Date,") {
		t.Errorf("first line = %q, want the column header", lines[0])
	}
}

func TestCSVWriterEmptyStatement(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}

	if err := w.Write(&buf, &models.StatementInfo{}); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// No metadata worth printing: just the column header.
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}
