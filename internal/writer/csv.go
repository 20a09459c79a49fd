package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
)

// CSVWriter writes transactions to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, info *models.StatementInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, info)
}

// Write writes transactions in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, info *models.StatementInfo) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	// Write metadata as comments (CSV header rows)
	if w.IncludeHeader {
		if info.Bank != "" {
			writer.Write([]string{"# Bank", string(info.Bank)})
		}
		if info.Confidence > 0 {
			writer.Write([]string{"# Detection Confidence", fmt.Sprintf("%.2f", info.Confidence)})
		}
		if info.Account.HolderName != "" {
			writer.Write([]string{"# Account Holder", info.Account.HolderName})
		}
		if info.Account.AccountNumber != "" {
			writer.Write([]string{"# Account Number", info.Account.AccountNumber})
		}
		if info.Account.Period != "" {
			writer.Write([]string{"# Statement Period", info.Account.Period})
		}
	}

	header := []string{
		"Date", "Weekday", "BookingDate", "Currency", "Amount", "Direction",
		"Balance", "Type", "Category", "CounterpartyName", "CounterpartyAccount",
		"RawCounterparty",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range info.Transactions {
		row := []string{
			txn.Date.Format("2006-01-02"),
			txn.Weekday,
			txn.BookingDate,
			txn.Currency,
			txn.Amount.StringFixed(2),
			string(txn.Direction),
			txn.Balance.StringFixed(2),
			txn.RawType,
			string(txn.Category),
			txn.CounterpartyName,
			txn.CounterpartyAccount,
			txn.RawCounterpartyText,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
