package parser

import (
	"strings"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
)

// headerRowMarkers identify the transaction table header line.
var headerRowMarkers = []string{"记账日期", "Date"}

// fallbackSkipSubstrings is the reduced noise filter used by the
// whole-document rescan.
var fallbackSkipSubstrings = []string{"合同ID号:", "版本:", "温馨提示", "合计统计"}

// ParseDocument runs the full pipeline over a statement's lines: bank
// detection, account metadata extraction, start-offset location, the
// line-by-line parse with continuation merging, and the whole-document
// strict rescan when the primary pass finds nothing.
func (e *Engine) ParseDocument(lines []string) *models.StatementInfo {
	info := &models.StatementInfo{}

	sampleLen := len(lines)
	if sampleLen > 50 {
		sampleLen = 50
	}
	info.Bank, info.Confidence = Detect(strings.Join(lines[:sampleLen], " "))
	e.log.Debug().
		Str("bank", string(info.Bank)).
		Float64("confidence", info.Confidence).
		Msg("bank detection")

	info.Account = ExtractAccountInfo(lines)

	start := e.findTransactionStart(lines)
	info.Transactions, info.Stats = e.parseRange(lines[start:])

	if len(info.Transactions) == 0 {
		e.log.Debug().Msg("primary pass found no transactions, rescanning whole document")
		info.Transactions = e.rescanStrict(lines)
		info.UsedFallback = true
	}

	e.log.Debug().
		Int("linesSeen", info.Stats.LinesSeen).
		Int("parsed", len(info.Transactions)).
		Float64("discardRatio", info.Stats.DiscardRatio()).
		Msg("parse complete")

	return info
}

// findTransactionStart locates where transaction data begins: the line
// after a recognised table header, else the first line that looks like a
// transaction, else the top of the document.
func (e *Engine) findTransactionStart(lines []string) int {
	for i, line := range lines {
		for _, marker := range headerRowMarkers {
			if strings.Contains(line, marker) &&
				(strings.Contains(line, "交易金额") || strings.Contains(line, "Transaction Amount")) {
				e.log.Debug().Int("line", i).Msg("found table header row")
				return i + 1
			}
		}
	}

	for i, line := range lines {
		clean := Normalize(line)
		if leadingDatePattern.MatchString(clean) && amountTokenPattern.MatchString(clean) {
			e.log.Debug().Int("line", i).Msg("found first transaction-shaped line")
			return i
		}
	}

	return 0
}

// parseRange is the sequential fold over the line stream. The only
// carry-over state is a pointer to the last emitted transaction, which
// absorbs wrapped continuation lines. Continuation merging keys off the
// missing leading date alone and runs before validation.
func (e *Engine) parseRange(lines []string) ([]models.Transaction, models.ParseStats) {
	var txns []models.Transaction
	var prev *models.Transaction
	var stats models.ParseStats

	for _, raw := range lines {
		stats.LinesSeen++

		if prev != nil && !startsWithBookingDate(raw) {
			clean := Normalize(raw)
			if clean != "" {
				prev.RawCounterpartyText += " " + clean
				prev.CounterpartyName += " " + clean
				stats.Continuation++
			}
			continue
		}

		if !IsTransactionLine(raw) {
			prev = nil
			continue
		}

		txn, ok := e.ParseLine(raw)
		if !ok {
			prev = nil
			continue
		}

		txns = append(txns, txn)
		prev = &txns[len(txns)-1]
		stats.LinesParsed++
	}

	return txns, stats
}

// rescanStrict re-reads every line of the document with the strict
// pattern only: no lenient recovery, no continuation merging. Recovers
// statements where the start-offset heuristic pointed past the data.
func (e *Engine) rescanStrict(lines []string) []models.Transaction {
	var txns []models.Transaction

scan:
	for _, raw := range lines {
		clean := Normalize(raw)
		for _, kw := range fallbackSkipSubstrings {
			if strings.Contains(clean, kw) {
				continue scan
			}
		}

		txn, res := e.parseStrict(clean)
		if res != resultParsed {
			continue
		}
		txn.ParseMethod = "fallback-strict"
		txns = append(txns, txn)
	}

	return txns
}
