package parser

import (
	"regexp"
	"unicode/utf8"

	"strings"
)

// Structural/noise lines that can never be transaction records: contract
// footers, disclaimers, separators, and the table header itself.
var denylistSubstrings = []string{
	"合同ID号:", "版本:", "温馨提示", "合计统计", "合计收入", "合计支出",
	"九江银行APP", "可验证合同真伪", "=====", "-----", "*****",
	"记账日期", "Date", "Currency", "Transaction Amount",
}

var (
	leadingDatePattern = regexp.MustCompile(`^\s*\d{8}\s+`)
	amountTokenPattern = regexp.MustCompile(`[\d,]+\.\d{2}`)
	pageNumberPattern  = regexp.MustCompile(`\d+\s*/\s*\d+`)
)

// IsTransactionLine reports whether a raw line is plausibly a transaction
// record. All checks are conjunctive: minimum length, not a known noise
// line, not a short page-number line, leading 8-digit date token, and at
// least one decimal amount.
func IsTransactionLine(line string) bool {
	if utf8.RuneCountInString(strings.TrimSpace(line)) < 10 {
		return false
	}

	clean := Normalize(line)

	for _, kw := range denylistSubstrings {
		if strings.Contains(clean, kw) {
			return false
		}
	}

	// Bare "N / M" page markers are short even with surrounding noise
	if pageNumberPattern.MatchString(clean) && utf8.RuneCountInString(clean) < 20 {
		return false
	}

	if !leadingDatePattern.MatchString(clean) {
		return false
	}

	return amountTokenPattern.MatchString(clean)
}

// startsWithBookingDate checks the leading 8-digit-date shape without the
// rest of the validation. Continuation merging keys off this alone.
func startsWithBookingDate(line string) bool {
	return leadingDatePattern.MatchString(line)
}
