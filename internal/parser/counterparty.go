package parser

import (
	"regexp"
	"strings"
)

var counterpartyAccountPattern = regexp.MustCompile(`^\d{8,19}$`)

// Longest digit runs first: card numbers, then medium account numbers,
// then short ones.
var accountRunPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{16,19}\b`),
	regexp.MustCompile(`\b\d{12,15}\b`),
	regexp.MustCompile(`\b\d{8,11}\b`),
}

var trailingSeparatorPattern = regexp.MustCompile(`[\s\-_]+$`)

// SplitCounterparty separates a whitespace-tokenised counterparty field
// into name and account. If the last token is an 8-19 digit run it is the
// account; otherwise the whole field is the name. The empty string stands
// for "no account".
func SplitCounterparty(text string) (string, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}

	parts := strings.Fields(text)
	if len(parts) >= 2 {
		last := parts[len(parts)-1]
		if counterpartyAccountPattern.MatchString(last) {
			return strings.Join(parts[:len(parts)-1], " "), last
		}
	}
	return text, ""
}

// SplitCounterpartyFreeText extracts an account number from arbitrary
// counterparty text. Digit runs are searched longest-class first; the
// first hit becomes the account and is removed from the name along with
// any trailing separators. Used by the lenient parse path where field
// boundaries are unreliable.
func SplitCounterpartyFreeText(text string) (string, string) {
	text = Normalize(text)
	if text == "" {
		return "", ""
	}

	for _, pat := range accountRunPatterns {
		if account := pat.FindString(text); account != "" {
			name := strings.TrimSpace(pat.ReplaceAllString(text, ""))
			name = trailingSeparatorPattern.ReplaceAllString(name, "")
			return name, account
		}
	}
	return text, ""
}
