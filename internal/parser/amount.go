package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// amountSymbolReplacer strips currency symbols, thousands separators and
// spacer characters before decimal conversion.
var amountSymbolReplacer = strings.NewReplacer(
	"¥", "", "￥", "",
	"£", "", "$", "", "€", "",
	",", "", " ", "", " ", "",
)

// CoerceAmount converts a raw amount token to a decimal. It understands
// leading signs, thousands separators, parenthesis-as-negative, and
// trailing CR markers. When both parenthesis and CR appear, parenthesis
// decides the sign and the CR marker is only stripped. Malformed tokens
// (empty, bare sign, multiple dots) return an error — never a silent zero.
func CoerceAmount(raw string) (decimal.Decimal, error) {
	s := amountSymbolReplacer.Replace(strings.TrimSpace(raw))

	negative := false
	if u := strings.ToUpper(s); strings.HasSuffix(u, "CR") {
		s = strings.TrimSpace(s[:len(s)-2])
		negative = true
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) > 2 {
		negative = true
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "-" || s == "+" {
		return decimal.Zero, fmt.Errorf("empty amount token %q", raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed amount token %q: %w", raw, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
