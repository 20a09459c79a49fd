package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
)

// Strict transaction line layout:
//
//	DATE  CURRENCY  AMOUNT  BALANCE  TYPE  COUNTERPARTY...
//
// Example: "20250113 CNY 300,000.00 304,294.31 转账 廖灵娇 6214830373529923"
var strictLinePattern = regexp.MustCompile(
	`^(\d{8})\s+([\p{L}\p{N}_]+)\s+([-+()\d,.]+(?:[Cc][Rr])?)\s+([-+()\d,.]+(?:[Cc][Rr])?)\s+(\S+)\s+(.+)$`,
)

var (
	bookingDatePattern   = regexp.MustCompile(`\d{8}`)
	signedDecimalPattern = regexp.MustCompile(`[+-]?\d[\d,]*\.?\d*`)
)

// defaultTypeLabel is assumed when the lenient path finds no type token.
const defaultTypeLabel = "转账"

// strategyResult distinguishes "this strategy did not apply" from
// "the line is definitively unparseable".
type strategyResult int

const (
	resultNoMatch strategyResult = iota
	resultParsed
	resultAbort
)

type strategy struct {
	name string
	fn   func(line string) (models.Transaction, strategyResult)
}

// Engine converts raw statement lines into transactions. Strategies are
// tried in order; the first success wins.
type Engine struct {
	log             zerolog.Logger
	defaultCurrency string
	strategies      []strategy
}

// Option configures an Engine.
type Option func(*Engine)

// WithDefaultCurrency overrides the currency assumed by the lenient path.
func WithDefaultCurrency(code string) Option {
	return func(e *Engine) {
		if code != "" {
			e.defaultCurrency = code
		}
	}
}

// NewEngine builds a parse engine with the given logger.
func NewEngine(log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		log:             log,
		defaultCurrency: "CNY",
	}
	for _, opt := range opts {
		opt(e)
	}
	e.strategies = []strategy{
		{"strict", e.parseStrict},
		{"lenient", e.parseLenient},
	}
	return e
}

// ParseLine converts one line into a transaction. Returns false when no
// strategy could produce a complete record; partial transactions are never
// emitted.
func (e *Engine) ParseLine(line string) (models.Transaction, bool) {
	clean := Normalize(line)
	for _, s := range e.strategies {
		txn, res := s.fn(clean)
		switch res {
		case resultParsed:
			txn.ParseMethod = s.name
			return txn, true
		case resultAbort:
			return models.Transaction{}, false
		}
	}
	return models.Transaction{}, false
}

// parseStrict handles the dominant clean layout. An invalid calendar date
// is a no-match so the lenient pass can recover; a malformed amount or
// balance aborts the line outright.
func (e *Engine) parseStrict(line string) (models.Transaction, strategyResult) {
	m := strictLinePattern.FindStringSubmatch(line)
	if m == nil {
		return models.Transaction{}, resultNoMatch
	}

	date, err := parseBookingDate(m[1])
	if err != nil {
		return models.Transaction{}, resultNoMatch
	}

	amount, err := CoerceAmount(m[3])
	if err != nil {
		return models.Transaction{}, resultAbort
	}
	balance, err := CoerceAmount(m[4])
	if err != nil {
		return models.Transaction{}, resultAbort
	}

	name, account := SplitCounterparty(m[6])
	txn := assemble(date, m[1], m[2], amount, balance, m[5], m[6], name, account)
	return txn, resultParsed
}

// parseLenient recovers lines the strict pattern rejects: extract the
// first 8-digit run as the date, then pick the first two remaining
// numeric tokens as amount and balance. Field attribution is weaker but
// the financial totals stay exact.
func (e *Engine) parseLenient(line string) (models.Transaction, strategyResult) {
	dateTok := bookingDatePattern.FindString(line)
	if dateTok == "" {
		return models.Transaction{}, resultNoMatch
	}
	date, err := parseBookingDate(dateTok)
	if err != nil {
		return models.Transaction{}, resultNoMatch
	}

	// Drop the date before scanning numbers so it cannot be mistaken
	// for the amount.
	rest := strings.Replace(line, dateTok, "", 1)

	nums := signedDecimalPattern.FindAllString(rest, -1)
	if len(nums) < 2 {
		return models.Transaction{}, resultNoMatch
	}

	amount, err := CoerceAmount(nums[0])
	if err != nil {
		return models.Transaction{}, resultAbort
	}
	balance, err := CoerceAmount(nums[1])
	if err != nil {
		return models.Transaction{}, resultAbort
	}

	remainder := rest
	for _, num := range nums[:2] {
		remainder = strings.Replace(remainder, num, "", 1)
	}
	remainder = strings.TrimSpace(whitespacePattern.ReplaceAllString(remainder, " "))

	rawType := defaultTypeLabel
	counterparty := ""
	if fields := strings.Fields(remainder); len(fields) > 0 {
		rawType = fields[0]
		counterparty = strings.Join(fields[1:], " ")
	}

	name, account := SplitCounterpartyFreeText(counterparty)
	txn := assemble(date, dateTok, e.defaultCurrency, amount, balance, rawType, counterparty, name, account)
	return txn, resultParsed
}

// assemble builds the final record: sign is consumed into the direction,
// the magnitude is classified together with type label and counterparty.
func assemble(date time.Time, bookingDate, currency string, amount, balance decimal.Decimal,
	rawType, rawCounterparty, name, account string) models.Transaction {

	direction := models.DirectionIncome
	if amount.IsNegative() {
		direction = models.DirectionExpense
		amount = amount.Abs()
	}

	return models.Transaction{
		Date:                date,
		Weekday:             date.Weekday().String(),
		BookingDate:         bookingDate,
		Currency:            currency,
		Amount:              amount,
		Direction:           direction,
		Balance:             balance,
		RawType:             rawType,
		Category:            Classify(rawType, name, amount),
		CounterpartyName:    name,
		CounterpartyAccount: account,
		RawCounterpartyText: strings.TrimSpace(rawCounterparty),
	}
}

// parseBookingDate validates an 8-digit YYYYMMDD token as a real
// Gregorian date.
func parseBookingDate(s string) (time.Time, error) {
	return time.Parse("20060102", s)
}
