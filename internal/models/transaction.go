package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction says which way money moved on a transaction.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Category is the closed classification vocabulary for transactions.
// Downstream presentation layers consume these values verbatim and must
// not re-derive their own classification.
type Category string

const (
	CategoryTransfer      Category = "transfer"
	CategoryWithdrawal    Category = "withdrawal"
	CategoryDeposit       Category = "deposit"
	CategoryConsumption   Category = "consumption"
	CategorySalary        Category = "salary"
	CategoryInterest      Category = "interest"
	CategoryFee           Category = "fee"
	CategoryRepayment     Category = "repayment"
	CategoryLoan          Category = "loan"
	CategoryLargeTransfer Category = "largeTransfer"
	CategoryCorporate     Category = "corporate"
	CategoryUnknown       Category = "unknown"
	CategoryOther         Category = "other"
)

// BankType identifies a supported bank statement format.
type BankType string

const (
	BankUnknown  BankType = "unknown"
	BankJiujiang BankType = "jiujiang"
	BankICBC     BankType = "icbc"
	BankCCB      BankType = "ccb"
	BankABC      BankType = "abc"
	BankBOC      BankType = "boc"
	BankCMB      BankType = "cmb"
	BankCOMM     BankType = "comm"
	BankCITIC    BankType = "citic"
	BankCIB      BankType = "cib"
	BankSPDB     BankType = "spdb"
	BankPost     BankType = "post"
)

// Transaction represents a single statement transaction extracted from
// one source line, plus any continuation text merged from wrapped lines.
type Transaction struct {
	Date                time.Time       `json:"date"`
	Weekday             string          `json:"weekday"`
	BookingDate         string          `json:"bookingDate"` // raw YYYYMMDD token
	Currency            string          `json:"currency"`
	Amount              decimal.Decimal `json:"amount"` // magnitude; sign lives in Direction
	Direction           Direction       `json:"direction"`
	Balance             decimal.Decimal `json:"balance"`
	RawType             string          `json:"rawType"`
	Category            Category        `json:"category"`
	CounterpartyName    string          `json:"counterpartyName"`
	CounterpartyAccount string          `json:"counterpartyAccount,omitempty"`
	RawCounterpartyText string          `json:"rawCounterpartyText"`
	ParseMethod         string          `json:"parseMethod,omitempty"` // debug: which strategy matched
}

// AccountInfo holds account metadata extracted from the statement header.
type AccountInfo struct {
	HolderName    string `json:"holderName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountType   string `json:"accountType,omitempty"`
	BranchName    string `json:"branchName,omitempty"`
	AppliedAt     string `json:"appliedAt,omitempty"`
	Period        string `json:"period,omitempty"`
}

// ParseStats reports how much of the input the engine could use.
// It is advisory observability data, never a pass/fail signal.
type ParseStats struct {
	LinesSeen    int `json:"linesSeen"`
	LinesParsed  int `json:"linesParsed"`
	Continuation int `json:"continuationLines"`
}

// DiscardRatio returns the fraction of seen lines that produced no
// transaction and were not merged as continuation text.
func (s ParseStats) DiscardRatio() float64 {
	if s.LinesSeen == 0 {
		return 0
	}
	return float64(s.LinesSeen-s.LinesParsed-s.Continuation) / float64(s.LinesSeen)
}

// StatementInfo holds everything extracted from one statement document.
type StatementInfo struct {
	Bank         BankType      `json:"bank"`
	Confidence   float64       `json:"confidence"`
	Account      AccountInfo   `json:"account"`
	Transactions []Transaction `json:"transactions"`
	Stats        ParseStats    `json:"stats"`
	UsedFallback bool          `json:"usedFallback"` // whole-document strict rescan was needed
}
