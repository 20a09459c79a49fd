package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
)

// classifierTable maps categories to their keyword lists. Order matters:
// categories are scanned top to bottom and keywords left to right, first
// hit wins. Extend by adding rows, not by touching the matching loop.
var classifierTable = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryTransfer, []string{"转账", "汇款", "转出", "转入", "transfer", "跨行", "手机转账", "汇款汇入"}},
	{models.CategoryWithdrawal, []string{"取现", "atm", "取款", "withdrawal", "现金取款"}},
	{models.CategoryDeposit, []string{"存款", "存入", "deposit", "现金存款"}},
	{models.CategoryConsumption, []string{"消费", "pos", "支付", "支付宝", "微信", "shopping", "美团", "滴滴", "京东"}},
	{models.CategorySalary, []string{"工资", "薪资", "薪金", "salary", "绩效", "奖金"}},
	{models.CategoryInterest, []string{"利息", "结息", "interest", "利息收入"}},
	{models.CategoryFee, []string{"手续费", "管理费", "年费", "fee", "charge", "服务费", "工本费"}},
	{models.CategoryRepayment, []string{"还款", "还贷", "repayment", "信用卡还款"}},
	{models.CategoryLoan, []string{"贷款", "放款", "loan", "借款"}},
}

var corporateMarkers = []string{"公司", "有限", "集团", "科技"}

var largeTransferThreshold = decimal.NewFromInt(50000)

// Classify maps a transaction's raw type label, counterparty name and
// magnitude to one of the closed categories. Pure and total: every input
// triple yields exactly one category.
func Classify(typeLabel, counterpartyName string, amount decimal.Decimal) models.Category {
	label := strings.ToLower(typeLabel)
	name := strings.ToLower(counterpartyName)

	for _, entry := range classifierTable {
		for _, kw := range entry.keywords {
			if strings.Contains(label, kw) || strings.Contains(name, kw) {
				return entry.category
			}
		}
	}

	// No keyword hit — fall back to amount and counterparty heuristics.
	hasCounterparty := strings.TrimSpace(counterpartyName) != ""
	if amount.GreaterThanOrEqual(largeTransferThreshold) && hasCounterparty {
		return models.CategoryLargeTransfer
	}
	for _, marker := range corporateMarkers {
		if strings.Contains(name, marker) {
			return models.CategoryCorporate
		}
	}
	if !hasCounterparty {
		return models.CategoryUnknown
	}
	return models.CategoryOther
}
