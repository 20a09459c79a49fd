package writer

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
)

const (
	sheetAccount      = "账户信息"
	sheetTransactions = "交易明细"
	sheetStats        = "基本统计"
	sheetLog          = "处理日志"
)

// ExcelWriter renders the full multi-sheet workbook report: account info,
// transaction detail, basic statistics, and a run log.
type ExcelWriter struct {
	BankName string // display name for the report header
}

// WriteToFile writes the workbook to the given path.
func (w *ExcelWriter) WriteToFile(path string, info *models.StatementInfo) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetAccount); err != nil {
		return fmt.Errorf("setting up workbook: %w", err)
	}
	w.writeAccountSheet(f, info)

	if err := w.writeTransactionSheet(f, info.Transactions); err != nil {
		return err
	}
	w.writeStatsSheet(f, models.Summarize(info.Transactions))
	w.writeLogSheet(f, info)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %q: %w", path, err)
	}
	return nil
}

func (w *ExcelWriter) writeAccountSheet(f *excelize.File, info *models.StatementInfo) {
	rows := [][2]string{
		{"项目", "内容"},
		{"银行类型", w.BankName},
		{"检测置信度", fmt.Sprintf("%.2f%%", info.Confidence*100)},
		{"处理时间", time.Now().Format("2006-01-02 15:04:05")},
	}
	if info.Account.HolderName != "" {
		rows = append(rows, [2]string{"姓名", info.Account.HolderName})
	}
	if info.Account.AccountNumber != "" {
		rows = append(rows, [2]string{"账号", info.Account.AccountNumber})
	}
	if info.Account.AccountType != "" {
		rows = append(rows, [2]string{"账户类型", info.Account.AccountType})
	}
	if info.Account.BranchName != "" {
		rows = append(rows, [2]string{"开户行", info.Account.BranchName})
	}
	if info.Account.AppliedAt != "" {
		rows = append(rows, [2]string{"申请时间", info.Account.AppliedAt})
	}
	if info.Account.Period != "" {
		rows = append(rows, [2]string{"账单周期", info.Account.Period})
	}

	for i, row := range rows {
		f.SetCellValue(sheetAccount, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(sheetAccount, fmt.Sprintf("B%d", i+1), row[1])
	}
	f.SetColWidth(sheetAccount, "A", "A", 25)
	f.SetColWidth(sheetAccount, "B", "B", 40)
}

var transactionColumns = []struct {
	header string
	width  float64
}{
	{"日期", 12}, {"星期", 10}, {"记账日期", 12}, {"货币", 8},
	{"交易金额", 15}, {"交易方向", 10}, {"联机余额", 15}, {"交易类型", 15},
	{"交易分类", 15}, {"对方名称", 25}, {"对方账号", 25}, {"原始对手信息", 40},
}

func (w *ExcelWriter) writeTransactionSheet(f *excelize.File, txns []models.Transaction) error {
	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return fmt.Errorf("creating transaction sheet: %w", err)
	}

	for i, col := range transactionColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetTransactions, cell, col.header)
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetTransactions, name, name, col.width)
	}

	// #,##0.00 for the amount and balance columns
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("creating number style: %w", err)
	}

	directionLabels := map[models.Direction]string{
		models.DirectionIncome:  "收入",
		models.DirectionExpense: "支出",
	}

	for i, txn := range txns {
		row := i + 2
		amount, _ := txn.Amount.Float64()
		balance, _ := txn.Balance.Float64()

		values := []interface{}{
			txn.Date.Format("2006-01-02"),
			txn.Weekday,
			txn.BookingDate,
			txn.Currency,
			amount,
			directionLabels[txn.Direction],
			balance,
			txn.RawType,
			string(txn.Category),
			txn.CounterpartyName,
			txn.CounterpartyAccount,
			txn.RawCounterpartyText,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetTransactions, cell, v)
		}

		for _, colName := range []string{"E", "G"} {
			cell := fmt.Sprintf("%s%d", colName, row)
			f.SetCellStyle(sheetTransactions, cell, cell, moneyStyle)
		}
	}

	return nil
}

func (w *ExcelWriter) writeStatsSheet(f *excelize.File, s models.Summary) {
	f.NewSheet(sheetStats)

	totalIncome, _ := s.TotalIncome.Float64()
	totalExpense, _ := s.TotalExpense.Float64()
	netFlow, _ := s.NetFlow.Float64()

	rows := [][2]interface{}{
		{"总交易笔数", s.TotalCount},
		{"收入笔数", s.IncomeCount},
		{"支出笔数", s.ExpenseCount},
		{"总收入金额", totalIncome},
		{"总支出金额", totalExpense},
		{"净现金流", netFlow},
	}
	if !s.FirstDate.IsZero() {
		rows = append(rows,
			[2]interface{}{"日期范围", s.FirstDate.Format("2006-01-02") + " 至 " + s.LastDate.Format("2006-01-02")},
			[2]interface{}{"天数", s.Days},
		)
	}

	for i, row := range rows {
		f.SetCellValue(sheetStats, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(sheetStats, fmt.Sprintf("B%d", i+1), row[1])
	}
	f.SetColWidth(sheetStats, "A", "A", 25)
	f.SetColWidth(sheetStats, "B", "B", 20)
}

func (w *ExcelWriter) writeLogSheet(f *excelize.File, info *models.StatementInfo) {
	f.NewSheet(sheetLog)

	rows := [][2]interface{}{
		{"处理时间", time.Now().Format("2006-01-02 15:04:05")},
		{"银行类型", w.BankName},
		{"检测置信度", fmt.Sprintf("%.2f%%", info.Confidence*100)},
		{"交易记录数", len(info.Transactions)},
		{"扫描行数", info.Stats.LinesSeen},
		{"丢弃比例", fmt.Sprintf("%.2f%%", info.Stats.DiscardRatio()*100)},
		{"使用全文回退", info.UsedFallback},
		{"处理状态", "成功"},
	}

	for i, row := range rows {
		f.SetCellValue(sheetLog, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(sheetLog, fmt.Sprintf("B%d", i+1), row[1])
	}
	f.SetColWidth(sheetLog, "A", "A", 25)
	f.SetColWidth(sheetLog, "B", "B", 30)
}
