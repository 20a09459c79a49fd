package writer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
)

func TestExcelWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w := &ExcelWriter{BankName: "九江银行"}

	if err := w.WriteToFile(path, sampleInfo()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	wantSheets := []string{"账户信息", "交易明细", "基本统计", "处理日志"}
	sheets := f.GetSheetList()
	if len(sheets) != len(wantSheets) {
		t.Fatalf("sheets = %v, want %v", sheets, wantSheets)
	}
	for i, name := range wantSheets {
		if sheets[i] != name {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i], name)
		}
	}

	// Account sheet carries the bank name and holder.
	if v, _ := f.GetCellValue("账户信息", "B2"); v != "九江银行" {
		t.Errorf("账户信息 B2 = %q, want 九江银行", v)
	}
	if v, _ := f.GetCellValue("账户信息", "B5"); v != "张三" {
		t.Errorf("账户信息 B5 = %q, want 张三", v)
	}

	// Transaction sheet: header then the two rows.
	if v, _ := f.GetCellValue("交易明细", "A1"); v != "日期" {
		t.Errorf("交易明细 A1 = %q, want 日期", v)
	}
	if v, _ := f.GetCellValue("交易明细", "A2"); v != "2025-01-13" {
		t.Errorf("交易明细 A2 = %q", v)
	}
	if v, _ := f.GetCellValue("交易明细", "F2"); v != "收入" {
		t.Errorf("交易明细 F2 = %q, want 收入", v)
	}
	if v, _ := f.GetCellValue("交易明细", "F3"); v != "支出" {
		t.Errorf("交易明细 F3 = %q, want 支出", v)
	}
	if v, _ := f.GetCellValue("交易明细", "J2"); v != "廖灵娇" {
		t.Errorf("交易明细 J2 = %q, want 廖灵娇", v)
	}

	// Stats sheet totals.
	if v, _ := f.GetCellValue("基本统计", "B1"); v != "2" {
		t.Errorf("基本统计 B1 = %q, want 2", v)
	}

	// Log sheet transaction count.
	if v, _ := f.GetCellValue("处理日志", "B4"); v != "2" {
		t.Errorf("处理日志 B4 = %q, want 2", v)
	}
}

func TestExcelWriterEmptyStatement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	w := &ExcelWriter{BankName: "未知"}

	if err := w.WriteToFile(path, &models.StatementInfo{}); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("基本统计", "B1"); v != "0" {
		t.Errorf("基本统计 B1 = %q, want 0", v)
	}
	if v, _ := f.GetCellValue("处理日志", "B8"); v != "成功" {
		t.Errorf("处理日志 B8 = %q, want 成功", v)
	}
}
