package parser

import (
	"strings"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
)

// BankProfile describes how to recognise one bank's statement export.
// Profiles are static configuration: detection keywords plus column-name
// hints for presentation. Detection is advisory only and never gates
// transaction parsing.
type BankProfile struct {
	Bank        models.BankType
	DisplayName string
	Keywords    []string
	ColumnHints map[string]string
}

// profiles is the fixed enumeration order used for tie-breaking.
var profiles = []BankProfile{
	{
		Bank:        models.BankJiujiang,
		DisplayName: "九江银行",
		Keywords:    []string{"九江银行", "jiujiang"},
		ColumnHints: map[string]string{
			"date": "日期", "currency": "货币", "amount": "交易金额",
			"balance": "余额", "type": "交易类型", "counterparty": "对方信息",
		},
	},
	{
		Bank:        models.BankICBC,
		DisplayName: "工商银行",
		Keywords:    []string{"工商银行", "icbc", "industrial and commercial"},
		ColumnHints: map[string]string{
			"date": "交易日期", "currency": "币种", "amount": "发生额",
			"balance": "余额", "type": "业务摘要", "counterparty": "对方户名",
		},
	},
	{
		Bank:        models.BankCCB,
		DisplayName: "建设银行",
		Keywords:    []string{"建设银行", "ccb", "construction bank"},
		ColumnHints: map[string]string{
			"date": "交易日期", "currency": "币种", "amount": "借方金额/贷方金额",
			"balance": "余额", "type": "摘要", "counterparty": "对方户名",
		},
	},
	{
		Bank:        models.BankABC,
		DisplayName: "农业银行",
		Keywords:    []string{"农业银行", "abc", "agricultural bank"},
	},
	{
		Bank:        models.BankBOC,
		DisplayName: "中国银行",
		Keywords:    []string{"中国银行", "boc", "bank of china"},
	},
	{
		Bank:        models.BankCMB,
		DisplayName: "招商银行",
		Keywords:    []string{"招商银行", "cmb", "merchants bank"},
		ColumnHints: map[string]string{
			"date": "交易日期", "currency": "币种", "amount": "收入/支出",
			"balance": "余额", "type": "交易类型", "counterparty": "对方户名",
		},
	},
	{
		Bank:        models.BankCOMM,
		DisplayName: "交通银行",
		Keywords:    []string{"交通银行", "bank of communications", "bcm"},
	},
	{
		Bank:        models.BankCITIC,
		DisplayName: "中信银行",
		Keywords:    []string{"中信银行", "citic"},
	},
	{
		Bank:        models.BankCIB,
		DisplayName: "兴业银行",
		Keywords:    []string{"兴业银行", "cib", "industrial bank"},
	},
	{
		Bank:        models.BankSPDB,
		DisplayName: "浦发银行",
		Keywords:    []string{"浦发银行", "spdb", "pudong development"},
	},
	{
		Bank:        models.BankPost,
		DisplayName: "邮政储蓄",
		Keywords:    []string{"邮政储蓄", "postal savings"},
	},
}

// Detect scores the sample text against every known bank profile and
// returns the best match with a confidence in [0,1]. Confidence is the
// fraction of the profile's keywords found as case-insensitive substrings.
// Ties keep the first profile in enumeration order; no match at all
// returns the unknown sentinel with score 0.
func Detect(sample string) (models.BankType, float64) {
	lower := strings.ToLower(sample)

	best := models.BankUnknown
	bestScore := 0.0

	for _, p := range profiles {
		matched := 0
		for _, kw := range p.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matched++
			}
		}
		if len(p.Keywords) == 0 {
			continue
		}
		score := float64(matched) / float64(len(p.Keywords))
		if score > bestScore {
			bestScore = score
			best = p.Bank
		}
	}

	return best, bestScore
}

// ProfileFor returns the profile for a bank type, or nil for unknown banks.
func ProfileFor(bank models.BankType) *BankProfile {
	for i := range profiles {
		if profiles[i].Bank == bank {
			return &profiles[i]
		}
	}
	return nil
}

// DisplayName returns the human-readable bank name, falling back to the
// raw identifier for banks without a profile.
func DisplayName(bank models.BankType) string {
	if p := ProfileFor(bank); p != nil {
		return p.DisplayName
	}
	if bank == models.BankUnknown || bank == "" {
		return "未知"
	}
	return string(bank)
}
