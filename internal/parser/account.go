package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/bank-txt-converter/internal/models"
)

var (
	holderNamePattern    = regexp.MustCompile(`姓名[:：]\s*([^\s:：]+)`)
	accountNumberPattern = regexp.MustCompile(`账号[:：]\s*([^\s:：]+)`)
)

// Statement period expressed as a date range, in the formats the exports
// actually use.
var periodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{8})\s*[至到~\-]\s*(\d{8})`),
	regexp.MustCompile(`(\d{4}-\d{1,2}-\d{1,2})\s*[至到~]\s*(\d{4}-\d{1,2}-\d{1,2})`),
	regexp.MustCompile(`(\d{4}/\d{1,2}/\d{1,2})\s*[至到~\-]\s*(\d{4}/\d{1,2}/\d{1,2})`),
	regexp.MustCompile(`(\d{4}年\d{1,2}月\d{1,2}日)\s*[至到~\-]\s*(\d{4}年\d{1,2}月\d{1,2}日)`),
}

// ExtractAccountInfo pulls the labelled account metadata block out of the
// statement header. Metadata is best-effort presentation data; missing
// fields stay empty.
func ExtractAccountInfo(lines []string) models.AccountInfo {
	var acct models.AccountInfo

	for i, line := range lines {
		if !strings.Contains(line, "姓名:") && !strings.Contains(line, "Name") {
			continue
		}
		end := i + 20
		if end > len(lines) {
			end = len(lines)
		}
		for j := i; j < end; j++ {
			l := strings.TrimSpace(lines[j])
			switch {
			case strings.Contains(l, "姓名:"):
				acct.HolderName = firstField(labelValue(l, "姓名:"))
			case strings.Contains(l, "账号:"):
				acct.AccountNumber = firstField(labelValue(l, "账号:"))
			case strings.Contains(l, "账户类型:"):
				acct.AccountType = firstField(labelValue(l, "账户类型:"))
			case strings.Contains(l, "开户行:"):
				acct.BranchName = labelValue(l, "开户行:")
			case strings.Contains(l, "申请时间:"):
				acct.AppliedAt = labelValue(l, "申请时间:")
			}
		}
		break
	}

	// Labelled block not found — scan the top of the file directly.
	if acct.HolderName == "" {
		top := len(lines)
		if top > 50 {
			top = 50
		}
		for _, line := range lines[:top] {
			clean := Normalize(line)
			if acct.HolderName == "" {
				if m := holderNamePattern.FindStringSubmatch(clean); m != nil {
					acct.HolderName = m[1]
				}
			}
			if acct.AccountNumber == "" {
				if m := accountNumberPattern.FindStringSubmatch(clean); m != nil {
					acct.AccountNumber = m[1]
				}
			}
		}
	}

	acct.Period = extractPeriod(strings.Join(lines, "\n"))
	return acct
}

func extractPeriod(text string) string {
	for _, pat := range periodPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			return m[1] + " 至 " + m[2]
		}
	}
	return ""
}

func labelValue(line, label string) string {
	idx := strings.Index(line, label)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+len(label):])
}

func firstField(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return s
}
