package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

const sampleText = "九江银行 个人账户交易明细\n20250113 CNY 300,000.00 304,294.31 转账 廖灵娇"

func TestDecodeUTF8(t *testing.T) {
	text, enc := Decode([]byte(sampleText))
	if enc != "utf-8" {
		t.Errorf("encoding = %q, want utf-8", enc)
	}
	if text != sampleText {
		t.Errorf("text = %q", text)
	}
}

func TestDecodeUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleText)...)
	text, enc := Decode(data)
	if enc != "utf-8" {
		t.Errorf("encoding = %q, want utf-8", enc)
	}
	if text != sampleText {
		t.Errorf("BOM not stripped: %q", text)
	}
}

func TestDecodeGB18030(t *testing.T) {
	data, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte(sampleText))
	if err != nil {
		t.Fatal(err)
	}

	text, enc := Decode(data)
	if enc != "gb18030" {
		t.Errorf("encoding = %q, want gb18030", enc)
	}
	if !strings.Contains(text, "九江银行") || !strings.Contains(text, "廖灵娇") {
		t.Errorf("decoded text mangled: %q", text)
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	enc16 := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	data, err := enc16.NewEncoder().Bytes([]byte(sampleText))
	if err != nil {
		t.Fatal(err)
	}

	text, enc := Decode(data)
	if enc != "utf-16le" {
		t.Errorf("encoding = %q, want utf-16le", enc)
	}
	if !strings.Contains(text, "转账") {
		t.Errorf("decoded text mangled: %q", text)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"unix", "a\nb", []string{"a", "b"}},
		{"windows", "a\r\nb", []string{"a", "b"}},
		{"old mac", "a\rb", []string{"a", "b"}},
		{"mixed", "a\r\nb\rc\nd", []string{"a", "b", "c", "d"}},
		{"single", "a", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "statement.txt")
	gbk, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(sampleText))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, gbk, 0o644); err != nil {
		t.Fatal(err)
	}

	lines, enc, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if enc != "gb18030" && enc != "gbk" {
		t.Errorf("encoding = %q, want a GB codec", enc)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "廖灵娇") {
		t.Errorf("line mangled: %q", lines[1])
	}
}

func TestReadLinesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadLines(path); err == nil {
		t.Error("expected error for empty file")
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	if _, _, err := ReadLines(path); err == nil {
		t.Error("expected error for missing file")
	}
}
