// Package reader loads statement TXT files and decodes the legacy
// encodings Chinese bank exports ship in.
package reader

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// candidates are tried in order; on equal confidence the earlier one wins.
var candidates = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", unicode.UTF8},
	{"gb18030", simplifiedchinese.GB18030},
	{"gbk", simplifiedchinese.GBK},
	{"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
}

// ReadLines reads a TXT file, decodes it to Unicode text and splits it
// into lines. Returns the lines and the name of the encoding used.
func ReadLines(path string) ([]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %q: %w", path, err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("file %q is empty", path)
	}

	text, enc := Decode(data)
	return SplitLines(text), enc, nil
}

// Decode converts raw bytes to a string, picking the candidate encoding
// whose output scores best. Scoring favours CJK content and penalises
// replacement glyphs, mirroring how these exports actually look when the
// wrong codec is guessed.
func Decode(data []byte) (string, string) {
	// Explicit BOMs are authoritative.
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return string(data[3:]), "utf-8"
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		if s, err := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), data); err == nil {
			return s, "utf-16le"
		}
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		if s, err := decodeWith(unicode.UTF16(unicode.BigEndian, unicode.UseBOM), data); err == nil {
			return s, "utf-16be"
		}
	}

	// Valid UTF-8 is taken at face value: legacy double-byte text almost
	// never forms valid UTF-8 sequences, while GB18030 happily decodes
	// UTF-8 bytes into plausible-looking mojibake.
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}

	bestText := string(data)
	bestName := "utf-8"
	bestScore := -1.0

	for _, c := range candidates {
		decoded, err := decodeWith(c.enc, data)
		if err != nil {
			continue
		}
		if score := textScore(decoded); score > bestScore {
			bestScore = score
			bestText = decoded
			bestName = c.name
		}
	}

	return bestText, bestName
}

// SplitLines normalises line endings and splits decoded text.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func decodeWith(enc encoding.Encoding, data []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// textScore rates decoded text: the CJK character ratio discounted by the
// replacement-glyph ratio.
func textScore(s string) float64 {
	total := 0
	cjk := 0
	garbage := 0
	for _, r := range s {
		total++
		switch {
		case r >= 0x4E00 && r <= 0x9FFF:
			cjk++
		case r == '�':
			garbage++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(cjk) / float64(total) * (1 - float64(garbage)/float64(total))
}
