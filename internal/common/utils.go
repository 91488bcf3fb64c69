package common

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dotless ı has no decomposition, so NFD alone leaves "Iğdır" and "igdir" apart.
var turkishFolds = strings.NewReplacer("ı", "i")

// FoldName returns a case and diacritic insensitive key for a place name, so
// "İSTANBUL", "Istanbul" and "istanbul" all fold to "istanbul".
func FoldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		result = s
	}
	return turkishFolds.Replace(strings.ToLower(result))
}
