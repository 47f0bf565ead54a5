package workbook

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a header or enum cell for comparison: NFKC (collapses
// Arabic presentation forms), trim, case fold, internal whitespace collapse,
// and the usual Arabic orthography folds (hamza-alef variants, taa marbuta,
// final yaa, tatweel, diacritics).
func Fold(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
			continue
		case r == 'ـ': // tatweel
			continue
		case r >= 0x064B && r <= 0x065F: // harakat
			continue
		case r == 'أ' || r == 'إ' || r == 'آ':
			r = 'ا'
		case r == 'ة':
			r = 'ه'
		case r == 'ى':
			r = 'ي'
		}
		if space && b.Len() > 0 {
			b.WriteRune(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeDigits maps Arabic-Indic and Extended Arabic-Indic digits to
// ASCII so numeric and date cells parse regardless of keyboard layout.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		}
		return r
	}, s)
}
