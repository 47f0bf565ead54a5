package workbook_test

import (
	"testing"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases latin", "Students", "students"},
		{"trims and collapses whitespace", "  الاسم   واللقب  ", "الاسم واللقب"},
		{"folds hamza alef variants", "أحمد إبراهيم آدم", "احمد ابراهيم ادم"},
		{"folds taa marbuta", "الطلبة", "الطلبه"},
		{"folds final yaa", "مصطفى", "مصطفي"},
		{"strips tatweel", "الاســـم", "الاسم"},
		{"strips harakat", "مُحَمَّد", "محمد"},
		{"empty stays empty", "", ""},
		{"tabs and newlines collapse", "date\tof\nbirth", "date of birth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := workbook.Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFoldEquatesSpellingVariants(t *testing.T) {
	// Variants of the same label must fold to the same key
	pairs := [][2]string{
		{"الأسم", "الاسم"},
		{"طلبة", "طلبه"},
		{"المعلّمون", "المعلمون"},
	}
	for _, p := range pairs {
		if workbook.Fold(p[0]) != workbook.Fold(p[1]) {
			t.Errorf("Fold(%q) != Fold(%q): %q vs %q",
				p[0], p[1], workbook.Fold(p[0]), workbook.Fold(p[1]))
		}
	}
}

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"٢٠٢٤-٠١-١٥", "2024-01-15"},
		{"۱۲۳", "123"},
		{"500", "500"},
		{"مبلغ ٧٥٠", "مبلغ 750"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := workbook.NormalizeDigits(tt.input); got != tt.want {
			t.Errorf("NormalizeDigits(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
