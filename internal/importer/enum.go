package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// Enum normalization: every localized spelling accepted for a domain
// enumeration maps here to its canonical value, shared by all row
// processors so the mapping stays consistent.

var genderAliases = aliasTable(map[string][]string{
	models.GenderMale:   {"ذكر", "male", "m", "homme"},
	models.GenderFemale: {"أنثى", "انثى", "female", "f", "femme"},
})

var statusAliases = aliasTable(map[string][]string{
	models.StatusActive:   {"نشط", "ناشط", "active", "actif"},
	models.StatusInactive: {"غير نشط", "مغادر", "inactive", "inactif"},
})

var attendanceAliases = aliasTable(map[string][]string{
	models.AttendancePresent: {"حاضر", "present", "présent"},
	models.AttendanceAbsent:  {"غائب", "absent"},
	models.AttendanceLate:    {"متأخر", "late", "en retard"},
	models.AttendanceExcused: {"معذور", "بعذر", "excused", "excusé"},
})

var paymentAliases = aliasTable(map[string][]string{
	models.PaymentCash:     {"نقدي", "نقدا", "cash", "espèces", "especes"},
	models.PaymentCheck:    {"شيك", "check", "cheque", "chèque"},
	models.PaymentTransfer: {"تحويل", "تحويل بنكي", "transfer", "virement"},
})

var transactionTypeAliases = aliasTable(map[string][]string{
	models.TransactionIncome:  {"دخل", "إيراد", "مداخيل", "income", "recette"},
	models.TransactionExpense: {"مصروف", "مصاريف", "نفقة", "expense", "dépense", "depense"},
})

var roleAliases = aliasTable(map[string][]string{
	"admin":   {"مدير", "admin", "administrateur"},
	"manager": {"مشرف", "manager", "gestionnaire"},
	"user":    {"مستخدم", "user", "utilisateur"},
})

// foldedCategories maps, per transaction type, folded category labels back
// to their canonical spelling.
var foldedCategories = map[string]map[string]string{}

func init() {
	for txType, categories := range models.ValidCategories {
		foldedCategories[txType] = map[string]string{}
		for c := range categories {
			foldedCategories[txType][workbook.Fold(c)] = c
		}
	}
}

func aliasTable(table map[string][]string) map[string]string {
	folded := map[string]string{}
	for canonical, aliases := range table {
		folded[workbook.Fold(canonical)] = canonical
		for _, a := range aliases {
			folded[workbook.Fold(a)] = canonical
		}
	}
	return folded
}

func normalizeEnum(table map[string]string, s string) (string, bool) {
	v, ok := table[workbook.Fold(s)]
	return v, ok
}

// NormalizeGender maps localized gender text to its canonical value.
func NormalizeGender(s string) (string, bool) { return normalizeEnum(genderAliases, s) }

// NormalizeStatus maps localized record-status text to its canonical value.
func NormalizeStatus(s string) (string, bool) { return normalizeEnum(statusAliases, s) }

// NormalizeAttendance maps localized attendance text to its canonical value.
func NormalizeAttendance(s string) (string, bool) { return normalizeEnum(attendanceAliases, s) }

// NormalizePaymentMethod maps localized payment-method text to its canonical value.
func NormalizePaymentMethod(s string) (string, bool) { return normalizeEnum(paymentAliases, s) }

// NormalizeTransactionType maps localized transaction-type text to its canonical value.
func NormalizeTransactionType(s string) (string, bool) { return normalizeEnum(transactionTypeAliases, s) }

// NormalizeRole maps localized role text to its canonical role name.
func NormalizeRole(s string) (string, bool) { return normalizeEnum(roleAliases, s) }

// NormalizeCategory resolves a category cell against the valid category set
// for the transaction type, returning the canonical spelling.
func NormalizeCategory(txType, s string) (string, bool) {
	c, ok := foldedCategories[txType][workbook.Fold(s)]
	return c, ok
}

// Cell parsing helpers shared by row processors.

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
	"02-01-2006",
	time.RFC3339,
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(workbook.NormalizeDigits(s))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(workbook.NormalizeDigits(s))
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(workbook.NormalizeDigits(s))
	v, err := strconv.Atoi(s)
	return v, err == nil
}
