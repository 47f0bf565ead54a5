package models

import (
	"time"
)

// Transaction represents a single financial movement (income or expense)
type Transaction struct {
	ID            int64     `json:"id" db:"id"`
	Type          string    `json:"type" db:"type"`
	Category      string    `json:"category" db:"category"`
	Amount        float64   `json:"amount" db:"amount"`
	Date          time.Time `json:"date" db:"date"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	Description   string    `json:"description,omitempty" db:"description"`
	Reference     string    `json:"reference,omitempty" db:"reference"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Transaction types
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Payment methods
const (
	PaymentCash     = "cash"
	PaymentCheck    = "check"
	PaymentTransfer = "transfer"
)

// MaxCashAmount is the legal ceiling (in dinars) for a single cash
// transaction. Larger amounts must go through check or bank transfer.
const MaxCashAmount = 500.0

// ValidCategories enumerates the accepted categories per transaction type.
// Category cells are matched against these after normalization.
var ValidCategories = map[string]map[string]bool{
	TransactionIncome: {
		"التبرعات النقدية": true,
		"التبرعات العينية": true,
		"اشتراكات الطلاب":  true,
		"منح وإعانات":      true,
		"أخرى":             true,
	},
	TransactionExpense: {
		"رواتب":         true,
		"إيجار":         true,
		"فواتير":        true,
		"صيانة":         true,
		"لوازم مكتبية":  true,
		"أخرى":          true,
	},
}
