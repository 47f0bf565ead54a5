package importer

import (
	"context"
	"fmt"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// processTransactionRow validates one financial transaction row. The
// category must belong to the valid set for the transaction type, and cash
// payments above the legal ceiling are rejected.
func (imp *Importer) processTransactionRow(ctx context.Context, row []string, mapping workbook.FieldMapping) (RowOutcome, error) {
	et := workbook.EntityTransaction

	typeCell := mapping.Cell(row, workbook.FieldType)
	if typeCell == "" {
		return failed(missingField(et, workbook.FieldType)), nil
	}
	txType, ok := NormalizeTransactionType(typeCell)
	if !ok {
		return failed(invalidValue(et, workbook.FieldType, typeCell)), nil
	}

	categoryCell := mapping.Cell(row, workbook.FieldCategory)
	if categoryCell == "" {
		return failed(missingField(et, workbook.FieldCategory)), nil
	}
	category, ok := NormalizeCategory(txType, categoryCell)
	if !ok {
		return failed(&RowError{
			Kind:    KindInvalidValue,
			Field:   workbook.FieldCategory,
			Message: fmt.Sprintf("الفئة \"%s\" غير صالحة لنوع المعاملة", categoryCell),
		}), nil
	}

	amountCell := mapping.Cell(row, workbook.FieldAmount)
	if amountCell == "" {
		return failed(missingField(et, workbook.FieldAmount)), nil
	}
	amount, ok := parseAmount(amountCell)
	if !ok || amount <= 0 {
		return failed(invalidValue(et, workbook.FieldAmount, amountCell)), nil
	}

	dateCell := mapping.Cell(row, workbook.FieldDate)
	if dateCell == "" {
		return failed(missingField(et, workbook.FieldDate)), nil
	}
	date, ok := parseDate(dateCell)
	if !ok {
		return failed(invalidValue(et, workbook.FieldDate, dateCell)), nil
	}

	method := models.PaymentCash
	if v := mapping.Cell(row, workbook.FieldPaymentMethod); v != "" {
		method, ok = NormalizePaymentMethod(v)
		if !ok {
			return failed(invalidValue(et, workbook.FieldPaymentMethod, v)), nil
		}
	}

	if method == models.PaymentCash && amount > models.MaxCashAmount {
		return failed(&RowError{
			Kind:  KindRuleViolation,
			Field: workbook.FieldAmount,
			Message: fmt.Sprintf(
				"المعاملات النقدية التي تتجاوز %.0f دينارا يجب أن تتم عن طريق شيك أو تحويل بنكي",
				models.MaxCashAmount),
		}), nil
	}

	tx := &models.Transaction{
		Type:          txType,
		Category:      category,
		Amount:        amount,
		Date:          date,
		PaymentMethod: method,
		Description:   mapping.Cell(row, workbook.FieldDescription),
		Reference:     mapping.Cell(row, workbook.FieldReference),
	}
	if err := imp.repos.Transaction.Create(ctx, tx); err != nil {
		return RowOutcome{}, err
	}
	return RowOutcome{Matricule: fmt.Sprintf("%d", tx.ID), Created: true}, nil
}
