package importer

import (
	"context"
	"fmt"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// processInventoryRow creates or updates one inventory item. Item names are
// compared exactly, Arabic letter forms included, so "كتاب" and "كِتاب" are
// distinct items.
func (imp *Importer) processInventoryRow(ctx context.Context, row []string, mapping workbook.FieldMapping) (RowOutcome, error) {
	et := workbook.EntityInventory
	matricule := mapping.Cell(row, workbook.FieldMatricule)

	if matricule != "" {
		existing, err := imp.repos.Inventory.GetByMatricule(ctx, matricule)
		if err != nil {
			return RowOutcome{}, err
		}
		if existing == nil {
			return failed(notFound(workbook.FieldMatricule, "العنصر", matricule)), nil
		}
		if rowErr := applyInventoryRow(existing, row, mapping); rowErr != nil {
			return failed(rowErr), nil
		}
		if err := imp.repos.Inventory.Update(ctx, existing); err != nil {
			return RowOutcome{}, err
		}
		return RowOutcome{Matricule: matricule}, nil
	}

	item := &models.InventoryItem{Quantity: 1}
	if rowErr := applyInventoryRow(item, row, mapping); rowErr != nil {
		return failed(rowErr), nil
	}
	if item.Name == "" {
		return failed(missingField(et, workbook.FieldName)), nil
	}

	exists, err := imp.repos.Inventory.NameExists(ctx, item.Name)
	if err != nil {
		return RowOutcome{}, err
	}
	if exists {
		return failed(&RowError{
			Kind:    KindDuplicate,
			Field:   workbook.FieldName,
			Message: fmt.Sprintf("العنصر \"%s\" موجود مسبقا في المخزون", item.Name),
		}), nil
	}

	item.Matricule, err = imp.nextMatricule(ctx, et)
	if err != nil {
		return RowOutcome{}, err
	}
	if err := imp.repos.Inventory.Create(ctx, item); err != nil {
		return RowOutcome{}, err
	}
	return RowOutcome{Matricule: item.Matricule, Created: true}, nil
}

func applyInventoryRow(item *models.InventoryItem, row []string, mapping workbook.FieldMapping) *RowError {
	et := workbook.EntityInventory

	if v := mapping.Cell(row, workbook.FieldName); v != "" {
		item.Name = v
	}
	if v := mapping.Cell(row, workbook.FieldCategory); v != "" {
		item.Category = v
	}
	if v := mapping.Cell(row, workbook.FieldQuantity); v != "" {
		qty, ok := parseInt(v)
		if !ok || qty < 0 {
			return invalidValue(et, workbook.FieldQuantity, v)
		}
		item.Quantity = qty
	}
	if v := mapping.Cell(row, workbook.FieldCondition); v != "" {
		item.Condition = v
	}
	if v := mapping.Cell(row, workbook.FieldAcquisitionDate); v != "" {
		d, ok := parseDate(v)
		if !ok {
			return invalidValue(et, workbook.FieldAcquisitionDate, v)
		}
		item.AcquisitionDate = &d
	}
	if v := mapping.Cell(row, workbook.FieldNotes); v != "" {
		item.Notes = v
	}
	return nil
}
