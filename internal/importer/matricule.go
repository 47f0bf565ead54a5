package importer

import (
	"context"
	"fmt"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// matriculePrefixes fixes the human-readable prefix per entity type.
// Matricules look like S-0001, T-0003, U-0002, INV-0027.
var matriculePrefixes = map[workbook.EntityType]string{
	workbook.EntityStudent:   "S-",
	workbook.EntityTeacher:   "T-",
	workbook.EntityUser:      "U-",
	workbook.EntityInventory: "INV-",
}

// nextMatricule issues the next identifier for an entity type: highest
// existing numeric suffix plus one. Safe only because rows are processed
// strictly sequentially over a single store; the issued value is persisted
// before the next row asks for one.
func (imp *Importer) nextMatricule(ctx context.Context, et workbook.EntityType) (string, error) {
	var max int
	var err error
	switch et {
	case workbook.EntityStudent:
		max, err = imp.repos.Student.MaxMatriculeSeq(ctx)
	case workbook.EntityTeacher:
		max, err = imp.repos.Teacher.MaxMatriculeSeq(ctx)
	case workbook.EntityUser:
		max, err = imp.repos.User.MaxMatriculeSeq(ctx)
	case workbook.EntityInventory:
		max, err = imp.repos.Inventory.MaxMatriculeSeq(ctx)
	default:
		return "", fmt.Errorf("entity type %s has no matricule sequence", et)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read matricule sequence for %s: %w", et, err)
	}
	return fmt.Sprintf("%s%04d", matriculePrefixes[et], max+1), nil
}
