package workbook

import (
	"fmt"
	"strings"
)

// FieldMapping maps canonical fields to column indexes within a sheet's
// rows. It is built once per sheet and passed immutably to row processors.
type FieldMapping map[Field]int

// Has reports whether the field resolved to a column.
func (m FieldMapping) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// Cell returns the trimmed value of the mapped column in row, or "" when the
// field is unmapped or the row is short.
func (m FieldMapping) Cell(row []string, f Field) string {
	idx, ok := m[f]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// MapColumns resolves each canonical field of the entity type to a column
// index by matching header cells against the field's aliases (first match
// wins). Required fields without a match each produce a warning naming the
// missing canonical label; optional fields are silently omitted. The result
// is deterministic for a given header row and entity type.
func MapColumns(headerRow []string, et EntityType) (FieldMapping, []string) {
	folded := make([]string, len(headerRow))
	for i, cell := range headerRow {
		folded[i] = Fold(cell)
	}

	mapping := FieldMapping{}
	var warnings []string

	required := map[Field]bool{}
	for _, f := range requiredFields[et] {
		required[f] = true
	}

	for _, f := range fieldOrder[et] {
		aliases := foldedFieldAliases[et][f]
		found := false
		for i, cell := range folded {
			if cell == "" {
				continue
			}
			if aliases[cell] {
				mapping[f] = i
				found = true
				break
			}
		}
		if !found && required[f] {
			warnings = append(warnings, fmt.Sprintf("العمود المطلوب \"%s\" غير موجود", Label(et, f)))
		}
	}

	return mapping, warnings
}

// HasAnyRequired reports whether at least one required field of the entity
// type resolved to a column. Sheets where none did cannot be imported.
func HasAnyRequired(mapping FieldMapping, et EntityType) bool {
	for _, f := range requiredFields[et] {
		if mapping.Has(f) {
			return true
		}
	}
	return false
}
