package workbook

import (
	"fmt"
	"strings"
)

// headerScanRows bounds the header search: a header row must sit within the
// first five rows of a sheet, which tolerates title or logo rows above it.
const headerScanRows = 5

// contentMatchThreshold is the minimum number of alias-matching cells a row
// needs before the classifier will infer the entity type from content alone.
const contentMatchThreshold = 2

// Classification is the result of inspecting a single sheet: whether it was
// recognized, as what, where its header sits, and the column mapping.
type Classification struct {
	SheetName  string
	Recognized bool
	Type       EntityType
	HeaderRow  int // index into Sheet.Rows
	DataStart  int // first data row index
	Mapping    FieldMapping
	Warnings   []string
	Message    string // localized reason when unrecognized
}

// Classify determines which entity type a sheet represents and where its
// header row sits. The sheet name is consulted first; when it matches a
// known alias, any scanned row containing at least one of that entity's
// header labels is accepted as the header. Otherwise the type is inferred
// from whichever alias set the header content best matches, requiring at
// least two non-empty cells and two alias hits. Pure function over the
// sheet content.
func Classify(sheet *Sheet) Classification {
	cls := Classification{SheetName: sheet.Name}

	namedType, nameKnown := foldedSheetAliases[Fold(sheet.Name)]

	limit := headerScanRows
	if len(sheet.Rows) < limit {
		limit = len(sheet.Rows)
	}

	for i := 0; i < limit; i++ {
		row := sheet.Rows[i]
		if RowEmpty(row) {
			continue
		}

		if nameKnown {
			if countHeaderMatches(row, namedType) >= 1 {
				return recognized(sheet, namedType, i)
			}
			continue
		}

		// Name gave nothing: infer the type from header content.
		if countNonEmpty(row) < contentMatchThreshold {
			continue
		}
		bestType, bestCount := EntityType(""), 0
		for _, et := range EntityTypes {
			if n := countHeaderMatches(row, et); n > bestCount {
				bestType, bestCount = et, n
			}
		}
		if bestCount >= contentMatchThreshold {
			return recognized(sheet, bestType, i)
		}
	}

	cls.Recognized = false
	if nameKnown {
		cls.Type = namedType
		cls.Message = fmt.Sprintf("تعذر العثور على صف العناوين في ورقة \"%s\"", sheet.Name)
	} else {
		cls.Message = fmt.Sprintf("نوع الورقة \"%s\" غير معروف", sheet.Name)
	}
	return cls
}

func recognized(sheet *Sheet, et EntityType, headerRow int) Classification {
	mapping, warnings := MapColumns(sheet.Rows[headerRow], et)
	return Classification{
		SheetName:  sheet.Name,
		Recognized: true,
		Type:       et,
		HeaderRow:  headerRow,
		DataStart:  headerRow + 1,
		Mapping:    mapping,
		Warnings:   warnings,
	}
}

func countHeaderMatches(row []string, et EntityType) int {
	set := entityHeaderSet[et]
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if set[Fold(cell)] {
			n++
		}
	}
	return n
}

func countNonEmpty(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}
