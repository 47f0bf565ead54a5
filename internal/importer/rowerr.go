package importer

import (
	"fmt"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// FailureKind classifies row-local failures so callers and tests can branch
// on the kind instead of matching localized message text.
type FailureKind string

const (
	KindMissingField  FailureKind = "missing_field"
	KindInvalidValue  FailureKind = "invalid_value"
	KindNotFound      FailureKind = "not_found"
	KindDuplicate     FailureKind = "duplicate"
	KindRuleViolation FailureKind = "rule_violation"
)

// RowError is a structured row-local failure: the kind and offending field
// drive programmatic handling, the message is what reaches the report.
type RowError struct {
	Kind    FailureKind
	Field   workbook.Field
	Message string
}

func (e *RowError) Error() string {
	return e.Message
}

func missingField(et workbook.EntityType, f workbook.Field) *RowError {
	return &RowError{
		Kind:    KindMissingField,
		Field:   f,
		Message: fmt.Sprintf("حقل \"%s\" مطلوب", workbook.Label(et, f)),
	}
}

func invalidValue(et workbook.EntityType, f workbook.Field, value string) *RowError {
	return &RowError{
		Kind:    KindInvalidValue,
		Field:   f,
		Message: fmt.Sprintf("قيمة غير صالحة في حقل \"%s\": %s", workbook.Label(et, f), value),
	}
}

func notFound(f workbook.Field, what, ref string) *RowError {
	return &RowError{
		Kind:    KindNotFound,
		Field:   f,
		Message: fmt.Sprintf("%s \"%s\" غير موجود", what, ref),
	}
}

// RowOutcome is the per-row result: a created or updated record identified
// by matricule, a one-time credential for new accounts, or a failure.
type RowOutcome struct {
	Matricule  string
	Created    bool
	Credential *models.Credential
	Err        *RowError
}

func failed(err *RowError) RowOutcome {
	return RowOutcome{Err: err}
}
