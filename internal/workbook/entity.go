package workbook

// EntityType identifies which domain entity a sheet holds.
type EntityType string

const (
	EntityStudent     EntityType = "student"
	EntityTeacher     EntityType = "teacher"
	EntityUser        EntityType = "user"
	EntityClass       EntityType = "class"
	EntityGroup       EntityType = "group"
	EntityTransaction EntityType = "transaction"
	EntityAttendance  EntityType = "attendance"
	EntityInventory   EntityType = "inventory"
)

// EntityTypes lists all known entity types in processing order. Teachers
// come before classes and students before attendance so that rows created
// earlier in a batch are visible to sheets that reference them.
var EntityTypes = []EntityType{
	EntityTeacher,
	EntityStudent,
	EntityUser,
	EntityClass,
	EntityGroup,
	EntityAttendance,
	EntityTransaction,
	EntityInventory,
}

// Field is a canonical, language-agnostic attribute name mapped from one or
// more localized header labels.
type Field string

const (
	FieldMatricule        Field = "matricule"
	FieldName             Field = "name"
	FieldGender           Field = "gender"
	FieldDateOfBirth      Field = "date_of_birth"
	FieldPhone            Field = "phone"
	FieldAddress          Field = "address"
	FieldGuardianName     Field = "guardian_name"
	FieldGuardianPhone    Field = "guardian_phone"
	FieldEnrollmentDate   Field = "enrollment_date"
	FieldStatus           Field = "status"
	FieldNotes            Field = "notes"
	FieldNationalID       Field = "national_id"
	FieldEmail            Field = "email"
	FieldSpecialty        Field = "specialty"
	FieldHireDate         Field = "hire_date"
	FieldUsername         Field = "username"
	FieldFullName         Field = "full_name"
	FieldRole             Field = "role"
	FieldTeacherMatricule Field = "teacher_matricule"
	FieldSchedule         Field = "schedule"
	FieldCapacity         Field = "capacity"
	FieldDescription      Field = "description"
	FieldType             Field = "type"
	FieldCategory         Field = "category"
	FieldAmount           Field = "amount"
	FieldDate             Field = "date"
	FieldPaymentMethod    Field = "payment_method"
	FieldReference        Field = "reference"
	FieldStudentMatricule Field = "student_matricule"
	FieldClassName        Field = "class_name"
	FieldQuantity         Field = "quantity"
	FieldCondition        Field = "condition"
	FieldAcquisitionDate  Field = "acquisition_date"
)

// fieldOrder fixes the canonical field order per entity type. Mapping and
// warning generation iterate this order so results are deterministic.
var fieldOrder = map[EntityType][]Field{
	EntityStudent: {
		FieldMatricule, FieldName, FieldGender, FieldDateOfBirth, FieldPhone,
		FieldAddress, FieldGuardianName, FieldGuardianPhone,
		FieldEnrollmentDate, FieldStatus, FieldNotes,
	},
	EntityTeacher: {
		FieldMatricule, FieldName, FieldGender, FieldNationalID, FieldPhone,
		FieldEmail, FieldSpecialty, FieldHireDate, FieldStatus, FieldNotes,
	},
	EntityUser: {
		FieldMatricule, FieldUsername, FieldFullName, FieldEmail, FieldRole,
		FieldStatus,
	},
	EntityClass: {
		FieldName, FieldTeacherMatricule, FieldSchedule, FieldCapacity,
		FieldStatus,
	},
	EntityGroup: {
		FieldName, FieldDescription, FieldStatus,
	},
	EntityTransaction: {
		FieldType, FieldCategory, FieldAmount, FieldDate, FieldPaymentMethod,
		FieldDescription, FieldReference,
	},
	EntityAttendance: {
		FieldStudentMatricule, FieldClassName, FieldDate, FieldStatus,
	},
	EntityInventory: {
		FieldMatricule, FieldName, FieldCategory, FieldQuantity,
		FieldCondition, FieldAcquisitionDate, FieldNotes,
	},
}

// requiredFields lists, per entity type, the canonical fields that must map
// to a column for full processing. A sheet missing some required columns is
// imported with a warning; a sheet where none map is rejected.
var requiredFields = map[EntityType][]Field{
	EntityStudent:     {FieldName},
	EntityTeacher:     {FieldName},
	EntityUser:        {FieldUsername, FieldFullName, FieldRole},
	EntityClass:       {FieldName, FieldTeacherMatricule},
	EntityGroup:       {FieldName},
	EntityTransaction: {FieldType, FieldCategory, FieldAmount, FieldDate},
	EntityAttendance:  {FieldStudentMatricule, FieldClassName, FieldDate, FieldStatus},
	EntityInventory:   {FieldName},
}

// RequiredFields returns the required canonical fields for an entity type.
func RequiredFields(et EntityType) []Field {
	return requiredFields[et]
}

// Fields returns the canonical field order for an entity type.
func Fields(et EntityType) []Field {
	return fieldOrder[et]
}
