package workbook

// Alias tables for sheet names and header labels. The Arabic label listed
// first per entry is the canonical one used when generating templates,
// exports and warning messages; Latin and French spellings are tolerated
// because branch volunteers exchange files produced by both keyboards.

// sheetAliases maps localized sheet names to entity types.
var sheetAliases = map[EntityType][]string{
	EntityStudent:     {"الطلاب", "الطلبة", "students", "eleves", "étudiants"},
	EntityTeacher:     {"المعلمون", "المعلمين", "teachers", "enseignants"},
	EntityUser:        {"المستخدمون", "المستخدمين", "users", "utilisateurs"},
	EntityClass:       {"الفصول", "الحلقات", "classes"},
	EntityGroup:       {"المجموعات", "groups", "groupes"},
	EntityTransaction: {"المعاملات المالية", "المعاملات", "transactions", "finances"},
	EntityAttendance:  {"الحضور", "attendance", "présences", "presences"},
	EntityInventory:   {"المخزون", "inventory", "inventaire"},
}

// fieldAliases maps, per entity type, each canonical field to the header
// labels accepted for it. Comparison happens on Fold()ed text.
var fieldAliases = map[EntityType]map[Field][]string{
	EntityStudent: {
		FieldMatricule:      {"الرقم التعريفي", "المعرف", "matricule", "id"},
		FieldName:           {"الاسم واللقب", "الاسم الكامل", "الاسم", "name", "nom et prénom"},
		FieldGender:         {"الجنس", "gender", "sexe"},
		FieldDateOfBirth:    {"تاريخ الميلاد", "date of birth", "date de naissance"},
		FieldPhone:          {"الهاتف", "رقم الهاتف", "phone", "téléphone"},
		FieldAddress:        {"العنوان", "address", "adresse"},
		FieldGuardianName:   {"اسم الولي", "ولي الأمر", "guardian", "tuteur"},
		FieldGuardianPhone:  {"هاتف الولي", "guardian phone", "téléphone du tuteur"},
		FieldEnrollmentDate: {"تاريخ التسجيل", "enrollment date", "date d'inscription"},
		FieldStatus:         {"الحالة", "الوضعية", "status", "statut"},
		FieldNotes:          {"ملاحظات", "notes", "remarques"},
	},
	EntityTeacher: {
		FieldMatricule:  {"الرقم التعريفي", "المعرف", "matricule", "id"},
		FieldName:       {"الاسم واللقب", "الاسم الكامل", "الاسم", "name", "nom et prénom"},
		FieldGender:     {"الجنس", "gender", "sexe"},
		FieldNationalID: {"رقم بطاقة التعريف", "البطاقة الوطنية", "national id", "cin"},
		FieldPhone:      {"الهاتف", "رقم الهاتف", "phone", "téléphone"},
		FieldEmail:      {"البريد الإلكتروني", "email", "courriel"},
		FieldSpecialty:  {"التخصص", "specialty", "spécialité"},
		FieldHireDate:   {"تاريخ التوظيف", "hire date", "date d'embauche"},
		FieldStatus:     {"الحالة", "الوضعية", "status", "statut"},
		FieldNotes:      {"ملاحظات", "notes", "remarques"},
	},
	EntityUser: {
		FieldMatricule: {"الرقم التعريفي", "المعرف", "matricule", "id"},
		FieldUsername:  {"اسم المستخدم", "username", "nom d'utilisateur"},
		FieldFullName:  {"الاسم الكامل", "الاسم واللقب", "full name", "nom complet"},
		FieldEmail:     {"البريد الإلكتروني", "email", "courriel"},
		FieldRole:      {"الدور", "الصلاحية", "role", "rôle"},
		FieldStatus:    {"الحالة", "status", "statut"},
	},
	EntityClass: {
		FieldName:             {"اسم الفصل", "اسم الحلقة", "الفصل", "class name", "nom de la classe"},
		FieldTeacherMatricule: {"معرف المعلم", "المعلم", "teacher", "enseignant"},
		FieldSchedule:         {"التوقيت", "الجدول", "schedule", "horaire"},
		FieldCapacity:         {"الطاقة الاستيعابية", "السعة", "capacity", "capacité"},
		FieldStatus:           {"الحالة", "status", "statut"},
	},
	EntityGroup: {
		FieldName:        {"اسم المجموعة", "المجموعة", "group name", "nom du groupe"},
		FieldDescription: {"الوصف", "description"},
		FieldStatus:      {"الحالة", "status", "statut"},
	},
	EntityTransaction: {
		FieldType:          {"النوع", "type"},
		FieldCategory:      {"الفئة", "الصنف", "category", "catégorie"},
		FieldAmount:        {"المبلغ", "amount", "montant"},
		FieldDate:          {"التاريخ", "date"},
		FieldPaymentMethod: {"طريقة الدفع", "payment method", "mode de paiement"},
		FieldDescription:   {"الوصف", "البيان", "description"},
		FieldReference:     {"المرجع", "reference", "référence"},
	},
	EntityAttendance: {
		FieldStudentMatricule: {"معرف الطالب", "الطالب", "student", "étudiant"},
		FieldClassName:        {"الفصل", "اسم الفصل", "class", "classe"},
		FieldDate:             {"التاريخ", "date"},
		FieldStatus:           {"الحالة", "status", "statut"},
	},
	EntityInventory: {
		FieldMatricule:       {"الرقم التعريفي", "المعرف", "matricule", "id"},
		FieldName:            {"اسم العنصر", "العنصر", "item name", "article"},
		FieldCategory:        {"الفئة", "category", "catégorie"},
		FieldQuantity:        {"الكمية", "quantity", "quantité"},
		FieldCondition:       {"الحالة", "condition", "état"},
		FieldAcquisitionDate: {"تاريخ الاقتناء", "acquisition date", "date d'acquisition"},
		FieldNotes:           {"ملاحظات", "notes", "remarques"},
	},
}

// Label returns the canonical (Arabic) header label for a field of an entity
// type. Used for template generation and missing-column warnings.
func Label(et EntityType, f Field) string {
	if aliases := fieldAliases[et][f]; len(aliases) > 0 {
		return aliases[0]
	}
	return string(f)
}

// SheetLabel returns the canonical (Arabic) sheet name for an entity type.
func SheetLabel(et EntityType) string {
	if aliases := sheetAliases[et]; len(aliases) > 0 {
		return aliases[0]
	}
	return string(et)
}

// Folded lookup structures, built once at package init.

// foldedSheetAliases maps Fold(sheet name) -> entity type.
var foldedSheetAliases = map[string]EntityType{}

// foldedFieldAliases maps, per entity type and field, the folded aliases.
var foldedFieldAliases = map[EntityType]map[Field]map[string]bool{}

// entityHeaderSet maps, per entity type, every folded header alias of any of
// its fields. Used for header-row detection scoring.
var entityHeaderSet = map[EntityType]map[string]bool{}

func init() {
	for et, names := range sheetAliases {
		for _, n := range names {
			foldedSheetAliases[Fold(n)] = et
		}
	}
	for et, fields := range fieldAliases {
		foldedFieldAliases[et] = map[Field]map[string]bool{}
		entityHeaderSet[et] = map[string]bool{}
		for f, aliases := range fields {
			set := map[string]bool{}
			for _, a := range aliases {
				folded := Fold(a)
				set[folded] = true
				entityHeaderSet[et][folded] = true
			}
			foldedFieldAliases[et][f] = set
		}
	}
}
