package domain

// Форматы времени
const (
	// DateTimeFormat формат временных меток в API: ISO-8601 с числовым смещением
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
	DateFormat     = "2006-01-02"
)

// Ограничения на визиты
const (
	MinVisitDurationMinutes = 1
	MaxVisitDurationMinutes = 480 // 8 часов
	MaxDescriptionLength    = 1000
)

// KnownVisitTypes допустимые типы визитов
var KnownVisitTypes = []VisitType{
	VisitTypeRoutine,
	VisitTypeEmergency,
	VisitTypeControl,
}

// KnownOperationTypes допустимые типы процедур
var KnownOperationTypes = []OperationType{
	OperationCheckup,
	OperationVaccination,
	OperationSurgery,
	OperationDental,
	OperationGrooming,
}

// TerminalStatuses терминальные статусы визита
// Только эти статусы допустимы как цель финализации
var TerminalStatuses = []VisitStatus{
	StatusCompleted,
	StatusCancelled,
}

// IsKnownVisitType проверяет, что тип визита из допустимого набора
func IsKnownVisitType(t VisitType) bool {
	for _, known := range KnownVisitTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsKnownOperationType проверяет, что тип процедуры из допустимого набора
func IsKnownOperationType(t OperationType) bool {
	for _, known := range KnownOperationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsTerminalStatus проверяет, что статус терминальный
func IsTerminalStatus(s VisitStatus) bool {
	for _, terminal := range TerminalStatuses {
		if s == terminal {
			return true
		}
	}
	return false
}
