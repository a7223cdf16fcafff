package models

// ProgramLevel defines the academic level of a program
type ProgramLevel string

const (
	ProgramLevelUndergraduate ProgramLevel = "undergraduate"
	ProgramLevelGraduate      ProgramLevel = "graduate"
	ProgramLevelPostgraduate  ProgramLevel = "postgraduate"
	ProgramLevelDiploma       ProgramLevel = "diploma"
	ProgramLevelCertificate   ProgramLevel = "certificate"
)

// ValidProgramLevel reports whether level is one of the known program levels.
func ValidProgramLevel(level ProgramLevel) bool {
	switch level {
	case ProgramLevelUndergraduate, ProgramLevelGraduate, ProgramLevelPostgraduate,
		ProgramLevelDiploma, ProgramLevelCertificate:
		return true
	}
	return false
}

// Program represents a degree program offered by a department
type Program struct {
	ID           int64        `json:"id"`
	DepartmentID int64        `json:"department_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	ProgramLevel ProgramLevel `json:"program_level"`

	// Denormalized for list display only
	DepartmentName  string `json:"department_name,omitempty"`
	InstitutionID   int64  `json:"institution_id,omitempty"`
	InstitutionName string `json:"institution_name,omitempty"`

	Department *Department `json:"department,omitempty"`
}

// GetID returns the program identifier
func (p Program) GetID() int64 { return p.ID }
