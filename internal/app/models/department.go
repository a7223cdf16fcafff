package models

// Department represents a department within a faculty
type Department struct {
	ID          int64  `json:"id"`
	FacultyID   int64  `json:"faculty_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Denormalized for list display only, never written back
	InstitutionID   int64  `json:"institution_id,omitempty"`
	InstitutionName string `json:"institution_name,omitempty"`

	Faculty *Faculty `json:"faculty,omitempty"`
}

// GetID returns the department identifier
func (d Department) GetID() int64 { return d.ID }
