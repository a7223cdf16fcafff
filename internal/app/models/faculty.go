package models

// Faculty represents a faculty within an institution
type Faculty struct {
	ID            int64  `json:"id"`
	InstitutionID int64  `json:"institution_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`

	// Relation (populated when needed)
	Institution *Institution `json:"institution,omitempty"`
}

// GetID returns the faculty identifier
func (f Faculty) GetID() int64 { return f.ID }
