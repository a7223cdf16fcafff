package models

// Institution represents the root of the academic hierarchy
type Institution struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GetID returns the institution identifier
func (i Institution) GetID() int64 { return i.ID }
