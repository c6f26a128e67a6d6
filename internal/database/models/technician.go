package models

type Technician struct {
	BaseModel
	Name string `json:"name" gorm:"not null" validate:"required,min=1"`
}

// TableName returns the table name for Technician
func (Technician) TableName() string {
	return "technicians"
}

// NewTechnicians builds one unsaved Technician per name, preserving order
func NewTechnicians(names []string) []Technician {
	technicians := make([]Technician, 0, len(names))
	for _, name := range names {
		technicians = append(technicians, Technician{Name: name})
	}
	return technicians
}
