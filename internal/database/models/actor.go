package models

type Actor struct {
	BaseModel
	Name string `json:"name" gorm:"not null" validate:"required,min=1"`
}

// TableName returns the table name for Actor
func (Actor) TableName() string {
	return "actors"
}

// NewActors builds one unsaved Actor per name, preserving order
func NewActors(names []string) []Actor {
	actors := make([]Actor, 0, len(names))
	for _, name := range names {
		actors = append(actors, Actor{Name: name})
	}
	return actors
}
