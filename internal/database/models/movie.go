package models

// Movie is a catalog entry. Its genres, actors and technicians hang off pure
// join tables; every write creates fresh related rows rather than reusing
// existing ones with the same name.
type Movie struct {
	BaseModel
	Name          string   `json:"name" gorm:"size:100;not null;index:idx_movies_name_year" validate:"required,min=1,max=100"`
	YearOfRelease *int     `json:"year_of_release" gorm:"index:idx_movies_name_year"`
	UserRatings   *float64 `json:"user_ratings" gorm:"type:double precision"`

	// Relationships
	Genres      []Genre      `json:"genres,omitempty" gorm:"many2many:movie_genre;"`
	Actors      []Actor      `json:"actors,omitempty" gorm:"many2many:movie_actor;"`
	Technicians []Technician `json:"technicians,omitempty" gorm:"many2many:movie_technician;"`
}

// TableName returns the table name for Movie
func (Movie) TableName() string {
	return "movies"
}

// GenreNames returns the names of the associated genres in load order
func (m *Movie) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}

// ActorNames returns the names of the associated actors in load order
func (m *Movie) ActorNames() []string {
	names := make([]string, 0, len(m.Actors))
	for _, a := range m.Actors {
		names = append(names, a.Name)
	}
	return names
}

// TechnicianNames returns the names of the associated technicians in load order
func (m *Movie) TechnicianNames() []string {
	names := make([]string, 0, len(m.Technicians))
	for _, t := range m.Technicians {
		names = append(names, t.Name)
	}
	return names
}
