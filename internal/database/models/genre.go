package models

type Genre struct {
	BaseModel
	Name string `json:"name" gorm:"size:50;not null" validate:"required,min=1,max=50"`
}

// TableName returns the table name for Genre
func (Genre) TableName() string {
	return "genres"
}

// NewGenres builds one unsaved Genre per name, preserving order
func NewGenres(names []string) []Genre {
	genres := make([]Genre, 0, len(names))
	for _, name := range names {
		genres = append(genres, Genre{Name: name})
	}
	return genres
}
