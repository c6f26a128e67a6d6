package testutils

import (
	"movie-catalog-backend/internal/database/models"
	"movie-catalog-backend/internal/service"
)

// MovieFactory provides methods to create test Movie data
type MovieFactory struct{}

// NewMovieFactory creates a new MovieFactory
func NewMovieFactory() *MovieFactory {
	return &MovieFactory{}
}

// Create creates an unsaved test Movie with one of each related row
func (f *MovieFactory) Create() *models.Movie {
	year := 1995
	rating := 8.3
	return &models.Movie{
		Name:          "Heat",
		YearOfRelease: &year,
		UserRatings:   &rating,
		Genres:        models.NewGenres([]string{"Crime"}),
		Actors:        models.NewActors([]string{"Al Pacino"}),
		Technicians:   models.NewTechnicians([]string{"Michael Mann"}),
	}
}

// WithName sets a custom name for the movie
func (f *MovieFactory) WithName(name string) *models.Movie {
	movie := f.Create()
	movie.Name = name
	return movie
}

// WithRelations builds a movie with the given related names
func (f *MovieFactory) WithRelations(name string, genres, actors, technicians []string) *models.Movie {
	movie := f.WithName(name)
	movie.Genres = models.NewGenres(genres)
	movie.Actors = models.NewActors(actors)
	movie.Technicians = models.NewTechnicians(technicians)
	return movie
}

// WithRating sets a custom user rating for the movie
func (f *MovieFactory) WithRating(name string, rating float64) *models.Movie {
	movie := f.WithName(name)
	movie.UserRatings = &rating
	return movie
}

// CreateRequest builds a valid create payload
func (f *MovieFactory) CreateRequest(name string, year int, rating float64) *service.CreateMovieRequest {
	return &service.CreateMovieRequest{
		Name:          name,
		YearOfRelease: &year,
		UserRatings:   &rating,
		Genres:        []string{"Crime", "Drama"},
		Actors:        []string{"Al Pacino"},
		Technicians:   []string{"Michael Mann"},
	}
}
