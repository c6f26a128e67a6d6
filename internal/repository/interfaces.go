package repository

import (
	"movie-catalog-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// MovieRepositoryInterface defines the interface for movie repository operations
type MovieRepositoryInterface interface {
	Create(movie *models.Movie) error
	GetByID(id uint) (*models.Movie, error)
	GetByName(name string) (*models.Movie, error)
	GetByNameAndYear(name string, year *int) (*models.Movie, error)
	GetAll() ([]models.Movie, error)
	Search(filter MovieFilter, limit, offset int) ([]models.Movie, int64, error)
	Update(movie *models.Movie) error
}
