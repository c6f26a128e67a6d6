package service

import (
	"errors"
	"fmt"
	"math"

	"movie-catalog-backend/internal/database/models"
	apperrors "movie-catalog-backend/internal/errors"
	"movie-catalog-backend/internal/logger"
	"movie-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// MovieService provides movie catalog business logic
type MovieService struct {
	repo      repository.MovieRepositoryInterface
	validator *validator.Validate
}

// Ensure MovieService implements MovieServiceInterface
var _ MovieServiceInterface = (*MovieService)(nil)

// NewMovieService creates a new MovieService
func NewMovieService(repo repository.MovieRepositoryInterface, validator *validator.Validate) *MovieService {
	return &MovieService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMovieRequest represents the request to create a movie.
// The scalar keys must be present; the related lists are optional.
type CreateMovieRequest struct {
	Name          string   `json:"name" validate:"required,max=100" example:"Heat"`
	YearOfRelease *int     `json:"year_of_release" validate:"required" example:"1995"`
	UserRatings   *float64 `json:"user_ratings" validate:"required" example:"8.3"`
	Genres        []string `json:"genres,omitempty" validate:"dive,required,max=50"`
	Actors        []string `json:"actors,omitempty" validate:"dive,required"`
	Technicians   []string `json:"technicians,omitempty" validate:"dive,required"`
}

// UpdateMovieRequest represents a partial update of a movie. Nil scalars keep
// the stored value; a nil list clears that association.
type UpdateMovieRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	YearOfRelease *int     `json:"year_of_release,omitempty"`
	UserRatings   *float64 `json:"user_ratings,omitempty"`
	Genres        []string `json:"genres,omitempty" validate:"dive,required,max=50"`
	Actors        []string `json:"actors,omitempty" validate:"dive,required"`
	Technicians   []string `json:"technicians,omitempty" validate:"dive,required"`
}

// MovieSearchParams holds the paging and filter inputs of a catalog search
type MovieSearchParams struct {
	Page       int
	PerPage    int
	Actor      string
	Genre      string
	UserRating *float64
}

// MovieResponse is the flat projection of a movie and its related names
type MovieResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	YearOfRelease *int     `json:"year_of_release"`
	UserRatings   *float64 `json:"user_ratings"`
	Genres        []string `json:"genres"`
	Actors        []string `json:"actors"`
	Technicians   []string `json:"technicians"`
}

// MovieListResponse represents the full catalog
type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

// MovieSearchResponse represents one page of a filtered catalog search.
// The total count key is kept verbatim for existing clients.
type MovieSearchResponse struct {
	Movies        []MovieResponse `json:"movies"`
	TotalPages    int             `json:"total_pages"`
	CurrentPage   int             `json:"current_page"`
	TotalMatching int64           `json:"total_movies_matching are"`
}

// CreateMovie validates the request, rejects a duplicate name/year pair and
// stores the movie with freshly created related rows
func (s *MovieService) CreateMovie(req *CreateMovieRequest) (*MovieResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	// Best effort: two concurrent creates can both pass this check
	existing, err := s.repo.GetByNameAndYear(req.Name, req.YearOfRelease)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing movie: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMovieExists
	}

	movie := &models.Movie{
		Name:          req.Name,
		YearOfRelease: req.YearOfRelease,
		UserRatings:   req.UserRatings,
		Genres:        models.NewGenres(req.Genres),
		Actors:        models.NewActors(req.Actors),
		Technicians:   models.NewTechnicians(req.Technicians),
	}

	if err := s.repo.Create(movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"movie_id":    movie.ID,
		"name":        movie.Name,
		"genres":      len(movie.Genres),
		"actors":      len(movie.Actors),
		"technicians": len(movie.Technicians),
	}).Info("movie created")

	return s.toResponse(movie), nil
}

// GetMovieByID retrieves a single movie projection
func (s *MovieService) GetMovieByID(id uint) (*MovieResponse, error) {
	movie, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return s.toResponse(movie), nil
}

// ListMovies retrieves every movie in id order
func (s *MovieService) ListMovies() (*MovieListResponse, error) {
	movies, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}

	return &MovieListResponse{Movies: s.toResponses(movies)}, nil
}

// UpdateMovieByName applies a partial update to the lowest-id movie with the
// given name. Every related list is replaced with new rows, and a list
// missing from the request empties that association.
func (s *MovieService) UpdateMovieByName(name string, req *UpdateMovieRequest) (*MovieResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	movie, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	if req.Name != nil {
		movie.Name = *req.Name
	}
	if req.YearOfRelease != nil {
		movie.YearOfRelease = req.YearOfRelease
	}
	if req.UserRatings != nil {
		movie.UserRatings = req.UserRatings
	}
	movie.Genres = models.NewGenres(req.Genres)
	movie.Actors = models.NewActors(req.Actors)
	movie.Technicians = models.NewTechnicians(req.Technicians)

	if err := s.repo.Update(movie); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"movie_id":    movie.ID,
		"lookup_name": name,
		"name":        movie.Name,
	}).Info("movie updated")

	return s.toResponse(movie), nil
}

// SearchMovies applies the equality filters and returns the requested page.
// Pages past the end come back empty with the real totals.
func (s *MovieService) SearchMovies(params *MovieSearchParams) (*MovieSearchResponse, error) {
	page := params.Page
	if page < 1 {
		page = DefaultPage
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	filter := repository.MovieFilter{
		Actor:      params.Actor,
		Genre:      params.Genre,
		UserRating: params.UserRating,
	}

	// An offset past any real row count still yields the totals with an empty page
	offset := math.MaxInt
	if page-1 <= math.MaxInt/perPage {
		offset = (page - 1) * perPage
	}
	movies, total, err := s.repo.Search(filter, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"page":     page,
		"per_page": perPage,
		"actor":    filter.Actor,
		"genre":    filter.Genre,
		"total":    total,
	}).Debug("movie search")

	return &MovieSearchResponse{
		Movies:        s.toResponses(movies),
		TotalPages:    TotalPages(total, perPage),
		CurrentPage:   page,
		TotalMatching: total,
	}, nil
}

// TotalPages returns the number of pages needed for total items, 0 when empty
func TotalPages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(perPage)))
}

// toResponse converts a Movie model to API response
func (s *MovieService) toResponse(movie *models.Movie) *MovieResponse {
	return &MovieResponse{
		ID:            movie.ID,
		Name:          movie.Name,
		YearOfRelease: movie.YearOfRelease,
		UserRatings:   movie.UserRatings,
		Genres:        movie.GenreNames(),
		Actors:        movie.ActorNames(),
		Technicians:   movie.TechnicianNames(),
	}
}

func (s *MovieService) toResponses(movies []models.Movie) []MovieResponse {
	responses := make([]MovieResponse, len(movies))
	for i := range movies {
		responses[i] = *s.toResponse(&movies[i])
	}
	return responses
}
