package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MovieServiceInterface defines the interface for movie service
type MovieServiceInterface interface {
	CreateMovie(req *CreateMovieRequest) (*MovieResponse, error)
	GetMovieByID(id uint) (*MovieResponse, error)
	ListMovies() (*MovieListResponse, error)
	UpdateMovieByName(name string, req *UpdateMovieRequest) (*MovieResponse, error)
	SearchMovies(params *MovieSearchParams) (*MovieSearchResponse, error)
}
