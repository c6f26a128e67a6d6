package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "movie-catalog-backend/internal/errors"
	"movie-catalog-backend/internal/logger"
	"movie-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MovieHandler handles HTTP requests for the movie catalog
type MovieHandler struct {
	service service.MovieServiceInterface
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(service service.MovieServiceInterface) *MovieHandler {
	return &MovieHandler{service: service}
}

// MessageResponse is the body of successful writes
type MessageResponse struct {
	Message string `json:"message" example:"Movie created successfully"`
}

// CreateMovie handles POST /movies
// @Summary Create a movie
// @Description Create a movie together with new genre, actor and technician rows
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body service.CreateMovieRequest true "Movie data"
// @Success 201 {object} MessageResponse "Movie created successfully"
// @Failure 400 {object} ErrorResponse "Invalid request body, validation error or duplicate movie"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req service.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if _, err := h.service.CreateMovie(&req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMovieExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Movie already exists"})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.WithContext(c.Request.Context()).WithError(err).Error("create movie failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movie", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Movie created successfully"})
}

// GetMovie handles GET /movies/:id
// @Summary Get movie by ID
// @Description Get a single movie with its genres, actors and technicians
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} service.MovieResponse "Successfully retrieved movie"
// @Failure 404 {object} ErrorResponse "Movie not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	// A non-numeric id cannot name a movie
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}

	movie, err := h.service.GetMovieByID(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("get movie failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get movie", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// ListMovies handles GET /movies
// @Summary List all movies
// @Description List every movie in the catalog ordered by id
// @Tags movies
// @Produce json
// @Success 200 {object} service.MovieListResponse "Successfully retrieved movies"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.service.ListMovies()
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("list movies failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get movies", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movies)
}

// UpdateMovie handles PATCH /movies/:name
// @Summary Update a movie by name
// @Description Partially update the lowest-id movie with the given name. Every related list is replaced; an omitted list is emptied.
// @Tags movies
// @Accept json
// @Produce json
// @Param name path string true "Current movie name"
// @Param movie body service.UpdateMovieRequest true "Fields to update"
// @Success 200 {object} MessageResponse "Movie updated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Movie not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /movies/{name} [patch]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	name := c.Param("name")

	var req service.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if _, err := h.service.UpdateMovieByName(name, &req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.WithContext(c.Request.Context()).WithError(err).Error("update movie failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update movie", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Movie updated successfully"})
}

// SearchMovies handles GET /movie
// @Summary Search movies
// @Description Filter movies by actor, genre and exact user rating, one page at a time
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Param actor query string false "Exact actor name"
// @Param genre query string false "Exact genre name"
// @Param user_rating query number false "Exact user rating"
// @Success 200 {object} service.MovieSearchResponse "One page of matching movies"
// @Failure 400 {object} ErrorResponse "Invalid user_rating"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /movie [get]
func (h *MovieHandler) SearchMovies(c *gin.Context) {
	params := service.MovieSearchParams{
		Page:    queryInt(c, "page", service.DefaultPage),
		PerPage: queryInt(c, "per_page", service.DefaultPerPage),
		Actor:   c.Query("actor"),
		Genre:   c.Query("genre"),
	}

	if raw := c.Query("user_rating"); raw != "" {
		rating, err := parseUserRating(raw)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).WithField("user_rating", raw).Debug("rejected search")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_rating"})
			return
		}
		params.UserRating = rating
	}

	result, err := h.service.SearchMovies(&params)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("search movies failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search movies", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// queryInt reads a positive integer query parameter, falling back to def
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}

func parseUserRating(raw string) (*float64, error) {
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.ErrInvalidUserRating
	}
	return &rating, nil
}
