package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"movie-catalog-backend/internal/api/handlers"
	apperrors "movie-catalog-backend/internal/errors"
	"movie-catalog-backend/internal/mocks"
	"movie-catalog-backend/internal/service"
	"movie-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// MovieHandlerTestSuite defines the test suite for MovieHandler
type MovieHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMovieServiceInterface
	handler     *handlers.MovieHandler
	http        *testutils.HTTPTestSuite
}

func (suite *MovieHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMovieServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMovieHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	router := suite.http.Router
	router.POST("/movies", suite.handler.CreateMovie)
	router.GET("/movies", suite.handler.ListMovies)
	router.GET("/movies/:id", suite.handler.GetMovie)
	router.PATCH("/movies/:name", suite.handler.UpdateMovie)
	router.GET("/movie", suite.handler.SearchMovies)
}

func (suite *MovieHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MovieHandlerTestSuite) TestCreateMovie_Success() {
	suite.mockService.EXPECT().
		CreateMovie(gomock.Any()).
		DoAndReturn(func(req *service.CreateMovieRequest) (*service.MovieResponse, error) {
			suite.Equal("Heat", req.Name)
			suite.Equal(1995, *req.YearOfRelease)
			suite.Equal([]string{"Crime"}, req.Genres)
			return &service.MovieResponse{ID: 1, Name: req.Name}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/movies", map[string]interface{}{
		"name":            "Heat",
		"year_of_release": 1995,
		"user_ratings":    8.3,
		"genres":          []string{"Crime"},
	})

	var body map[string]string
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &body)
	suite.Equal("Movie created successfully", body["message"])
}

func (suite *MovieHandlerTestSuite) TestCreateMovie_Duplicate() {
	suite.mockService.EXPECT().CreateMovie(gomock.Any()).Return(nil, apperrors.ErrMovieExists)

	w := suite.http.MakeRequest(http.MethodPost, "/movies", map[string]interface{}{
		"name": "Heat", "year_of_release": 1995, "user_ratings": 8.3,
	})

	var body map[string]string
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &body)
	suite.Equal(map[string]string{"error": "Movie already exists"}, body)
}

func (suite *MovieHandlerTestSuite) TestCreateMovie_ValidationError() {
	suite.mockService.EXPECT().
		CreateMovie(gomock.Any()).
		Return(nil, apperrors.NewValidationError("year_of_release", "is required"))

	w := suite.http.MakeRequest(http.MethodPost, "/movies", map[string]interface{}{"name": "Heat", "user_ratings": 8.3})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "year_of_release")
}

func (suite *MovieHandlerTestSuite) TestCreateMovie_MalformedBody() {
	suite.mockService.EXPECT().CreateMovie(gomock.Any()).Times(0)

	w := suite.http.MakeRawRequest(http.MethodPost, "/movies", `{"name": "Heat", "year_of_release": "nineteen"}`)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

func (suite *MovieHandlerTestSuite) TestCreateMovie_InternalError() {
	suite.mockService.EXPECT().CreateMovie(gomock.Any()).Return(nil, errors.New("failed to create movie: db down"))

	w := suite.http.MakeRequest(http.MethodPost, "/movies", map[string]interface{}{
		"name": "Heat", "year_of_release": 1995, "user_ratings": 8.3,
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to create movie")
}

func (suite *MovieHandlerTestSuite) TestGetMovie_Success() {
	suite.mockService.EXPECT().GetMovieByID(uint(1)).Return(&service.MovieResponse{
		ID:            1,
		Name:          "Alien",
		YearOfRelease: intPtr(1979),
		UserRatings:   floatPtr(8.5),
		Genres:        []string{"Horror"},
		Actors:        []string{},
		Technicians:   []string{},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/movies/1", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{
		"id": 1,
		"name": "Alien",
		"year_of_release": 1979,
		"user_ratings": 8.5,
		"genres": ["Horror"],
		"actors": [],
		"technicians": []
	}`, w.Body.String())
}

func (suite *MovieHandlerTestSuite) TestGetMovie_NotFound() {
	suite.mockService.EXPECT().GetMovieByID(uint(404)).Return(nil, apperrors.ErrMovieNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/movies/404", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Movie not found"}`, w.Body.String())
}

func (suite *MovieHandlerTestSuite) TestGetMovie_NonNumericID() {
	suite.mockService.EXPECT().GetMovieByID(gomock.Any()).Times(0)

	w := suite.http.MakeRequest(http.MethodGet, "/movies/abc", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Movie not found"}`, w.Body.String())
}

func (suite *MovieHandlerTestSuite) TestGetMovie_IDOutOfRange() {
	suite.mockService.EXPECT().GetMovieByID(gomock.Any()).Times(0)

	w := suite.http.MakeRequest(http.MethodGet, "/movies/9223372036854775808", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Movie not found"}`, w.Body.String())
}

func (suite *MovieHandlerTestSuite) TestListMovies_Success() {
	suite.mockService.EXPECT().ListMovies().Return(&service.MovieListResponse{
		Movies: []service.MovieResponse{{ID: 1, Name: "Heat"}, {ID: 2, Name: "Alien"}},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/movies", nil)

	var got service.MovieListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Len(got.Movies, 2)
	suite.Equal("Alien", got.Movies[1].Name)
}

func (suite *MovieHandlerTestSuite) TestListMovies_Error() {
	suite.mockService.EXPECT().ListMovies().Return(nil, errors.New("boom"))

	w := suite.http.MakeRequest(http.MethodGet, "/movies", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to get movies")
}

func (suite *MovieHandlerTestSuite) TestUpdateMovie_Success() {
	suite.mockService.EXPECT().
		UpdateMovieByName("Heat", gomock.Any()).
		DoAndReturn(func(name string, req *service.UpdateMovieRequest) (*service.MovieResponse, error) {
			suite.Nil(req.Name)
			suite.Equal(9.0, *req.UserRatings)
			suite.Equal([]string{"Comedy"}, req.Genres)
			suite.Nil(req.Actors)
			return &service.MovieResponse{ID: 1, Name: name}, nil
		})

	w := suite.http.MakeRequest(http.MethodPatch, "/movies/Heat", map[string]interface{}{
		"user_ratings": 9.0,
		"genres":       []string{"Comedy"},
	})

	var body map[string]string
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	suite.Equal("Movie updated successfully", body["message"])
}

func (suite *MovieHandlerTestSuite) TestUpdateMovie_EscapedName() {
	suite.mockService.EXPECT().UpdateMovieByName("The Thing", gomock.Any()).Return(&service.MovieResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodPatch, "/movies/The%20Thing", map[string]interface{}{})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *MovieHandlerTestSuite) TestUpdateMovie_NotFound() {
	suite.mockService.EXPECT().UpdateMovieByName("Missing", gomock.Any()).Return(nil, apperrors.ErrMovieNotFound)

	w := suite.http.MakeRequest(http.MethodPatch, "/movies/Missing", map[string]interface{}{"user_ratings": 1.0})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Movie not found"}`, w.Body.String())
}

func (suite *MovieHandlerTestSuite) TestUpdateMovie_ValidationError() {
	suite.mockService.EXPECT().
		UpdateMovieByName("Heat", gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "must be at least 1 characters"))

	w := suite.http.MakeRequest(http.MethodPatch, "/movies/Heat", map[string]interface{}{"name": ""})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "name")
}

func (suite *MovieHandlerTestSuite) TestUpdateMovie_MalformedBody() {
	suite.mockService.EXPECT().UpdateMovieByName(gomock.Any(), gomock.Any()).Times(0)

	w := suite.http.MakeRawRequest(http.MethodPatch, "/movies/Heat", `{"genres": "Drama"}`)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

func (suite *MovieHandlerTestSuite) TestSearchMovies_Defaults() {
	suite.mockService.EXPECT().
		SearchMovies(&service.MovieSearchParams{Page: 1, PerPage: 10}).
		Return(&service.MovieSearchResponse{Movies: []service.MovieResponse{}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/movie", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{
		"movies": [],
		"total_pages": 0,
		"current_page": 0,
		"total_movies_matching are": 0
	}`, w.Body.String())
}

func (suite *MovieHandlerTestSuite) TestSearchMovies_Filters() {
	suite.mockService.EXPECT().
		SearchMovies(&service.MovieSearchParams{
			Page:       2,
			PerPage:    2,
			Actor:      "Al Pacino",
			Genre:      "Drama",
			UserRating: floatPtr(7.5),
		}).
		Return(&service.MovieSearchResponse{
			Movies:        []service.MovieResponse{{ID: 3, Name: "C"}, {ID: 4, Name: "D"}},
			TotalPages:    3,
			CurrentPage:   2,
			TotalMatching: 5,
		}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/movie?page=2&per_page=2&actor=Al%20Pacino&genre=Drama&user_rating=7.5", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	suite.Equal(float64(3), body["total_pages"])
	suite.Equal(float64(2), body["current_page"])
	suite.Equal(float64(5), body["total_movies_matching are"])
	suite.Len(body["movies"], 2)
}

func (suite *MovieHandlerTestSuite) TestSearchMovies_UnparseablePagingFallsBack() {
	suite.mockService.EXPECT().
		SearchMovies(&service.MovieSearchParams{Page: 1, PerPage: 10}).
		Return(&service.MovieSearchResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/movie?page=abc&per_page=-3", nil)

	testutils.AssertStatus(suite.T(), w, http.StatusOK)
}

func (suite *MovieHandlerTestSuite) TestSearchMovies_InvalidUserRating() {
	suite.mockService.EXPECT().SearchMovies(gomock.Any()).Times(0)

	w := suite.http.MakeRequest(http.MethodGet, "/movie?user_rating=great", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Invalid user_rating"}`, w.Body.String())
}

func (suite *MovieHandlerTestSuite) TestSearchMovies_EmptyFiltersIgnored() {
	suite.mockService.EXPECT().
		SearchMovies(&service.MovieSearchParams{Page: 1, PerPage: 10}).
		Return(&service.MovieSearchResponse{Movies: []service.MovieResponse{}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/movie?user_rating=&actor=&genre=", nil)

	testutils.AssertStatus(suite.T(), w, http.StatusOK)
}

func (suite *MovieHandlerTestSuite) TestSearchMovies_Error() {
	suite.mockService.EXPECT().SearchMovies(gomock.Any()).Return(nil, errors.New("boom"))

	w := suite.http.MakeRequest(http.MethodGet, "/movie", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to search movies")
}

func TestMovieHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MovieHandlerTestSuite))
}
