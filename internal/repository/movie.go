package repository

import (
	"movie-catalog-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieFilter holds the optional equality filters of the catalog search.
// Zero values mean "no filter".
type MovieFilter struct {
	Actor      string
	Genre      string
	UserRating *float64
}

// apply adds the filter conditions to a query on the movies table
func (f MovieFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Genre != "" {
		db = db.Where(`EXISTS (SELECT 1 FROM movie_genre JOIN genres ON genres.id = movie_genre.genre_id
			WHERE movie_genre.movie_id = movies.id AND genres.name = ?)`, f.Genre)
	}
	if f.Actor != "" {
		db = db.Where(`EXISTS (SELECT 1 FROM movie_actor JOIN actors ON actors.id = movie_actor.actor_id
			WHERE movie_actor.movie_id = movies.id AND actors.name = ?)`, f.Actor)
	}
	if f.UserRating != nil {
		db = db.Where("movies.user_ratings = ?", *f.UserRating)
	}
	return db
}

// MovieRepository handles database operations for movies and their related rows
type MovieRepository struct {
	db *gorm.DB
}

// Ensure MovieRepository implements MovieRepositoryInterface
var _ MovieRepositoryInterface = (*MovieRepository)(nil)

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// withRelations preloads every association, each ordered by insertion
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Genres", orderByID("genres")).
		Preload("Actors", orderByID("actors")).
		Preload("Technicians", orderByID("technicians"))
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id ASC")
	}
}

// Create inserts the movie together with its (always new) related rows and
// the join rows, in gorm's default transaction
func (r *MovieRepository) Create(movie *models.Movie) error {
	return r.db.Create(movie).Error
}

// GetByID retrieves a movie with all its associations
func (r *MovieRepository) GetByID(id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := withRelations(r.db).First(&movie, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetByName retrieves the movie with the given exact name. First orders by
// primary key, so duplicate names resolve to the lowest id.
func (r *MovieRepository) GetByName(name string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetByNameAndYear retrieves the first movie matching name and year of release
func (r *MovieRepository) GetByNameAndYear(name string, year *int) (*models.Movie, error) {
	var movie models.Movie
	query := r.db.Where("name = ?", name)
	if year == nil {
		query = query.Where("year_of_release IS NULL")
	} else {
		query = query.Where("year_of_release = ?", *year)
	}
	if err := query.First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetAll retrieves every movie ordered by id
func (r *MovieRepository) GetAll() ([]models.Movie, error) {
	var movies []models.Movie
	if err := withRelations(r.db).Order("movies.id ASC").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// Search returns one page of movies matching filter plus the total match count
func (r *MovieRepository) Search(filter MovieFilter, limit, offset int) ([]models.Movie, int64, error) {
	var movies []models.Movie
	var total int64

	// Count total
	if err := filter.apply(r.db.Model(&models.Movie{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Fetch page
	query := withRelations(filter.apply(r.db.Model(&models.Movie{})))
	if err := query.Order("movies.id ASC").Limit(limit).Offset(offset).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// Update saves the scalar columns and replaces all three association sets
// with the ones on movie. Rows dropped from a set stay in their table; only
// the join rows go.
func (r *MovieRepository) Update(movie *models.Movie) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(movie).Error; err != nil {
			return err
		}
		if err := replaceAssociation(tx, movie, "Genres", &movie.Genres, len(movie.Genres)); err != nil {
			return err
		}
		if err := replaceAssociation(tx, movie, "Actors", &movie.Actors, len(movie.Actors)); err != nil {
			return err
		}
		return replaceAssociation(tx, movie, "Technicians", &movie.Technicians, len(movie.Technicians))
	})
}

func replaceAssociation(tx *gorm.DB, movie *models.Movie, name string, values interface{}, n int) error {
	association := tx.Model(movie).Association(name)
	if n == 0 {
		return association.Clear()
	}
	return association.Replace(values)
}
