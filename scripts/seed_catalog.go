package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"movie-catalog-backend/internal/config"
	"movie-catalog-backend/internal/database"
	apperrors "movie-catalog-backend/internal/errors"
	"movie-catalog-backend/internal/repository"
	"movie-catalog-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MovieData mirrors one entry of the catalog YAML file
type MovieData struct {
	Name          string   `yaml:"name"`
	YearOfRelease *int     `yaml:"year_of_release"`
	UserRatings   *float64 `yaml:"user_ratings"`
	Genres        []string `yaml:"genres,omitempty"`
	Actors        []string `yaml:"actors,omitempty"`
	Technicians   []string `yaml:"technicians,omitempty"`
}

// MoviesFile is the top-level shape of the catalog YAML file
type MoviesFile struct {
	Movies []MovieData `yaml:"movies"`
}

func main() {
	file := flag.String("file", "scripts/data/movies.yaml", "catalog YAML file to load")
	flag.Parse()

	log.Println("🚀 Loading movie catalog from", *file)

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	movies, err := loadMovies(*file)
	if err != nil {
		log.Fatalf("Failed to load movies from %s: %v", *file, err)
	}

	svc := service.NewMovieService(repository.NewMovieRepository(db), service.NewValidator())
	created, skipped, err := seed(svc, movies)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("📋 Movies: %d created, %d skipped, %d total", created, skipped, len(movies))
	log.Println("✅ Movie catalog loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadMovies(path string) ([]MovieData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file MoviesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Movies, nil
}

// seed creates every movie through the service. Duplicates and invalid
// entries are skipped with a warning; any other failure stops the run.
func seed(svc service.MovieServiceInterface, movies []MovieData) (created, skipped int, err error) {
	for _, m := range movies {
		_, err := svc.CreateMovie(&service.CreateMovieRequest{
			Name:          m.Name,
			YearOfRelease: m.YearOfRelease,
			UserRatings:   m.UserRatings,
			Genres:        m.Genres,
			Actors:        m.Actors,
			Technicians:   m.Technicians,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrMovieExists), apperrors.IsValidation(err):
			logrus.WithError(err).WithField("name", m.Name).Warn("skipping movie")
			skipped++
		default:
			return created, skipped, fmt.Errorf("create %q: %w", m.Name, err)
		}
	}
	return created, skipped, nil
}
