package services

import (
	"studio_backend/internal/models"
	"studio_backend/internal/repositories"
	"studio_backend/internal/services/dto"
	"studio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MovieService manages the public film catalog.
type MovieService interface {
	ListMovies(db *gorm.DB, status string, featuredOnly bool) ([]models.Movie, error)
	ListPublished(db *gorm.DB, featuredOnly bool) ([]models.Movie, error)
	GetMovie(db *gorm.DB, id string) (*models.Movie, error)
	CreateMovie(db *gorm.DB, req *dto.CreateMovieRequest) (*models.Movie, error)
	UpdateMovie(db *gorm.DB, id string, req *dto.UpdateMovieRequest) (*models.Movie, error)
	DeleteMovie(db *gorm.DB, id string) error
}

type movieService struct {
	movies repositories.MovieRepository
}

func NewMovieService(movies repositories.MovieRepository) MovieService {
	return &movieService{movies: movies}
}

func (s *movieService) ListMovies(db *gorm.DB, status string, featuredOnly bool) ([]models.Movie, error) {
	movies, err := s.movies.List(db, status, featuredOnly)
	if err != nil {
		return nil, apperrors.NewPersistenceError("movie", err)
	}
	return movies, nil
}

func (s *movieService) ListPublished(db *gorm.DB, featuredOnly bool) ([]models.Movie, error) {
	return s.ListMovies(db, string(models.MovieStatusPublished), featuredOnly)
}

func (s *movieService) GetMovie(db *gorm.DB, id string) (*models.Movie, error) {
	movie, err := s.movies.GetByID(db, id)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("movie", "Movie not found")
		}
		return nil, apperrors.NewPersistenceError("movie", err)
	}
	return movie, nil
}

func (s *movieService) CreateMovie(db *gorm.DB, req *dto.CreateMovieRequest) (*models.Movie, error) {
	status := req.Status
	if status == "" {
		status = string(models.MovieStatusDraft)
	}

	movie := &models.Movie{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Genres:      mustJSONList(req.Genres),
		Featured:    req.Featured,
		Status:      status,
	}
	if req.PosterURL != "" {
		movie.PosterURL = &req.PosterURL
	}
	if req.TrailerURL != "" {
		movie.TrailerURL = &req.TrailerURL
	}

	if err := s.movies.Create(db, movie); err != nil {
		return nil, apperrors.NewPersistenceError("movie", err)
	}
	return movie, nil
}

func (s *movieService) UpdateMovie(db *gorm.DB, id string, req *dto.UpdateMovieRequest) (*models.Movie, error) {
	movie, err := s.GetMovie(db, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Year != nil {
		movie.Year = *req.Year
	}
	if req.Genres != nil {
		movie.Genres = mustJSONList(req.Genres)
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	if req.TrailerURL != nil {
		movie.TrailerURL = req.TrailerURL
	}
	if req.Featured != nil {
		movie.Featured = *req.Featured
	}
	if req.Status != nil {
		movie.Status = *req.Status
	}

	if err := s.movies.Update(db, movie); err != nil {
		return nil, apperrors.NewPersistenceError("movie", err)
	}
	return movie, nil
}

func (s *movieService) DeleteMovie(db *gorm.DB, id string) error {
	if _, err := s.GetMovie(db, id); err != nil {
		return err
	}
	if err := s.movies.Delete(db, id); err != nil {
		return apperrors.NewPersistenceError("movie", err)
	}
	return nil
}
