package repositories

import (
	"studio_backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(db *gorm.DB, movie *models.Movie) error
	GetByID(db *gorm.DB, id string) (*models.Movie, error)
	List(db *gorm.DB, status string, featuredOnly bool) ([]models.Movie, error)
	Update(db *gorm.DB, movie *models.Movie) error
	Delete(db *gorm.DB, id string) error
}

type movieRepository struct{}

func NewMovieRepository() MovieRepository {
	return &movieRepository{}
}

func (r *movieRepository) Create(db *gorm.DB, movie *models.Movie) error {
	return db.Create(movie).Error
}

func (r *movieRepository) GetByID(db *gorm.DB, id string) (*models.Movie, error) {
	var movie models.Movie
	if err := db.Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) List(db *gorm.DB, status string, featuredOnly bool) ([]models.Movie, error) {
	query := db.Model(&models.Movie{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if featuredOnly {
		query = query.Where("featured = true")
	}

	var movies []models.Movie
	if err := query.Order("year DESC, title ASC").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) Update(db *gorm.DB, movie *models.Movie) error {
	return db.Save(movie).Error
}

func (r *movieRepository) Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Movie{}).Error
}
