package models

import (
	"gorm.io/datatypes"
)

// Movie is a catalog entry; only published movies appear on the public site.
type Movie struct {
	BaseModel
	Title       string         `json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Year        int            `json:"year"`
	Genres      datatypes.JSON `gorm:"type:jsonb" json:"genres"`
	PosterURL   *string        `json:"posterUrl,omitempty"`
	TrailerURL  *string        `json:"trailerUrl,omitempty"`
	Featured    bool           `gorm:"default:false" json:"featured"`
	Status      string         `gorm:"default:'draft';index" json:"status"`
}

func (Movie) TableName() string {
	return "movies"
}
