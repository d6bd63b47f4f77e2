package dto

// CreateMovieRequest is the admin catalog-entry payload.
type CreateMovieRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Year        int      `json:"year" validate:"required,min=1900,max=2100"`
	Genres      []string `json:"genres"`
	PosterURL   string   `json:"posterUrl" validate:"omitempty,url"`
	TrailerURL  string   `json:"trailerUrl" validate:"omitempty,url"`
	Featured    bool     `json:"featured"`
	Status      string   `json:"status" validate:"omitempty,is-movie-status"`
}

// UpdateMovieRequest is the admin edit payload; nil fields are unchanged.
type UpdateMovieRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Year        *int     `json:"year" validate:"omitempty,min=1900,max=2100"`
	Genres      []string `json:"genres"`
	PosterURL   *string  `json:"posterUrl" validate:"omitempty,url"`
	TrailerURL  *string  `json:"trailerUrl" validate:"omitempty,url"`
	Featured    *bool    `json:"featured"`
	Status      *string  `json:"status" validate:"omitempty,is-movie-status"`
}
