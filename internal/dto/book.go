package dto

import "github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"

type CreateBookRequest struct {
	Title       string      `json:"title" example:"War and Peace"`
	ReleaseDate *model.Date `json:"release_date" swaggertype:"string" example:"1869-05-23"`
	Description string      `json:"description" binding:"omitempty,max=2000"`
	AuthorID    *int64      `json:"author_id" example:"0"`
}

// UpdateBookRequest replaces every mutable field of a book. Title uniqueness
// is not re-checked.
type UpdateBookRequest struct {
	Title       string      `json:"title" example:"War and Peace"`
	ReleaseDate *model.Date `json:"release_date" swaggertype:"string" example:"1869-05-23"`
	Description string      `json:"description" binding:"omitempty,max=2000"`
	AuthorID    *int64      `json:"author_id" example:"0"`
}

type BookResponse struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	ReleaseDate model.Date     `json:"release_date" swaggertype:"string" example:"1869-05-23"`
	Description string         `json:"description"`
	Author      AuthorResponse `json:"author"`
}
