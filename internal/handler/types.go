package handler

import "github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"

type AuthorResponse struct {
	Data dto.AuthorResponse `json:"data"`
}

type ListAuthorsResponse struct {
	Data []dto.AuthorResponse `json:"data"`
}

type BookResponse struct {
	Data dto.BookResponse `json:"data"`
}

type ListBooksResponse struct {
	Data []dto.BookResponse `json:"data"`
}

type CreatedID struct {
	ID int64 `json:"id" example:"0"`
}

type CreatedResponse struct {
	Data CreatedID `json:"data"`
}

type ChangeAuthorQuery struct {
	AuthorID *int64 `form:"author_id" binding:"required,min=0"`
}
