package dto

import "github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"

type CreateAuthorRequest struct {
	Name     string      `json:"name" example:"Leo Tolstoy"`
	Birthday *model.Date `json:"birthday" swaggertype:"string" example:"1828-09-09"`
}

type AuthorResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	BirthDate model.Date `json:"birth_date" swaggertype:"string" example:"1828-09-09"`
}
