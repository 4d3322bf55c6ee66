package mapper

import (
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
)

type AuthorMapper struct{}

func NewAuthorMapper() *AuthorMapper {
	return &AuthorMapper{}
}

func (m *AuthorMapper) EntityToResponse(a *model.Author) dto.AuthorResponse {
	id, _ := a.EntityID()
	return dto.AuthorResponse{
		ID:        id,
		Name:      a.Name,
		BirthDate: model.DateOf(a.Birthday),
	}
}

func (m *AuthorMapper) EntitiesToResponses(authors []*model.Author) []dto.AuthorResponse {
	out := make([]dto.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, m.EntityToResponse(a))
	}
	return out
}

// CreateRequestToEntity returns nil for a nil request. The entity has no id.
func (m *AuthorMapper) CreateRequestToEntity(req *dto.CreateAuthorRequest) *model.Author {
	if req == nil {
		return nil
	}
	return &model.Author{
		Name:     req.Name,
		Birthday: model.CalendarDay(req.Birthday.TimeOrZero()),
	}
}
