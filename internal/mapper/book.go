package mapper

import (
	"context"
	"errors"
	"fmt"

	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/repository"
)

// BookMapper converts books and resolves their author reference through the
// author repository.
type BookMapper struct {
	authors      repository.AuthorRepository
	authorMapper *AuthorMapper
}

func NewBookMapper(authors repository.AuthorRepository, authorMapper *AuthorMapper) *BookMapper {
	if authorMapper == nil {
		authorMapper = NewAuthorMapper()
	}
	return &BookMapper{authors: authors, authorMapper: authorMapper}
}

func (m *BookMapper) EntityToResponse(b *model.Book) dto.BookResponse {
	id, _ := b.EntityID()
	resp := dto.BookResponse{
		ID:          id,
		Title:       b.Title,
		ReleaseDate: model.DateOf(b.ReleaseDate),
		Description: b.Description,
	}
	if b.Author != nil {
		resp.Author = m.authorMapper.EntityToResponse(b.Author)
	}
	return resp
}

func (m *BookMapper) EntitiesToResponses(books []*model.Book) []dto.BookResponse {
	out := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, m.EntityToResponse(b))
	}
	return out
}

// CreateRequestToEntity builds an unsaved book. req must not be nil.
func (m *BookMapper) CreateRequestToEntity(ctx context.Context, req *dto.CreateBookRequest) (*model.Book, error) {
	author, err := m.resolveAuthor(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	return &model.Book{
		Title:       req.Title,
		ReleaseDate: model.CalendarDay(req.ReleaseDate.TimeOrZero()),
		Description: req.Description,
		Author:      author,
	}, nil
}

// UpdateEntityFromRequest overwrites book's fields in place and re-resolves
// its author. On error book is left untouched.
func (m *BookMapper) UpdateEntityFromRequest(ctx context.Context, book *model.Book, req *dto.UpdateBookRequest) error {
	author, err := m.resolveAuthor(ctx, req.AuthorID)
	if err != nil {
		return err
	}

	book.Title = req.Title
	book.ReleaseDate = model.CalendarDay(req.ReleaseDate.TimeOrZero())
	book.Description = req.Description
	book.Author = author
	return nil
}

func (m *BookMapper) resolveAuthor(ctx context.Context, id *int64) (*model.Author, error) {
	if id == nil {
		return nil, fmt.Errorf("%w: author id is missing", model.ErrReferenceNotFound)
	}

	author, err := m.authors.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: author %d", model.ErrReferenceNotFound, *id)
		}
		return nil, fmt.Errorf("resolve author %d: %w", *id, err)
	}
	return author, nil
}
