package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/dto"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/mapper"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/validation"
)

type BookService interface {
	GetByID(ctx context.Context, id int64) (dto.BookResponse, error)
	GetAll(ctx context.Context) ([]dto.BookResponse, error)
	Create(ctx context.Context, req *dto.CreateBookRequest) (int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateBookRequest) (dto.BookResponse, error)
	ChangeAuthor(ctx context.Context, bookID, authorID int64) (dto.BookResponse, error)
	DeleteByID(ctx context.Context, id int64) error
}

type bookService struct {
	books   repository.BookRepository
	authors repository.AuthorRepository
	mapper  *mapper.BookMapper
	rules   *validation.BookRules
}

var _ BookService = (*bookService)(nil)

func NewBookService(
	books repository.BookRepository,
	authors repository.AuthorRepository,
	bookMapper *mapper.BookMapper,
	rules *validation.BookRules,
) BookService {
	return &bookService{books: books, authors: authors, mapper: bookMapper, rules: rules}
}

func (s *bookService) GetByID(ctx context.Context, id int64) (dto.BookResponse, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return dto.BookResponse{}, lookupError(err, "book", id)
	}
	return s.mapper.EntityToResponse(book), nil
}

func (s *bookService) GetAll(ctx context.Context) ([]dto.BookResponse, error) {
	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return s.mapper.EntitiesToResponses(books), nil
}

// Create validates req, resolves its author and stores the book. Nothing is
// written when either step fails.
func (s *bookService) Create(ctx context.Context, req *dto.CreateBookRequest) (int64, error) {
	if err := s.rules.ValidateCreate(ctx, req); err != nil {
		logRejected("book", err)
		return 0, err
	}

	book, err := s.mapper.CreateRequestToEntity(ctx, req)
	if err != nil {
		return 0, err
	}

	saved, err := s.books.Save(ctx, book)
	if err != nil {
		return 0, fmt.Errorf("save book: %w", err)
	}

	id, _ := saved.EntityID()
	log.Debug().Int64("book_id", id).Str("title", saved.Title).Msg("Book created")
	return id, nil
}

// Update overwrites every field of an existing book. Title uniqueness is not
// checked again.
func (s *bookService) Update(ctx context.Context, id int64, req *dto.UpdateBookRequest) (dto.BookResponse, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return dto.BookResponse{}, lookupError(err, "book", id)
	}

	if err := s.mapper.UpdateEntityFromRequest(ctx, book, req); err != nil {
		return dto.BookResponse{}, err
	}

	saved, err := s.books.Save(ctx, book)
	if err != nil {
		return dto.BookResponse{}, fmt.Errorf("save book %d: %w", id, err)
	}

	log.Debug().Int64("book_id", id).Msg("Book updated")
	return s.mapper.EntityToResponse(saved), nil
}

// ChangeAuthor points the book at another author. Asking for the current
// author is a no-op that neither looks the author up nor saves.
func (s *bookService) ChangeAuthor(ctx context.Context, bookID, authorID int64) (dto.BookResponse, error) {
	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		return dto.BookResponse{}, lookupError(err, "book", bookID)
	}

	if current, ok := book.AuthorID(); ok && current == authorID {
		return s.mapper.EntityToResponse(book), nil
	}

	author, err := s.authors.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return dto.BookResponse{}, fmt.Errorf("%w: author %d", model.ErrReferenceNotFound, authorID)
		}
		return dto.BookResponse{}, fmt.Errorf("find author %d: %w", authorID, err)
	}

	book.Author = author
	saved, err := s.books.Save(ctx, book)
	if err != nil {
		return dto.BookResponse{}, fmt.Errorf("save book %d: %w", bookID, err)
	}

	log.Debug().Int64("book_id", bookID).Int64("author_id", authorID).Msg("Book author changed")
	return s.mapper.EntityToResponse(saved), nil
}

func (s *bookService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.books.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	log.Debug().Int64("book_id", id).Msg("Book deleted")
	return nil
}
