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

type AuthorService interface {
	GetByID(ctx context.Context, id int64) (dto.AuthorResponse, error)
	GetAll(ctx context.Context) ([]dto.AuthorResponse, error)
	Create(ctx context.Context, req *dto.CreateAuthorRequest) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

type authorService struct {
	repo   repository.AuthorRepository
	mapper *mapper.AuthorMapper
	rules  *validation.AuthorRules
}

var _ AuthorService = (*authorService)(nil)

func NewAuthorService(
	repo repository.AuthorRepository,
	authorMapper *mapper.AuthorMapper,
	rules *validation.AuthorRules,
) AuthorService {
	return &authorService{repo: repo, mapper: authorMapper, rules: rules}
}

func (s *authorService) GetByID(ctx context.Context, id int64) (dto.AuthorResponse, error) {
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.AuthorResponse{}, lookupError(err, "author", id)
	}
	return s.mapper.EntityToResponse(author), nil
}

func (s *authorService) GetAll(ctx context.Context) ([]dto.AuthorResponse, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return s.mapper.EntitiesToResponses(authors), nil
}

// Create validates req before anything is written and returns the new id.
func (s *authorService) Create(ctx context.Context, req *dto.CreateAuthorRequest) (int64, error) {
	if err := s.rules.ValidateCreate(ctx, req); err != nil {
		logRejected("author", err)
		return 0, err
	}

	saved, err := s.repo.Save(ctx, s.mapper.CreateRequestToEntity(req))
	if err != nil {
		return 0, fmt.Errorf("save author: %w", err)
	}

	id, _ := saved.EntityID()
	log.Debug().Int64("author_id", id).Str("name", saved.Name).Msg("Author created")
	return id, nil
}

// DeleteByID succeeds whether or not the author exists. Books keep the author
// they were written against.
func (s *authorService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	log.Debug().Int64("author_id", id).Msg("Author deleted")
	return nil
}

func lookupError(err error, kind string, id int64) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		log.Info().Int64("id", id).Str("kind", kind).Msg("Lookup missed")
		return fmt.Errorf("%s %d: %w", kind, id, model.ErrNotFound)
	}
	return fmt.Errorf("find %s %d: %w", kind, id, err)
}

func logRejected(kind string, err error) {
	var ruleErr *validation.RuleError
	if errors.As(err, &ruleErr) {
		log.Info().
			Str("kind", kind).
			Str("field", ruleErr.Field).
			Str("rule", ruleErr.Rule).
			Msg("Create request rejected")
	}
}
