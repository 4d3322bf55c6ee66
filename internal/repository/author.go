package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
)

type AuthorRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Author, error)
	FindAll(ctx context.Context) ([]*model.Author, error)
	Save(ctx context.Context, author *model.Author) (*model.Author, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// MemoryAuthorRepository keeps authors in a Store.
type MemoryAuthorRepository struct {
	store *Store[model.Author, *model.Author]
}

var _ AuthorRepository = (*MemoryAuthorRepository)(nil)

func NewMemoryAuthorRepository() *MemoryAuthorRepository {
	return &MemoryAuthorRepository{store: NewStore[model.Author]()}
}

func (r *MemoryAuthorRepository) FindByID(_ context.Context, id int64) (*model.Author, error) {
	author, ok := r.store.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("author %d: %w", id, ErrRecordNotFound)
	}
	return author, nil
}

func (r *MemoryAuthorRepository) FindAll(_ context.Context) ([]*model.Author, error) {
	return r.store.FindAll(), nil
}

func (r *MemoryAuthorRepository) Save(_ context.Context, author *model.Author) (*model.Author, error) {
	return r.store.Save(author)
}

func (r *MemoryAuthorRepository) DeleteByID(_ context.Context, id int64) error {
	r.store.DeleteByID(id)
	return nil
}

// ExistsByName trims the query, not the stored names.
func (r *MemoryAuthorRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	return r.store.Any(func(a *model.Author) bool {
		return a.Name == name
	}), nil
}

func (r *MemoryAuthorRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	return r.store.ExistsByID(id), nil
}

func (r *MemoryAuthorRepository) Count() int {
	return r.store.Len()
}
