package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
)

type BookRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	FindAll(ctx context.Context) ([]*model.Book, error)
	Save(ctx context.Context, book *model.Book) (*model.Book, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

// MemoryBookRepository keeps books in a Store.
type MemoryBookRepository struct {
	store *Store[model.Book, *model.Book]
}

var _ BookRepository = (*MemoryBookRepository)(nil)

func NewMemoryBookRepository() *MemoryBookRepository {
	return &MemoryBookRepository{store: NewStore[model.Book]()}
}

func (r *MemoryBookRepository) FindByID(_ context.Context, id int64) (*model.Book, error) {
	book, ok := r.store.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("book %d: %w", id, ErrRecordNotFound)
	}
	return book, nil
}

func (r *MemoryBookRepository) FindAll(_ context.Context) ([]*model.Book, error) {
	return r.store.FindAll(), nil
}

func (r *MemoryBookRepository) Save(_ context.Context, book *model.Book) (*model.Book, error) {
	return r.store.Save(book)
}

func (r *MemoryBookRepository) DeleteByID(_ context.Context, id int64) error {
	r.store.DeleteByID(id)
	return nil
}

func (r *MemoryBookRepository) ExistsByTitle(_ context.Context, title string) (bool, error) {
	title = strings.TrimSpace(title)
	return r.store.Any(func(b *model.Book) bool {
		return b.Title == title
	}), nil
}

func (r *MemoryBookRepository) Count() int {
	return r.store.Len()
}
