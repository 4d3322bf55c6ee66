package repository

import (
	"context"
	"strings"

	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
	"gorm.io/gorm"
)

// GormBookRepository keeps books in a gorm database. Each row carries a copy
// of its author, so deleting the author leaves stored books untouched.
type GormBookRepository struct {
	db *gorm.DB
}

var _ BookRepository = (*GormBookRepository)(nil)

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var row bookRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "book", id)
	}
	return row.toModel(), nil
}

func (r *GormBookRepository) FindAll(ctx context.Context) ([]*model.Book, error) {
	var rows []bookRow
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	books := make([]*model.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toModel())
	}
	return books, nil
}

func (r *GormBookRepository) Save(ctx context.Context, book *model.Book) (*model.Book, error) {
	if book == nil {
		return nil, ErrNilEntity
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, ok := book.EntityID()
		if !ok {
			next, err := nextValue(tx, &bookRow{}, "id")
			if err != nil {
				return err
			}
			id = next
		}

		row := toBookRow(book)
		row.ID = id
		if err := upsert(tx, &bookRow{}, id, &row, func(seq int64) { row.Seq = seq }, map[string]any{
			"title":           row.Title,
			"release_date":    row.ReleaseDate,
			"description":     row.Description,
			"author_id":       row.Author.AuthorID,
			"author_name":     row.Author.AuthorName,
			"author_birthday": row.Author.AuthorBirthday,
		}); err != nil {
			return err
		}

		book.AssignID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (r *GormBookRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookRow{}, "id = ?", id).Error
}

func (r *GormBookRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&bookRow{}).
		Where("title = ?", strings.TrimSpace(title)).
		Count(&count).Error
	return count > 0, err
}
