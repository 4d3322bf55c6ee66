package repository

import (
	"context"
	"strings"

	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
	"gorm.io/gorm"
)

// GormAuthorRepository keeps authors in a gorm database, in practice an
// in-memory sqlite one.
type GormAuthorRepository struct {
	db *gorm.DB
}

var _ AuthorRepository = (*GormAuthorRepository)(nil)

func NewGormAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	var row authorRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "author", id)
	}
	return row.toModel(), nil
}

func (r *GormAuthorRepository) FindAll(ctx context.Context) ([]*model.Author, error) {
	var rows []authorRow
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	authors := make([]*model.Author, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, row.toModel())
	}
	return authors, nil
}

func (r *GormAuthorRepository) Save(ctx context.Context, author *model.Author) (*model.Author, error) {
	if author == nil {
		return nil, ErrNilEntity
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, ok := author.EntityID()
		if !ok {
			next, err := nextValue(tx, &authorRow{}, "id")
			if err != nil {
				return err
			}
			id = next
		}

		row := toAuthorRow(author)
		row.ID = id
		if err := upsert(tx, &authorRow{}, id, &row, func(seq int64) { row.Seq = seq }, map[string]any{
			"name":     row.Name,
			"birthday": row.Birthday,
		}); err != nil {
			return err
		}

		author.AssignID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

func (r *GormAuthorRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&authorRow{}, "id = ?", id).Error
}

func (r *GormAuthorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&authorRow{}).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&count).Error
	return count > 0, err
}

func (r *GormAuthorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&authorRow{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
