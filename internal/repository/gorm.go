package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
	"gorm.io/gorm"
)

// Rows carry an explicit id (never auto-incremented, 0 is a valid id) and a
// seq column that records first-insert order.

type authorRow struct {
	ID       int64 `gorm:"primaryKey;autoIncrement:false"`
	Seq      int64 `gorm:"not null;index"`
	Name     string
	Birthday time.Time
}

func (authorRow) TableName() string { return "authors" }

// authorSnapshot is the author a book row was written against.
type authorSnapshot struct {
	AuthorID       int64
	AuthorName     string
	AuthorBirthday time.Time
}

type bookRow struct {
	ID          int64 `gorm:"primaryKey;autoIncrement:false"`
	Seq         int64 `gorm:"not null;index"`
	Title       string
	ReleaseDate time.Time
	Description string
	Author      authorSnapshot `gorm:"embedded"`
}

func (bookRow) TableName() string { return "books" }

// Migrate creates the tables used by the gorm repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&authorRow{}, &bookRow{})
}

func toAuthorRow(a *model.Author) authorRow {
	id, _ := a.EntityID()
	return authorRow{ID: id, Name: a.Name, Birthday: a.Birthday}
}

func (r authorRow) toModel() *model.Author {
	id := r.ID
	return &model.Author{ID: &id, Name: r.Name, Birthday: r.Birthday.UTC()}
}

func toBookRow(b *model.Book) bookRow {
	id, _ := b.EntityID()
	row := bookRow{
		ID:          id,
		Title:       b.Title,
		ReleaseDate: b.ReleaseDate,
		Description: b.Description,
	}
	if b.Author != nil {
		authorID, _ := b.Author.EntityID()
		row.Author = authorSnapshot{
			AuthorID:       authorID,
			AuthorName:     b.Author.Name,
			AuthorBirthday: b.Author.Birthday,
		}
	}
	return row
}

func (r bookRow) toModel() *model.Book {
	id := r.ID
	authorID := r.Author.AuthorID
	return &model.Book{
		ID:          &id,
		Title:       r.Title,
		ReleaseDate: r.ReleaseDate.UTC(),
		Description: r.Description,
		Author: &model.Author{
			ID:       &authorID,
			Name:     r.Author.AuthorName,
			Birthday: r.Author.AuthorBirthday.UTC(),
		},
	}
}

// nextValue returns max(column)+1 over the table, or 0 when it is empty.
func nextValue(tx *gorm.DB, table any, column string) (int64, error) {
	var highest sql.NullInt64
	if err := tx.Model(table).Select(fmt.Sprintf("MAX(%s)", column)).Scan(&highest).Error; err != nil {
		return 0, err
	}
	if !highest.Valid {
		return 0, nil
	}
	return highest.Int64 + 1, nil
}

// upsert inserts row under id, or overwrites its columns in place so the
// stored seq is kept.
func upsert(tx *gorm.DB, table any, id int64, row any, setSeq func(int64), columns map[string]any) error {
	var count int64
	if err := tx.Model(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return tx.Model(table).Where("id = ?", id).Updates(columns).Error
	}

	seq, err := nextValue(tx, table, "seq")
	if err != nil {
		return err
	}
	setSeq(seq)
	return tx.Create(row).Error
}

func notFound(err error, kind string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, ErrRecordNotFound)
	}
	return err
}

// GormPinger reports readiness of the database behind db.
type GormPinger struct {
	db *gorm.DB
}

func NewGormPinger(db *gorm.DB) *GormPinger {
	return &GormPinger{db: db}
}

func (p *GormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
