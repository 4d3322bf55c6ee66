package model

import "time"

// Book is a catalog book. Author is the author the book was last written
// against; deleting that author later does not touch the book.
type Book struct {
	ID          *int64
	Title       string
	ReleaseDate time.Time
	Description string
	Author      *Author
}

func (b *Book) EntityID() (int64, bool) {
	if b.ID == nil {
		return 0, false
	}
	return *b.ID, true
}

func (b *Book) AssignID(id int64) {
	b.ID = &id
}

// AuthorID returns the id of the referenced author, if any.
func (b *Book) AuthorID() (int64, bool) {
	if b.Author == nil {
		return 0, false
	}
	return b.Author.EntityID()
}
