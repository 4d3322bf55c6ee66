package repository

import (
	"errors"
	"slices"
)

var (
	// ErrNilEntity is returned by Save when handed a nil entity.
	ErrNilEntity = errors.New("entity must not be nil")

	ErrRecordNotFound = errors.New("record not found")
)

// Entity is implemented by the pointer types the store keeps.
type Entity interface {
	EntityID() (int64, bool)
	AssignID(id int64)
}

// Store is a keyed in-memory collection of one entity type that iterates in
// insertion order. It holds no lock; callers serialise access.
type Store[E any, P interface {
	*E
	Entity
}] struct {
	items map[int64]P
	order []int64
}

func NewStore[E any, P interface {
	*E
	Entity
}]() *Store[E, P] {
	return &Store[E, P]{items: make(map[int64]P)}
}

func (s *Store[E, P]) FindByID(id int64) (P, bool) {
	entity, ok := s.items[id]
	return entity, ok
}

// FindAll returns a fresh slice on every call; reordering or truncating it
// does not affect the store.
func (s *Store[E, P]) FindAll() []P {
	all := make([]P, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.items[id])
	}
	return all
}

// Save assigns max(id)+1 (0 for an empty store) to entities without an id,
// then inserts or overwrites by id. An overwrite keeps the entity's original
// position in iteration order.
func (s *Store[E, P]) Save(entity P) (P, error) {
	if entity == nil {
		return nil, ErrNilEntity
	}

	id, ok := entity.EntityID()
	if !ok {
		id = s.nextID()
		entity.AssignID(id)
	}

	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = entity

	return entity, nil
}

func (s *Store[E, P]) DeleteByID(id int64) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	s.order = slices.DeleteFunc(s.order, func(stored int64) bool {
		return stored == id
	})
}

func (s *Store[E, P]) ExistsByID(id int64) bool {
	_, ok := s.items[id]
	return ok
}

// Any reports whether some stored entity satisfies match.
func (s *Store[E, P]) Any(match func(P) bool) bool {
	for _, id := range s.order {
		if match(s.items[id]) {
			return true
		}
	}
	return false
}

func (s *Store[E, P]) Len() int {
	return len(s.items)
}

func (s *Store[E, P]) nextID() int64 {
	if len(s.items) == 0 {
		return 0
	}

	first := true
	var highest int64
	for id := range s.items {
		if first || id > highest {
			highest = id
			first = false
		}
	}
	return highest + 1
}
