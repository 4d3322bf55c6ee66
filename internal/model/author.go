package model

import "time"

// Author is a catalog author. ID stays nil until the store assigns one.
type Author struct {
	ID       *int64
	Name     string
	Birthday time.Time
}

func (a *Author) EntityID() (int64, bool) {
	if a.ID == nil {
		return 0, false
	}
	return *a.ID, true
}

func (a *Author) AssignID(id int64) {
	a.ID = &id
}
