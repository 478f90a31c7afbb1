package managers

import (
	"errors"
	"strings"
)

var (
	// ErrNilEntity rejects adding a nil entity to a manager.
	ErrNilEntity = errors.New("cannot add nil entity")

	// ErrDuplicateID rejects adding an entity whose id is already taken.
	ErrDuplicateID = errors.New("duplicate id")
)

type entity interface {
	ID() string
}

func findByID[T entity](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.ID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func removeByID[T entity](items []T, id string) ([]T, bool) {
	for i, it := range items {
		if it.ID() == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
