package services

import (
	"slices"

	"github.com/grantreports/core/internal/domain/entities"
)

type moveDirection int

const (
	moveUp moveDirection = iota
	moveDown
)

func reportIDOf(r *entities.Report) string     { return r.ID }
func sectionIDOf(s *entities.Section) string   { return s.ID }
func taskIDOf(t *entities.Task) string         { return t.ID }
func questionIDOf(q *entities.Question) string { return q.ID }

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool {
		return idOf(item) == id
	})
}

// swapNeighbour swaps the item with the given ID and its neighbour in dir.
// It never wraps: the first item cannot move up and the last cannot move down.
func swapNeighbour[T any](items []T, id string, idOf func(T) string, dir moveDirection) bool {
	if id == "" {
		return false
	}

	i := indexByID(items, id, idOf)
	if i == -1 {
		return false
	}

	j := i - 1
	if dir == moveDown {
		j = i + 1
	}
	if j < 0 || j >= len(items) {
		return false
	}

	items[i], items[j] = items[j], items[i]
	return true
}
