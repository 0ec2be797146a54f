package repository

import (
	"slices"
	"sync"

	"github.com/limbo/studytrack/pkg/entity"
)

// Store owns every in-memory collection. Nothing in it outlives the process.
type Store struct {
	mu       sync.RWMutex
	users    *table[entity.User]
	subjects *table[entity.Subject]
	sessions *table[entity.Session]
	goals    *table[entity.Goal]
}

func NewStore() *Store {
	return &Store{
		users:    newTable[entity.User](),
		subjects: newTable[entity.Subject](),
		sessions: newTable[entity.Session](),
		goals:    newTable[entity.Goal](),
	}
}

// table keeps rows by id plus their insertion order. Ids start at 1 and never repeat.
type table[T any] struct {
	nextID int
	order  []int
	rows   map[int]T
}

func newTable[T any]() *table[T] {
	return &table[T]{
		nextID: 1,
		rows:   make(map[int]T),
	}
}

func (t *table[T]) insert(build func(id int) T) int {
	id := t.nextID
	t.nextID++
	t.rows[id] = build(id)
	t.order = append(t.order, id)
	return id
}

func (t *table[T]) get(id int) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) replace(id int, row T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(id int) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	if i := slices.Index(t.order, id); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	return true
}

func (t *table[T]) each(f func(row T)) {
	for _, id := range t.order {
		f(t.rows[id])
	}
}
