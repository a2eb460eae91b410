// Package store provides the in-memory collections backing the mock domain
// service: id-keyed for O(1) lookup, listed in insertion order so the
// service can keep its newest-first conventions.
package store

// Ordered holds entities keyed by id. Prepend puts new entries at the front
// of the listing order; Replace swaps an entry in place without moving it.
type Ordered[T any] struct {
	order []string
	items map[string]T
	keyOf func(T) string
}

func NewOrdered[T any](keyOf func(T) string) *Ordered[T] {
	return &Ordered[T]{
		items: make(map[string]T),
		keyOf: keyOf,
	}
}

// NewOrderedFrom seeds the collection from a slice, preserving its order.
func NewOrderedFrom[T any](keyOf func(T) string, seed []T) *Ordered[T] {
	o := NewOrdered(keyOf)
	for _, item := range seed {
		o.Append(item)
	}
	return o
}

func (o *Ordered[T]) Len() int {
	return len(o.order)
}

func (o *Ordered[T]) Get(id string) (T, bool) {
	item, ok := o.items[id]
	return item, ok
}

// List returns the entries in listing order. The slice is fresh on every
// call; the entries themselves are shallow copies.
func (o *Ordered[T]) List() []T {
	out := make([]T, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.items[id])
	}
	return out
}

func (o *Ordered[T]) Append(item T) {
	id := o.keyOf(item)
	if _, exists := o.items[id]; !exists {
		o.order = append(o.order, id)
	}
	o.items[id] = item
}

func (o *Ordered[T]) Prepend(item T) {
	id := o.keyOf(item)
	if _, exists := o.items[id]; exists {
		o.items[id] = item
		return
	}
	o.order = append([]string{id}, o.order...)
	o.items[id] = item
}

// Replace updates an existing entry without changing its position.
// It reports false when the id is unknown.
func (o *Ordered[T]) Replace(item T) bool {
	id := o.keyOf(item)
	if _, exists := o.items[id]; !exists {
		return false
	}
	o.items[id] = item
	return true
}
