// Package ttable provides the bounded transposition table shared by
// every search strategy and the move-generation memo. The spec's
// table eviction is FIFO (oldest insertion first, §4.5), not LRU. This
// wrapper gets that out of hashicorp/golang-lru's simplelru.LRU by
// never calling Get: Lookup only ever Peeks (read without bumping
// recency), and Store mutates an already-present key's value in place
// through a stored pointer instead of re-adding it, so a transposition
// table's constant stream of re-stores on keys it has already seen
// never touches recency either. Only a genuinely new key reaches Add,
// which is what keeps eviction order tracking insertion order instead
// of last-write order.
package ttable

import "github.com/hashicorp/golang-lru/v2/simplelru"

// Table is a fixed-capacity map from a comparable key to a value,
// evicting the oldest-inserted entry once Size is exceeded.
type Table[K comparable, V any] struct {
	lru *simplelru.LRU[K, *V]
}

// New builds a Table holding at most size entries.
func New[K comparable, V any](size int) *Table[K, V] {
	l, _ := simplelru.NewLRU[K, *V](size, nil)
	return &Table[K, V]{lru: l}
}

// Lookup returns the stored value for key, if any, without affecting
// eviction order.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	p, ok := t.lru.Peek(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *p, true
}

// Store records val for key. An existing key is updated in place and
// keeps its original position in the eviction order; only a new key
// counts as an insertion and can evict the oldest entry.
func (t *Table[K, V]) Store(key K, val V) {
	if p, ok := t.lru.Peek(key); ok {
		*p = val
		return
	}
	t.lru.Add(key, &val)
}

// Len reports how many entries are currently stored.
func (t *Table[K, V]) Len() int { return t.lru.Len() }
