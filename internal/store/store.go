package store

import (
	"github.com/pkg/errors"
)

var (
	ErrKeyExists   = errors.New("key already exists")
	ErrKeyNotFound = errors.New("key not found")
)

const nilSlot = -1

type slot[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// Sequence is an insertion ordered collection of unique keys.
//
// Entries live in an arena and are linked by slot indices, so appending, removing the last
// entry and removing an arbitrary entry by key are all O(1). Freed slots are reused.
type Sequence[K comparable, V any] struct {
	slots []slot[K, V]
	index map[K]int
	free  []int
	head  int
	tail  int
}

// NewSequence creates an empty sequence.
func NewSequence[K comparable, V any]() *Sequence[K, V] {
	return &Sequence[K, V]{
		index: make(map[K]int),
		head:  nilSlot,
		tail:  nilSlot,
	}
}

func (s *Sequence[K, V]) alloc() int {
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]

		return idx
	}

	s.slots = append(s.slots, slot[K, V]{})

	return len(s.slots) - 1
}

// PushBack appends the entry at the tail. The sequence is left untouched if k is already present.
func (s *Sequence[K, V]) PushBack(k K, v V) error {
	if _, ok := s.index[k]; ok {
		return ErrKeyExists
	}

	idx := s.alloc()
	s.slots[idx] = slot[K, V]{
		key:   k,
		value: v,
		prev:  s.tail,
		next:  nilSlot,
	}

	if s.tail != nilSlot {
		s.slots[s.tail].next = idx
	} else {
		s.head = idx
	}

	s.tail = idx
	s.index[k] = idx

	return nil
}

func (s *Sequence[K, V]) unlink(idx int) V {
	sl := s.slots[idx]

	if sl.prev != nilSlot {
		s.slots[sl.prev].next = sl.next
	} else {
		s.head = sl.next
	}

	if sl.next != nilSlot {
		s.slots[sl.next].prev = sl.prev
	} else {
		s.tail = sl.prev
	}

	delete(s.index, sl.key)
	// drop references held by the slot so the value can be collected
	s.slots[idx] = slot[K, V]{prev: nilSlot, next: nilSlot}
	s.free = append(s.free, idx)

	return sl.value
}

// PopBack removes the most recently appended entry.
func (s *Sequence[K, V]) PopBack() (K, V, bool) {
	if s.tail == nilSlot {
		var (
			k K
			v V
		)

		return k, v, false
	}

	k := s.slots[s.tail].key
	v := s.unlink(s.tail)

	return k, v, true
}

// Remove removes the entry stored under k wherever it sits in the sequence.
func (s *Sequence[K, V]) Remove(k K) (V, error) {
	idx, ok := s.index[k]
	if !ok {
		var v V

		return v, ErrKeyNotFound
	}

	return s.unlink(idx), nil
}

// Get returns the value stored under k.
func (s *Sequence[K, V]) Get(k K) (V, bool) {
	idx, ok := s.index[k]
	if !ok {
		var v V

		return v, false
	}

	return s.slots[idx].value, true
}

func (s *Sequence[K, V]) Has(k K) bool {
	_, ok := s.index[k]

	return ok
}

// Len returns the number of live entries.
func (s *Sequence[K, V]) Len() int {
	return len(s.index)
}

// Each walks the sequence head to tail and stops as soon as fn returns false.
func (s *Sequence[K, V]) Each(fn func(k K, v V) bool) {
	for idx := s.head; idx != nilSlot; {
		sl := s.slots[idx]
		if !fn(sl.key, sl.value) {
			return
		}

		idx = sl.next
	}
}

// Keys returns the keys head to tail.
func (s *Sequence[K, V]) Keys() []K {
	keys := make([]K, 0, s.Len())
	s.Each(func(k K, _ V) bool {
		keys = append(keys, k)

		return true
	})

	return keys
}

// Reset releases every entry.
func (s *Sequence[K, V]) Reset() {
	s.slots = nil
	s.free = nil
	s.index = make(map[K]int)
	s.head = nilSlot
	s.tail = nilSlot
}
