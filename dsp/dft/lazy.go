package dft

import "sync"

// lazy holds a value that is computed once on first access.
type lazy[T any] struct {
	once sync.Once
	val  T
}

func (l *lazy[T]) get(compute func() T) T {
	l.once.Do(func() { l.val = compute() })
	return l.val
}
