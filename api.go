package bst

import (
	"cmp"
	"iter"
)

// Map is the operation set of an ordered map.
type Map[K, V any] interface {
	Insert(key K, value V) bool
	Lookup(key K) (*V, error)
	Get(key K) (V, bool)
	Delete(key K) (V, error)
	Size() int
	Height() int
	Clear()
	Begin() *Iterator[K, V]
	End() *Iterator[K, V]
	All() iter.Seq2[K, V]
	Keys() iter.Seq[K]
	String() string
}

var _ Map[int, string] = (*Tree[int, string])(nil)

type config struct {
	maxSize int
}

// Option configures a Tree.
type Option func(*config)

// WithMaxSize caps the number of entries a tree will hold. Insert reports
// false without touching the tree once the cap is reached. A negative n
// means no cap, which is the default.
func WithMaxSize(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = Unbounded
		}
		c.maxSize = n
	}
}

// New returns an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns an empty tree ordered by compare.
func NewFunc[K, V any](compare CompareFunc[K], opts ...Option) *Tree[K, V] {
	if compare == nil {
		panic("bst: nil compare func")
	}
	c := config{maxSize: Unbounded}
	for _, opt := range opts {
		opt(&c)
	}
	return &Tree[K, V]{
		cmp:     compare,
		maxSize: c.maxSize,
	}
}
