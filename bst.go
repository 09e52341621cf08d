package bst

import (
	"errors"
)

const (
	// Unbounded disables the node budget.
	Unbounded = -1

	// initial capacity of an iterator stack, grown on demand
	iteratorStackHint = 16
)

var (
	ErrKeyNotFound       = errors.New("no such key exists in this tree")
	ErrIteratorExhausted = errors.New("iterator is past its end")
)

type (
	// CompareFunc returns a negative number when a < b, zero when a == b
	// and a positive number when a > b. It must define a strict total order.
	CompareFunc[K any] func(a, b K) int

	// Tree is an ordered map backed by an unbalanced binary search tree.
	// The zero value is not usable, use New or NewFunc.
	//
	// A Tree is not safe for concurrent use.
	Tree[K, V any] struct {
		root    *node[K, V]
		size    int
		maxSize int
		cmp     CompareFunc[K]
	}

	// Entry is the key/value payload of a node.
	Entry[K, V any] struct {
		Key   K
		Value V
	}

	node[K, V any] struct {
		Entry[K, V]

		left  *node[K, V]
		right *node[K, V]
	}

	// Iterator walks a tree in ascending key order. It holds the path from
	// the current node up to the nearest ancestor whose right subtree is
	// still pending.
	//
	// An iterator is invalid once the tree it came from is mutated by Insert,
	// Delete or Clear. Using it afterwards gives unspecified results.
	Iterator[K, V any] struct {
		stack []*node[K, V]
	}
)

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{Entry: Entry[K, V]{Key: key, Value: value}}
}
