package bst

import (
	"fmt"
	"iter"
)

func (t *Tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
// No rebalancing is ever done, so inserting keys in ascending order gives
// Height() == Size().
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

// Insert adds key with value. It returns false and leaves the tree as it was
// if key is already present or the tree has reached its size cap; an
// existing value is never overwritten.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	if t.maxSize != Unbounded && t.size >= t.maxSize {
		return false
	}
	if !attach(&t.root, newNode(key, value), t.cmp) {
		return false
	}
	t.size++
	return true
}

// Lookup returns a pointer to the value stored under key. Writing through
// the pointer updates the entry in place. The pointer should not be used
// after the next Insert, Delete or Clear.
func (t *Tree[K, V]) Lookup(key K) (*V, error) {
	n := *descend(&t.root, key, t.cmp)
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return &n.Value, nil
}

func (t *Tree[K, V]) Get(key K) (V, bool) {
	v, err := t.Lookup(key)
	if err != nil {
		var zero V
		return zero, false
	}
	return *v, true
}

// Delete removes key and returns its value.
//
// The removed node's right subtree, if any, is attached whole beneath its
// left subtree by the same descent Insert uses, and the result takes the
// removed node's place. With no right subtree the left subtree takes its
// place directly. This is not successor promotion and can leave the tree
// less balanced than before.
func (t *Tree[K, V]) Delete(key K) (V, error) {
	pos := descend(&t.root, key, t.cmp)
	n := *pos
	if n == nil {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	value := n.Value
	if n.right != nil {
		// every key on the right is greater than every key on the left,
		// so this cannot collide
		attach(&n.left, n.right, t.cmp)
	}
	replaceRef(pos, n.left)

	*n = node[K, V]{}
	t.size--
	return value, nil
}

// Clear removes every entry.
func (t *Tree[K, V]) Clear() {
	teardown(t.root)
	t.root = nil
	t.size = 0
}

// Begin returns an iterator positioned at the smallest key, or a
// past-the-end iterator for an empty tree.
func (t *Tree[K, V]) Begin() *Iterator[K, V] {
	return newIterator(t.root)
}

// End returns a past-the-end iterator. It compares equal to every other
// past-the-end iterator, whichever tree that came from.
func (t *Tree[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{}
}

// All yields every entry in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Begin(); it.Valid(); it.advance() {
			n := it.top()
			if !yield(n.Key, n.Value) {
				return
			}
		}
	}
}

// Keys yields every key in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}
