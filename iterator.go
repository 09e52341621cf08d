package bst

func newIterator[K, V any](root *node[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{}
	if root != nil {
		it.stack = pushLeft(make([]*node[K, V], 0, iteratorStackHint), root)
	}
	return it
}

// Valid reports whether the iterator is positioned on an entry.
func (it *Iterator[K, V]) Valid() bool {
	return it != nil && len(it.stack) != 0
}

// Entry returns the current key/value pair.
func (it *Iterator[K, V]) Entry() (Entry[K, V], error) {
	if !it.Valid() {
		return Entry[K, V]{}, ErrIteratorExhausted
	}
	return it.top().Entry, nil
}

func (it *Iterator[K, V]) Key() (K, error) {
	e, err := it.Entry()
	return e.Key, err
}

func (it *Iterator[K, V]) Value() (V, error) {
	e, err := it.Entry()
	return e.Value, err
}

// Next moves to the next larger key. Moving past the largest key leaves the
// iterator past-the-end; calling Next there returns ErrIteratorExhausted.
func (it *Iterator[K, V]) Next() error {
	if !it.Valid() {
		return ErrIteratorExhausted
	}
	it.advance()
	return nil
}

// Equal reports whether both iterators hold the same pending path of nodes.
// Two past-the-end iterators are always equal.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	var a, b []*node[K, V]
	if it != nil {
		a = it.stack
	}
	if other != nil {
		b = other.stack
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an iterator at the same position that advances
// independently of it.
func (it *Iterator[K, V]) Clone() *Iterator[K, V] {
	if !it.Valid() {
		return &Iterator[K, V]{}
	}
	stack := make([]*node[K, V], len(it.stack), max(cap(it.stack), iteratorStackHint))
	copy(stack, it.stack)
	return &Iterator[K, V]{stack: stack}
}

func (it *Iterator[K, V]) top() *node[K, V] {
	return it.stack[len(it.stack)-1]
}

// advance pops the current node and, if it has a right child, pushes the
// left spine of that child. The stack must not be empty.
func (it *Iterator[K, V]) advance() {
	cur := it.top()
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	if cur.right != nil {
		it.stack = pushLeft(it.stack, cur.right)
	}
}
