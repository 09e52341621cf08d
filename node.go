package bst

// descend walks down from pos comparing each node's key with key and returns
// the child link where key lives, or where a node with that key belongs.
func descend[K, V any](pos **node[K, V], key K, compare CompareFunc[K]) **node[K, V] {
	for n := *pos; n != nil; n = *pos {
		switch c := compare(n.Key, key); {
		case c < 0:
			pos = &n.right
		case c > 0:
			pos = &n.left
		default:
			return pos
		}
	}
	return pos
}

// attach hangs sub, together with everything below it, at the empty link
// that the insertion descent from pos finds for sub's key. It reports false
// and leaves the tree alone if that key is already present.
func attach[K, V any](pos **node[K, V], sub *node[K, V], compare CompareFunc[K]) bool {
	at := descend(pos, sub.Key, compare)
	if *at != nil {
		return false
	}
	replaceRef(at, sub)
	return true
}

// modify the link itself, ** means ref to pointer
func replaceRef[K, V any](oldNode **node[K, V], newNode *node[K, V]) {
	*oldNode = newNode
}

// pushLeft pushes n and its chain of left children, ending at the minimum
// of n's subtree.
func pushLeft[K, V any](stack []*node[K, V], n *node[K, V]) []*node[K, V] {
	for ; n != nil; n = n.left {
		stack = append(stack, n)
	}
	return stack
}

type level[K, V any] struct {
	n     *node[K, V]
	depth int
}

// height counts the nodes on the longest root-to-leaf path.
func height[K, V any](root *node[K, V]) int {
	if root == nil {
		return 0
	}

	maxDepth := 0
	work := []level[K, V]{{root, 1}}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		maxDepth = max(maxDepth, cur.depth)
		if cur.n.left != nil {
			work = append(work, level[K, V]{cur.n.left, cur.depth + 1})
		}
		if cur.n.right != nil {
			work = append(work, level[K, V]{cur.n.right, cur.depth + 1})
		}
	}
	return maxDepth
}

// teardown unlinks every node below root and clears its payload, using a
// work stack so a degenerate chain does not grow the goroutine stack.
func teardown[K, V any](root *node[K, V]) {
	if root == nil {
		return
	}
	work := []*node[K, V]{root}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]

		if n.left != nil {
			work = append(work, n.left)
		}
		if n.right != nil {
			work = append(work, n.right)
		}
		*n = node[K, V]{}
	}
}
