package bst_test

import (
	"errors"
	"fmt"

	"github.com/e11jah/bst"
)

func ExampleTree() {
	tree := bst.New[int, string]()
	tree.Insert(5, "a")
	tree.Insert(3, "b")
	tree.Insert(8, "c")

	fmt.Println(tree)

	v, _ := tree.Delete(5)
	fmt.Println(v, tree.Size())

	_, err := tree.Lookup(5)
	fmt.Println(errors.Is(err, bst.ErrKeyNotFound))

	// Output:
	// {3=b}, {5=a}, {8=c}
	// a 2
	// true
}

func ExampleTree_Lookup() {
	tree := bst.New[string, int]()
	tree.Insert("hits", 1)

	if v, err := tree.Lookup("hits"); err == nil {
		*v += 41
	}
	fmt.Println(tree)

	// Output:
	// {hits=42}
}

func ExampleIterator() {
	tree := bst.New[int, string]()
	for _, k := range []int{20, 10, 30} {
		tree.Insert(k, fmt.Sprint("v", k))
	}

	for it := tree.Begin(); !it.Equal(tree.End()); _ = it.Next() {
		e, _ := it.Entry()
		fmt.Println(e.Key, e.Value)
	}

	// Output:
	// 10 v10
	// 20 v20
	// 30 v30
}
