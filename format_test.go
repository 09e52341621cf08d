package bst

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeString(t *testing.T) {
	dataSet := []struct {
		keys     []int
		values   []string
		expected string
	}{
		{[]int{}, []string{}, ""},
		{[]int{1}, []string{"one"}, "{1=one}"},
		{[]int{5, 3, 8}, []string{"a", "b", "c"}, "{3=b}, {5=a}, {8=c}"},
		{[]int{2, 1, 2}, []string{"x", "y", "z"}, "{1=y}, {2=x}"},
	}

	for _, d := range dataSet {
		tree := New[int, string]()
		for i, k := range d.keys {
			tree.Insert(k, d.values[i])
		}
		assert.Equal(t, d.expected, tree.String())

		var buf bytes.Buffer
		require.NoError(t, Format(&buf, tree))
		assert.Equal(t, d.expected, buf.String())
	}
}

func TestFormatDoesNotMutate(t *testing.T) {
	tree := New[string, float64]()
	tree.Insert("pi", 3.14)
	tree.Insert("e", 2.72)

	before := tree.Begin()
	_ = tree.String()
	assert.Equal(t, 2, tree.Size())
	assert.True(t, before.Equal(tree.Begin()))
	assert.Equal(t, "{e=2.72}, {pi=3.14}", tree.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFormatWriterError(t *testing.T) {
	tree := New[int, int]()
	tree.Insert(1, 1)
	assert.ErrorIs(t, Format(failingWriter{}, tree), errWrite)

	var nilTree *Tree[int, int]
	assert.NoError(t, Format(failingWriter{}, nilTree))
}
