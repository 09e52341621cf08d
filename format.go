package bst

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// String lists the entries as "{key=value}" in ascending key order,
// separated by ", ". An empty tree yields "".
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	_ = writeEntries(&sb, t)
	return sb.String()
}

// Format writes the listing String produces to w.
func Format[K, V any](w io.Writer, t *Tree[K, V]) error {
	bw := bufio.NewWriter(w)
	if err := writeEntries(bw, t); err != nil {
		return err
	}
	return bw.Flush()
}

func writeEntries[K, V any](w io.Writer, t *Tree[K, V]) error {
	if t == nil {
		return nil
	}
	sep := ""
	for k, v := range t.All() {
		if _, err := fmt.Fprintf(w, "%s{%v=%v}", sep, k, v); err != nil {
			return err
		}
		sep = ", "
	}
	return nil
}
