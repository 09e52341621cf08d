// Package harness drives a bst.Tree through its public operations and
// checks every outcome, stopping at the first mismatch.
package harness

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/e11jah/bst"
)

const (
	BulkSize       = 1000
	StressElements = 50_000
)

type Scenario struct {
	Name string
	Run  func(h *Harness) error
}

type Harness struct {
	Log zerolog.Logger

	// number of keys used by the randomized stress scenario
	StressElements int
	Seed           uint64

	// shared by the bulk scenarios, filled in ascending order
	bulk *bst.Tree[int, int]
}

func New(log zerolog.Logger) *Harness {
	return &Harness{
		Log:            log,
		StressElements: StressElements,
	}
}

func Scenarios() []Scenario {
	return []Scenario{
		{"size 1 map", sizeOneMap},
		{"missing key", missingKey},
		{"bulk add", bulkAdd},
		{"bulk lookup", bulkLookup},
		{"bulk remove", bulkRemove},
		{"remove node all cases", removeAllCases},
		{"iterator", iterator},
		{"randomized stress", randomizedStress},
	}
}

// Run executes every scenario in order.
func (h *Harness) Run() error {
	start := time.Now()
	for _, s := range Scenarios() {
		if err := h.RunScenario(s); err != nil {
			return err
		}
	}
	h.Log.Info().Dur("took", time.Since(start)).Msg("all scenarios completed")
	return nil
}

func (h *Harness) RunScenario(s Scenario) error {
	since := time.Now()
	h.Log.Debug().Str("scenario", s.Name).Msg("commencing")
	if err := s.Run(h); err != nil {
		h.Log.Error().Err(err).Str("scenario", s.Name).Msg("failed")
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	h.Log.Info().Str("scenario", s.Name).Dur("took", time.Since(since)).Msg("complete")
	return nil
}

func expect(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf(format, args...)
}

func expectValue[K comparable, V comparable](tree *bst.Tree[K, V], key K, want V) error {
	v, err := tree.Lookup(key)
	if err != nil {
		return fmt.Errorf("lookup %v: %w", key, err)
	}
	return expect(*v == want, "lookup %v: got %v, want %v", key, *v, want)
}

func expectRemove[K comparable, V comparable](tree *bst.Tree[K, V], key K, want V) error {
	v, err := tree.Delete(key)
	if err != nil {
		return fmt.Errorf("remove %v: %w", key, err)
	}
	return expect(v == want, "remove %v: got %v, want %v", key, v, want)
}

func expectSize[K, V any](tree *bst.Tree[K, V], want int) error {
	return expect(tree.Size() == want, "size: got %d, want %d", tree.Size(), want)
}

func sizeOneMap(_ *Harness) error {
	tree := bst.New[int, rune]()
	steps := []func() error{
		func() error { return expectSize(tree, 0) },
		func() error { return expect(tree.Insert(0, 'a'), "insert 0 into empty map failed") },
		func() error { return expectValue(tree, 0, 'a') },
		func() error { return expectSize(tree, 1) },
		func() error { return expect(!tree.Insert(0, 'b'), "duplicate insert of 0 succeeded") },
		func() error { return expectValue(tree, 0, 'a') },
		func() error { return expectSize(tree, 1) },
		func() error { return expectRemove(tree, 0, 'a') },
		func() error { return expectSize(tree, 0) },
		func() error { return expect(tree.Insert(0, 'b'), "re-insert of removed key 0 failed") },
		func() error { return expectValue(tree, 0, 'b') },
		func() error { return expectSize(tree, 1) },
	}
	return runSteps(steps)
}

func missingKey(_ *Harness) error {
	tree := bst.New[rune, bool]()
	if _, err := tree.Lookup('a'); !errors.Is(err, bst.ErrKeyNotFound) {
		return fmt.Errorf("lookup on empty map: got %v, want %v", err, bst.ErrKeyNotFound)
	}
	if _, err := tree.Delete('a'); !errors.Is(err, bst.ErrKeyNotFound) {
		return fmt.Errorf("remove on empty map: got %v, want %v", err, bst.ErrKeyNotFound)
	}
	return expectSize(tree, 0)
}

func bulkAdd(h *Harness) error {
	h.bulk = bst.New[int, int]()
	bulkTree := h.bulk
	for i := 0; i < BulkSize; i++ {
		if !bulkTree.Insert(i, -i) {
			return fmt.Errorf("insert %d failed", i)
		}
	}
	if err := expectSize(bulkTree, BulkSize); err != nil {
		return err
	}
	return expect(bulkTree.Height() == BulkSize,
		"ascending inserts: height %d, want %d", bulkTree.Height(), BulkSize)
}

func bulkLookup(h *Harness) error {
	bulkTree := h.bulk
	if bulkTree == nil {
		return errors.New("bulk add must run first")
	}
	for i := 0; i < BulkSize; i++ {
		if err := expectValue(bulkTree, i, -i); err != nil {
			return err
		}
		v, _ := bulkTree.Lookup(i)
		*v = -*v
		if err := expectValue(bulkTree, i, i); err != nil {
			return fmt.Errorf("write through lookup: %w", err)
		}
		*v = -*v
		if err := expectValue(bulkTree, i, -i); err != nil {
			return fmt.Errorf("write through lookup: %w", err)
		}
	}
	return expectSize(bulkTree, BulkSize)
}

func bulkRemove(h *Harness) error {
	bulkTree := h.bulk
	if bulkTree == nil {
		return errors.New("bulk add must run first")
	}
	for i := 0; i < BulkSize; i++ {
		if err := expectRemove(bulkTree, i, -i); err != nil {
			return err
		}
	}
	err := expectSize(bulkTree, 0)
	h.bulk = nil
	return err
}

// removeAllCases covers a removed node with two children, only a left
// child, only a right child and no children.
func removeAllCases(_ *Harness) error {
	tree := bst.New[int, rune]()
	cases := []struct {
		name  string
		setup []bst.Entry[int, rune]
		keep  []bst.Entry[int, rune]
	}{
		{"two children", []bst.Entry[int, rune]{{Key: 0, Value: 'a'}, {Key: -1, Value: 'b'}, {Key: 1, Value: 'c'}},
			[]bst.Entry[int, rune]{{Key: -1, Value: 'b'}, {Key: 1, Value: 'c'}}},
		{"left child", []bst.Entry[int, rune]{{Key: 0, Value: 'a'}, {Key: -1, Value: 'b'}},
			[]bst.Entry[int, rune]{{Key: -1, Value: 'b'}}},
		{"right child", []bst.Entry[int, rune]{{Key: 0, Value: 'a'}, {Key: 1, Value: 'c'}},
			[]bst.Entry[int, rune]{{Key: 1, Value: 'c'}}},
		{"no children", []bst.Entry[int, rune]{{Key: 0, Value: 'a'}}, nil},
	}

	for _, c := range cases {
		for _, e := range c.setup {
			if !tree.Insert(e.Key, e.Value) {
				return fmt.Errorf("%s: insert %d failed", c.name, e.Key)
			}
		}
		if err := expectRemove(tree, 0, 'a'); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		for _, e := range c.keep {
			if err := expectValue(tree, e.Key, e.Value); err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
		}
		if err := expectSize(tree, len(c.keep)); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		for _, e := range c.keep {
			if err := expectRemove(tree, e.Key, e.Value); err != nil {
				return fmt.Errorf("%s: clean up: %w", c.name, err)
			}
		}
	}
	return expectSize(tree, 0)
}

func iterator(_ *Harness) error {
	tree := bst.New[int, rune]()
	tree.Insert(1, 'a')
	tree.Insert(2, 'b')
	tree.Insert(3, 'c')

	at := func(it *bst.Iterator[int, rune], key int, value rune) error {
		e, err := it.Entry()
		if err != nil {
			return err
		}
		return expect(e.Key == key && e.Value == value,
			"iterator at {%d=%c}, want {%d=%c}", e.Key, e.Value, key, value)
	}

	it1 := tree.Begin()
	var it2 *bst.Iterator[int, rune]
	steps := []func() error{
		func() error { return at(it1, 1, 'a') },
		it1.Next,
		func() error { return at(it1, 2, 'b') },
		func() error {
			prev := it1.Clone()
			if err := it1.Next(); err != nil {
				return err
			}
			if err := at(prev, 2, 'b'); err != nil {
				return fmt.Errorf("copy moved with original: %w", err)
			}
			return at(it1, 3, 'c')
		},
		func() error {
			it2 = tree.Begin()
			return expect(it2.Valid() && !it1.Equal(it2), "fresh iterator equals advanced one")
		},
		func() error { return it2.Next() },
		func() error { return expect(it2.Valid() && !it1.Equal(it2), "iterators one step apart are equal") },
		func() error { return it2.Next() },
		func() error { return expect(it2.Valid() && it1.Equal(it2), "iterators at the same step differ") },
		func() error { return it2.Next() },
		func() error { return expect(!it2.Valid() && !it1.Equal(it2), "past-the-end iterator equals a live one") },
		func() error { return expect(!it1.Equal(tree.End()), "live iterator equals end") },
		func() error { return expect(it2.Equal(tree.End()), "exhausted iterator differs from end") },
		func() error { return expectExhausted(it2.Next()) },
		func() error { return expectExhausted(it2.Clone().Next()) },
		func() error {
			_, err := it2.Entry()
			return expectExhausted(err)
		},
		func() error {
			_, err := it2.Key()
			return expectExhausted(err)
		},
	}
	return runSteps(steps)
}

func expectExhausted(err error) error {
	return expect(errors.Is(err, bst.ErrIteratorExhausted), "got %v, want %v", err, bst.ErrIteratorExhausted)
}

func randomizedStress(h *Harness) error {
	n := h.StressElements
	rng := rand.New(rand.NewPCG(h.Seed, uint64(n)))

	ints := rng.Perm(n)
	tree := bst.New[int, int]()
	for distance, k := range ints {
		if !tree.Insert(k, distance) {
			return fmt.Errorf("insert %d failed", k)
		}
	}
	if err := expectSize(tree, n); err != nil {
		return err
	}
	h.Log.Debug().Int("elements", n).Int("height", tree.Height()).Msg("stress tree built")

	for distance, k := range ints {
		if err := expectValue(tree, k, distance); err != nil {
			return err
		}
	}

	next := 0
	for k := range tree.Keys() {
		if k != next {
			return fmt.Errorf("iteration: got key %d, want %d", k, next)
		}
		next++
	}
	if next != n {
		return fmt.Errorf("iteration: visited %d keys, want %d", next, n)
	}

	rng.Shuffle(len(ints), func(i, j int) { ints[i], ints[j] = ints[j], ints[i] })
	for _, k := range ints {
		if _, err := tree.Delete(k); err != nil {
			return fmt.Errorf("remove %d: %w", k, err)
		}
	}
	return expectSize(tree, 0)
}

func runSteps(steps []func() error) error {
	for i, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
