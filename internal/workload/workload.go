// Package workload loads key corpora into a bst.Tree and measures insert,
// lookup, iteration and delete passes over them.
package workload

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/e11jah/bst"
)

const defaultProgressEvery = 100_000

type Context struct {
	context.Context

	Log     zerolog.Logger
	Metrics *Metrics

	// log a progress line every ProgressEvery operations, 0 means the default
	ProgressEvery int
	Seed          uint64
}

type Result struct {
	Keys       int
	Inserted   int
	Duplicates int
	Height     int

	InsertTook  time.Duration
	LookupTook  time.Duration
	IterateTook time.Duration
	DeleteTook  time.Duration
}

// Run inserts keys in the given order, checks that every key can be looked
// up and that iteration is strictly ascending, then deletes every key in
// shuffled order. The tree is empty again when Run returns without error.
func (c *Context) Run(keys []string, order Order) (Result, error) {
	if c.Context == nil {
		c.Context = context.Background()
	}
	rng := rand.New(rand.NewPCG(c.Seed, uint64(len(keys))))

	input := slices.Clone(keys)
	switch order {
	case Shuffled:
		rng.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })
	case Ascending:
		slices.Sort(input)
	case AsGiven:
	default:
		return Result{}, fmt.Errorf("unknown key order: %q", order)
	}

	res := Result{Keys: len(input)}
	tree := bst.New[string, int]()

	// insert, the value is the index of the key's first occurrence
	since := time.Now()
	p := c.progress("insert")
	for i, k := range input {
		if err := p.tick(c); err != nil {
			return res, err
		}
		c.Metrics.op("insert")
		if tree.Insert(k, i) {
			res.Inserted++
		} else {
			res.Duplicates++
		}
	}
	res.InsertTook = time.Since(since)
	res.Height = tree.Height()
	c.Metrics.shape(tree.Size(), res.Height)
	if tree.Size() != res.Inserted {
		return res, fmt.Errorf("size %d after %d successful inserts", tree.Size(), res.Inserted)
	}
	c.Log.Info().Msgf("inserted %s keys (%s duplicates) in %s; height=%s",
		humanize.Comma(int64(res.Inserted)),
		humanize.Comma(int64(res.Duplicates)),
		res.InsertTook,
		humanize.Comma(int64(res.Height)))

	since = time.Now()
	p = c.progress("lookup")
	for _, k := range input {
		if err := p.tick(c); err != nil {
			return res, err
		}
		c.Metrics.op("lookup")
		v, err := tree.Lookup(k)
		if err != nil {
			return res, err
		}
		if input[*v] != k {
			return res, fmt.Errorf("lookup %q: value points at %q", k, input[*v])
		}
	}
	res.LookupTook = time.Since(since)

	since = time.Now()
	ordered := make([]string, 0, tree.Size())
	for k := range tree.Keys() {
		c.Metrics.op("iterate")
		if n := len(ordered); n > 0 && ordered[n-1] >= k {
			return res, fmt.Errorf("iteration out of order: %q after %q", k, ordered[n-1])
		}
		ordered = append(ordered, k)
	}
	res.IterateTook = time.Since(since)
	if len(ordered) != tree.Size() {
		return res, fmt.Errorf("iteration visited %d keys, size is %d", len(ordered), tree.Size())
	}

	since = time.Now()
	rng.Shuffle(len(ordered), func(i, j int) { ordered[i], ordered[j] = ordered[j], ordered[i] })
	p = c.progress("delete")
	for _, k := range ordered {
		if err := p.tick(c); err != nil {
			return res, err
		}
		c.Metrics.op("delete")
		v, err := tree.Delete(k)
		if err != nil {
			return res, err
		}
		if input[v] != k {
			return res, fmt.Errorf("delete %q: value points at %q", k, input[v])
		}
	}
	res.DeleteTook = time.Since(since)
	c.Metrics.shape(tree.Size(), tree.Height())
	if tree.Size() != 0 {
		return res, fmt.Errorf("size %d after deleting every key", tree.Size())
	}

	c.Log.Info().
		Int("keys", res.Keys).
		Str("order", string(order)).
		Dur("insert", res.InsertTook).
		Dur("lookup", res.LookupTook).
		Dur("iterate", res.IterateTook).
		Dur("delete", res.DeleteTook).
		Msg("workload complete")
	return res, nil
}

type progress struct {
	phase string
	every int
	cnt   int
	since time.Time
}

func (c *Context) progress(phase string) *progress {
	every := c.ProgressEvery
	if every <= 0 {
		every = defaultProgressEvery
	}
	return &progress{phase: phase, every: every, since: time.Now()}
}

// tick counts one operation, logging a progress line and checking for
// cancellation every p.every operations.
func (p *progress) tick(c *Context) error {
	p.cnt++
	if p.cnt%p.every != 0 {
		return nil
	}
	if err := c.Err(); err != nil {
		return err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	c.Log.Info().Msgf("%s: processed %s keys in %s; %s keys/s; mem=%s gc=%s",
		p.phase,
		humanize.Comma(int64(p.cnt)),
		time.Since(p.since),
		humanize.Comma(int64(float64(p.every)/time.Since(p.since).Seconds())),
		humanize.Bytes(m.Alloc),
		humanize.Comma(int64(m.NumGC)))
	p.since = time.Now()
	return nil
}
