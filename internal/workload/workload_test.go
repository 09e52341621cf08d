package workload

import (
	"bytes"
	"context"
	"testing"

	"github.com/openacid/testkeys"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOrders(t *testing.T) {
	keys, err := LoadKeys("seq:2000")
	require.NoError(t, err)

	dataSet := []struct {
		order  Order
		height func(h int) bool
	}{
		{Ascending, func(h int) bool { return h == 2000 }},
		{AsGiven, func(h int) bool { return h == 2000 }},
		{Shuffled, func(h int) bool { return h < 100 }},
	}

	for _, d := range dataSet {
		c := &Context{Log: zerolog.Nop(), Seed: 3}
		res, err := c.Run(keys, d.order)
		require.NoError(t, err, d.order)

		assert.Equal(t, 2000, res.Keys, d.order)
		assert.Equal(t, 2000, res.Inserted, d.order)
		assert.Equal(t, 0, res.Duplicates, d.order)
		assert.True(t, d.height(res.Height), "%s: height %d", d.order, res.Height)
	}
}

func TestRunDuplicates(t *testing.T) {
	keys := []string{"b", "a", "b", "c", "a", "b"}
	c := &Context{Log: zerolog.Nop()}

	res, err := c.Run(keys, AsGiven)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Inserted)
	assert.Equal(t, 3, res.Duplicates)
	assert.Equal(t, 2, res.Height)
}

func TestRunMetricsAndProgress(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, prometheus.Labels{"source": "seq"})

	var buf bytes.Buffer
	c := &Context{
		Log:           zerolog.New(&buf),
		Metrics:       m,
		ProgressEvery: 100,
	}
	keys, err := LoadKeys("seq:500")
	require.NoError(t, err)

	_, err = c.Run(keys, Shuffled)
	require.NoError(t, err)

	assert.Equal(t, float64(500), testutil.ToFloat64(m.Ops.WithLabelValues("insert")))
	assert.Equal(t, float64(500), testutil.ToFloat64(m.Ops.WithLabelValues("lookup")))
	assert.Equal(t, float64(500), testutil.ToFloat64(m.Ops.WithLabelValues("iterate")))
	assert.Equal(t, float64(500), testutil.ToFloat64(m.Ops.WithLabelValues("delete")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.TreeSize))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.TreeHeight))

	assert.Contains(t, buf.String(), "insert: processed 500 keys")
	assert.Contains(t, buf.String(), "workload complete")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Context{Context: ctx, Log: zerolog.Nop(), ProgressEvery: 10}
	keys, err := LoadKeys("seq:100")
	require.NoError(t, err)

	_, err = c.Run(keys, Shuffled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunUnknownOrder(t *testing.T) {
	c := &Context{Log: zerolog.Nop()}
	_, err := c.Run([]string{"a"}, Order("sideways"))
	assert.Error(t, err)
}

func TestParseOrder(t *testing.T) {
	for _, s := range []string{"shuffled", "ascending", "as-given"} {
		o, err := ParseOrder(s)
		assert.NoError(t, err)
		assert.Equal(t, Order(s), o)
	}
	_, err := ParseOrder("random")
	assert.Error(t, err)
}

func TestLoadKeys(t *testing.T) {
	keys, err := LoadKeys("seq:12")
	require.NoError(t, err)
	assert.Len(t, keys, 12)
	assert.Equal(t, "00", keys[0])
	assert.Equal(t, "11", keys[11])

	names := testkeys.AssetNames()
	require.NotEmpty(t, names)
	keys, err = LoadKeys("testkeys:" + names[0])
	require.NoError(t, err)
	assert.Equal(t, testkeys.Load(names[0]), keys)

	for _, bad := range []string{"", "seq", "seq:x", "seq:-1", "testkeys:no-such-asset", "file:/tmp/keys"} {
		_, err := LoadKeys(bad)
		assert.Error(t, err, bad)
	}
}
