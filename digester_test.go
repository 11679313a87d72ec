package hashkit

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hashkit/blobstore"
	"github.com/hupe1980/hashkit/internal/compress"
	"github.com/hupe1980/hashkit/resource"
)

func newTestStore(t *testing.T) *blobstore.MemoryStore {
	t.Helper()

	store := blobstore.NewMemoryStore()
	store.Put("hello.txt", []byte("hello"))
	store.Put("golden.txt", []byte(golden))
	store.Put("empty", nil)

	gz, err := compress.Encode([]byte("hello"), compress.FormatGzip)
	require.NoError(t, err)
	store.Put("hello.txt.gz", gz)

	zeros, err := compress.Encode(make([]byte, 4096), compress.FormatZstd)
	require.NoError(t, err)
	store.Put("zeros.zst", zeros)

	return store
}

func TestNewDigester(t *testing.T) {
	store := newTestStore(t)

	t.Run("default algorithm", func(t *testing.T) {
		d, err := NewDigester(store)
		require.NoError(t, err)
		assert.Equal(t, "city64", d.Algorithm())
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := NewDigester(store, WithAlgorithm("md4"))
		var ua *ErrUnknownAlgorithm
		require.ErrorAs(t, err, &ua)
		assert.Equal(t, "md4", ua.Name)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewDigester(nil)
		assert.Error(t, err)
	})

	t.Run("nil options", func(t *testing.T) {
		d, err := NewDigester(store, nil, WithLogger(nil), WithMetricsCollector(nil))
		require.NoError(t, err)
		_, err = d.Sum(context.Background(), "hello.txt")
		assert.NoError(t, err)
	})
}

func TestDigesterSum(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tests := []struct {
		algorithm string
		name      string
		want      string
		size      int64
	}{
		{"city64", "hello.txt", "b48be5a931380ce8", 5},
		{"city32", "golden.txt", "a8944fbe", int64(len(golden))},
		{"city64", "golden.txt", "1d408f2bbf967e2a", int64(len(golden))},
		{"city128", "golden.txt", "c2f68d8b2bf4a5cf5944f1e788a18db0", int64(len(golden))},
		{"city64", "empty", "9ae16a3b2f90404f", 0},
		{"ketama32", "hello.txt", "2a40415d", 5},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm+"/"+tt.name, func(t *testing.T) {
			d, err := NewDigester(store, WithAlgorithm(tt.algorithm))
			require.NoError(t, err)

			res, err := d.Sum(ctx, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Hex())
			assert.Equal(t, tt.size, res.Size)
			assert.Equal(t, tt.name, res.Name)
			assert.Equal(t, tt.algorithm, res.Algorithm)
			assert.Empty(t, res.Compression)
		})
	}
}

func TestDigesterSumErrors(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("not found", func(t *testing.T) {
		d, err := NewDigester(store)
		require.NoError(t, err)

		_, err = d.Sum(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("too large", func(t *testing.T) {
		d, err := NewDigester(store, WithMaxBlobSize(4))
		require.NoError(t, err)

		_, err = d.Sum(ctx, "hello.txt")
		var tl *ErrBlobTooLarge
		require.ErrorAs(t, err, &tl)
		assert.Equal(t, int64(5), tl.Size)
		assert.Equal(t, int64(4), tl.Limit)
	})

	t.Run("decoded too large", func(t *testing.T) {
		d, err := NewDigester(store, WithDecompression(true), WithMaxBlobSize(1024))
		require.NoError(t, err)

		_, err = d.Sum(ctx, "zeros.zst")
		var tl *ErrBlobTooLarge
		require.ErrorAs(t, err, &tl)
		assert.ErrorIs(t, err, compress.ErrTooLarge)
	})
}

func TestDigesterDecompression(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	plain, err := NewDigester(store)
	require.NoError(t, err)
	d, err := NewDigester(store, WithDecompression(true))
	require.NoError(t, err)

	want, err := plain.Sum(ctx, "hello.txt")
	require.NoError(t, err)

	got, err := d.Sum(ctx, "hello.txt.gz")
	require.NoError(t, err)
	assert.Equal(t, want.Digest, got.Digest)
	assert.Equal(t, "gzip", got.Compression)
	assert.Equal(t, int64(5), got.Size)

	raw, err := plain.Sum(ctx, "hello.txt.gz")
	require.NoError(t, err)
	assert.NotEqual(t, want.Digest, raw.Digest)

	zeros, err := d.Sum(ctx, "zeros.zst")
	require.NoError(t, err)
	assert.Equal(t, "zstd", zeros.Compression)
	assert.Equal(t, int64(4096), zeros.Size)

	uncompressed, err := d.Sum(ctx, "hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "none", uncompressed.Compression)
}

func TestDigesterSumAll(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	metrics := &BasicMetricsCollector{}
	d, err := NewDigester(store, WithMaxWorkers(4), WithMetricsCollector(metrics))
	require.NoError(t, err)

	t.Run("order", func(t *testing.T) {
		names := []string{"golden.txt", "hello.txt", "empty", "hello.txt"}
		results, err := d.SumAll(ctx, names)
		require.NoError(t, err)
		require.Len(t, results, len(names))

		for i, r := range results {
			assert.Equal(t, names[i], r.Name)
			assert.NoError(t, r.Err)
		}
		assert.Equal(t, "1d408f2bbf967e2a", results[0].Hex())
		assert.Equal(t, "b48be5a931380ce8", results[1].Hex())
		assert.Equal(t, results[1].Digest, results[3].Digest)
	})

	t.Run("partial failure", func(t *testing.T) {
		results, err := d.SumAll(ctx, []string{"hello.txt", "missing", "empty"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)

		require.Len(t, results, 3)
		assert.NoError(t, results[0].Err)
		assert.ErrorIs(t, results[1].Err, ErrNotFound)
		assert.NoError(t, results[2].Err)
		assert.Equal(t, "9ae16a3b2f90404f", results[2].Hex())
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := d.SumAll(cctx, []string{"hello.txt", "golden.txt"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	stats := metrics.GetStats()
	assert.GreaterOrEqual(t, stats.HashCount, int64(7))
	assert.GreaterOrEqual(t, stats.HashErrors, int64(1))
}

func TestDigesterSharedController(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rc := resource.NewController(resource.Config{MaxWorkers: 2, IOLimitBytesPerSec: 1 << 20})

	var digesters []*Digester
	for _, alg := range []string{"city32", "city64", "murmur128"} {
		d, err := NewDigester(store, WithAlgorithm(alg), WithResourceController(rc))
		require.NoError(t, err)
		digesters = append(digesters, d)
	}

	for _, d := range digesters {
		results, err := d.SumAll(ctx, []string{"hello.txt", "golden.txt"})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	}
}

func TestDigesterLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(newJSONHandler(&buf))

	d, err := NewDigester(newTestStore(t), WithLogger(logger))
	require.NoError(t, err)

	_, _ = d.SumAll(context.Background(), []string{"hello.txt", "missing"})

	out := buf.String()
	assert.Contains(t, out, `"msg":"sum completed"`)
	assert.Contains(t, out, `"msg":"sum failed"`)
	assert.Contains(t, out, `"algorithm":"city64"`)
	assert.Contains(t, out, `"failed":1`)
}

func TestResultHex(t *testing.T) {
	r := Result{Digest: []byte{0x00, 0xab, 0x10}}
	assert.Equal(t, "00ab10", r.Hex())
	assert.Empty(t, Result{}.Hex())
	assert.False(t, errors.Is(r.Err, ErrNotFound))
}
