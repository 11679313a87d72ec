package hashkit

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hashkit/blobstore"
	"github.com/hupe1980/hashkit/internal/compress"
	"github.com/hupe1980/hashkit/internal/hash"
	"github.com/hupe1980/hashkit/resource"
)

// Result is the digest of one named blob.
type Result struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
	// Size is the number of bytes hashed, after decompression.
	Size int64 `json:"size"`
	// Compression is the detected input format when decompression is
	// enabled, empty otherwise.
	Compression string `json:"compression,omitempty"`
	Digest      []byte `json:"-"`
	// Err is set by SumAll for inputs that failed.
	Err error `json:"-"`
}

// Hex returns the digest as lower-case hex.
func (r Result) Hex() string {
	return hex.EncodeToString(r.Digest)
}

// Digester hashes named blobs from a BlobStore.
// It is safe for concurrent use.
type Digester struct {
	store       blobstore.BlobStore
	algorithm   hash.Algorithm
	decompress  bool
	maxBlobSize int64
	workers     int
	rc          *resource.Controller
	metrics     MetricsCollector
	logger      *Logger
}

// NewDigester creates a Digester reading from store.
//
// Example:
//
//	d, err := hashkit.NewDigester(blobstore.NewLocalStore("."),
//	    hashkit.WithAlgorithm("city128"),
//	    hashkit.WithMaxWorkers(8),
//	)
//	res, err := d.Sum(ctx, "release.tar.zst")
//	fmt.Println(res.Hex())
func NewDigester(store blobstore.BlobStore, optFns ...Option) (*Digester, error) {
	if store == nil {
		return nil, errors.New("hashkit: nil blob store")
	}

	o := applyOptions(optFns)

	alg, ok := hash.Lookup(o.algorithm)
	if !ok {
		return nil, &ErrUnknownAlgorithm{Name: o.algorithm}
	}

	rc := o.controller
	if rc == nil {
		rc = resource.NewController(resource.Config{
			MaxWorkers:         int64(max(o.maxWorkers, 1)),
			IOLimitBytesPerSec: o.ioLimit,
		})
	}

	return &Digester{
		store:       store,
		algorithm:   alg,
		decompress:  o.decompress,
		maxBlobSize: o.maxBlobSize,
		workers:     max(rc.MaxWorkers(), 1),
		rc:          rc,
		metrics:     o.metricsCollector,
		logger:      o.logger,
	}, nil
}

// Algorithm returns the name of the configured algorithm.
func (d *Digester) Algorithm() string {
	return d.algorithm.Name
}

// Sum reads the named blob and returns its digest.
func (d *Digester) Sum(ctx context.Context, name string) (Result, error) {
	if err := d.rc.AcquireWorker(ctx); err != nil {
		return Result{Name: name, Algorithm: d.algorithm.Name}, err
	}
	defer d.rc.ReleaseWorker()

	start := time.Now()
	res, err := d.sum(ctx, name)

	d.metrics.RecordHash(d.algorithm.Name, res.Size, time.Since(start), err)
	d.logger.LogSum(ctx, name, d.algorithm.Name, res.Size, err)

	return res, err
}

func (d *Digester) sum(ctx context.Context, name string) (Result, error) {
	res := Result{Name: name, Algorithm: d.algorithm.Name}

	blob, err := d.store.Open(ctx, name)
	if err != nil {
		return res, fmt.Errorf("open %s: %w", name, err)
	}
	defer blob.Close()

	if d.maxBlobSize > 0 && blob.Size() > d.maxBlobSize {
		return res, &ErrBlobTooLarge{Name: name, Size: blob.Size(), Limit: d.maxBlobSize}
	}

	data, err := blobstore.ReadAll(ctx, blob, blobstore.WithThrottle(d.rc.AcquireIO))
	if err != nil {
		return res, fmt.Errorf("read %s: %w", name, err)
	}

	if d.decompress {
		decoded, format, err := compress.Decode(data, d.maxBlobSize)
		if err != nil {
			if errors.Is(err, compress.ErrTooLarge) {
				return res, &ErrBlobTooLarge{Name: name, Size: -1, Limit: d.maxBlobSize, cause: err}
			}
			return res, fmt.Errorf("decode %s: %w", name, err)
		}
		data = decoded
		res.Compression = format.String()
	}

	res.Size = int64(len(data))
	res.Digest = d.algorithm.Sum(data)
	return res, nil
}

// SumAll hashes names concurrently, bounded by the worker limit, and
// returns one Result per name in input order.
//
// Inputs that fail carry their error in Result.Err; the returned error
// joins them. If ctx is cancelled, no further inputs are started and the
// context error is returned.
func (d *Digester) SumAll(ctx context.Context, names []string) ([]Result, error) {
	results := make([]Result, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := d.Sum(gctx, name)
			if err != nil {
				if cerr := gctx.Err(); cerr != nil {
					return cerr
				}
				res.Err = err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	d.logger.LogSumAll(ctx, len(names), len(errs))

	return results, errors.Join(errs...)
}
