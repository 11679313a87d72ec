package main

import (
	"encoding/hex"
	"fmt"

	"github.com/hupe1980/hashkit"
	"github.com/hupe1980/hashkit/blobstore"
	"github.com/hupe1980/hashkit/codec"
	"github.com/hupe1980/hashkit/resource"
)

type sumCmd struct {
	Algorithm  []string `short:"a" default:"city64" env:"HASHKIT_ALGORITHM" help:"Digest algorithm; repeat or comma-separate for several."`
	Store      string   `short:"s" default:"." env:"HASHKIT_STORE" help:"Blob source: a directory, s3://bucket/prefix or minio://endpoint/bucket/prefix."`
	Prefix     string   `help:"Hash every blob under this prefix when no names are given."`
	String     bool     `help:"Hash the arguments as UTF-8 strings instead of reading blobs."`
	Decompress bool     `short:"d" help:"Decode gzip, zstd and lz4 inputs before hashing."`
	Workers    int      `short:"w" default:"4" env:"HASHKIT_WORKERS" help:"Blobs hashed concurrently."`
	IOLimit    int64    `name:"io-limit" env:"HASHKIT_IO_LIMIT" help:"Read limit in bytes per second; 0 is unlimited."`
	CacheSize  int64    `name:"cache-size" env:"HASHKIT_CACHE_SIZE" help:"Bytes of blob content cached between algorithms; 0 disables the cache."`
	MaxSize    int64    `name:"max-size" help:"Reject blobs larger than this many bytes; 0 is unlimited."`
	Format     string   `short:"f" default:"text" enum:"text,json" help:"Output format (${enum})."`
	Names      []string `arg:"" optional:"" help:"Blob names, or strings with --string."`
}

type sumRecord struct {
	Name        string `json:"name"`
	Algorithm   string `json:"algorithm"`
	Digest      string `json:"digest,omitempty"`
	Size        int64  `json:"size"`
	Compression string `json:"compression,omitempty"`
	Error       string `json:"error,omitempty"`
}

func (c *sumCmd) Run(rc *runContext) error {
	if c.String {
		return c.sumStrings(rc)
	}

	store, err := openStore(rc.ctx, c.Store)
	if err != nil {
		return err
	}

	names, err := listOrNames(rc.ctx, store, c.Names, c.Prefix)
	if err != nil {
		return err
	}

	res := resource.NewController(resource.Config{
		MaxWorkers:         int64(c.Workers),
		IOLimitBytesPerSec: c.IOLimit,
		MemoryLimitBytes:   c.CacheSize,
	})
	if c.CacheSize > 0 && len(c.Algorithm) > 1 {
		store = blobstore.NewCachingStore(store, c.CacheSize, 0, res)
	}

	// byAlg[a][i] is the result of algorithm a for names[i].
	byAlg := make([][]hashkit.Result, len(c.Algorithm))
	for a, alg := range c.Algorithm {
		d, err := hashkit.NewDigester(store,
			hashkit.WithAlgorithm(alg),
			hashkit.WithDecompression(c.Decompress),
			hashkit.WithMaxBlobSize(c.MaxSize),
			hashkit.WithResourceController(res),
			hashkit.WithLogger(rc.logger.WithStore(c.Store)),
			hashkit.WithMetricsCollector(rc.metrics),
		)
		if err != nil {
			return err
		}

		// Per-input failures are carried in each Result.
		results, err := d.SumAll(rc.ctx, names)
		if err != nil && rc.ctx.Err() != nil {
			return rc.ctx.Err()
		}
		byAlg[a] = results
	}

	failed := false
	for i := range names {
		for a := range c.Algorithm {
			r := byAlg[a][i]
			if r.Err != nil {
				failed = true
			}
			if err := c.print(rc, r.Name, r.Algorithm, r.Hex(), r.Size, r.Compression, r.Err); err != nil {
				return err
			}
		}
	}

	if failed {
		return errFailed
	}
	return nil
}

func (c *sumCmd) sumStrings(rc *runContext) error {
	for _, s := range c.Names {
		for _, alg := range c.Algorithm {
			digest, err := hashkit.Sum(alg, []byte(s))
			if err != nil {
				return err
			}
			if err := c.print(rc, s, alg, hex.EncodeToString(digest), int64(len(s)), "", nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *sumCmd) print(rc *runContext, name, alg, digest string, size int64, compression string, err error) error {
	if c.Format == "json" {
		rec := sumRecord{Name: name, Algorithm: alg, Size: size, Compression: compression}
		if err != nil {
			rec.Error = err.Error()
		} else {
			rec.Digest = digest
		}
		return codec.WriteLine(rc.stdout, codec.Default, rec)
	}

	if err != nil {
		_, werr := fmt.Fprintf(rc.stderr, "hashkit: %s: %v\n", name, err)
		return werr
	}
	if len(c.Algorithm) > 1 {
		_, werr := fmt.Fprintf(rc.stdout, "%s  %s  %s\n", alg, digest, name)
		return werr
	}
	_, werr := fmt.Fprintf(rc.stdout, "%s  %s\n", digest, name)
	return werr
}
