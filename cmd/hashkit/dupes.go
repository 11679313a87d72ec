package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/hupe1980/hashkit"
	"github.com/hupe1980/hashkit/codec"
	"github.com/hupe1980/hashkit/fingerprint"
	"github.com/hupe1980/hashkit/shard"
)

type dupesCmd struct {
	Store      string   `short:"s" default:"." env:"HASHKIT_STORE" help:"Blob source: a directory, s3://bucket/prefix or minio://endpoint/bucket/prefix."`
	Prefix     string   `help:"Scan every blob under this prefix when no names are given."`
	Workers    int      `short:"w" default:"4" env:"HASHKIT_WORKERS" help:"Blobs hashed concurrently."`
	Decompress bool     `short:"d" help:"Compare decoded content of gzip, zstd and lz4 inputs."`
	Approx     bool     `help:"Use a Bloom filter instead of an exact set; reports possible duplicates."`
	Capacity   uint64   `default:"1000000" help:"Expected number of distinct inputs for --approx."`
	FPRate     float64  `name:"fp-rate" default:"0.001" help:"False-positive rate for --approx."`
	Load       string   `type:"existingfile" help:"Seed the exact set from a file written by --save."`
	Save       string   `help:"Write the exact fingerprint set to this file."`
	Format     string   `short:"f" default:"text" enum:"text,json" help:"Output format (${enum})."`
	Names      []string `arg:"" optional:"" help:"Blob names."`
}

type dupeRecord struct {
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
	Origin      string `json:"origin,omitempty"`
	Approximate bool   `json:"approximate,omitempty"`
}

// seenFunc records fp and reports whether it had been seen before.
type seenFunc func(fp uint64) bool

func (c *dupesCmd) Run(rc *runContext) error {
	if c.Approx && (c.Save != "" || c.Load != "") {
		return errors.New("--save and --load need an exact set; drop --approx")
	}

	seen, set, err := c.newSeen()
	if err != nil {
		return err
	}

	store, err := openStore(rc.ctx, c.Store)
	if err != nil {
		return err
	}

	names, err := listOrNames(rc.ctx, store, c.Names, c.Prefix)
	if err != nil {
		return err
	}

	d, err := hashkit.NewDigester(store,
		hashkit.WithAlgorithm("city64"),
		hashkit.WithDecompression(c.Decompress),
		hashkit.WithMaxWorkers(c.Workers),
		hashkit.WithLogger(rc.logger.WithStore(c.Store)),
		hashkit.WithMetricsCollector(rc.metrics),
	)
	if err != nil {
		return err
	}

	results, err := d.SumAll(rc.ctx, names)
	if err != nil && rc.ctx.Err() != nil {
		return rc.ctx.Err()
	}

	origins := shard.NewMap[string](shard.WithPresize(len(results)))
	failed := false
	for _, r := range results {
		if r.Err != nil {
			failed = true
			fmt.Fprintf(rc.stderr, "hashkit: %s: %v\n", r.Name, r.Err)
			continue
		}

		fp := binary.BigEndian.Uint64(r.Digest)
		key := strconv.FormatUint(fp, 16)
		origin, known := origins.LoadOrStore(key, r.Name)
		if !seen(fp) {
			continue
		}
		if !known {
			// Seen only in a loaded set.
			origin = ""
		}

		if err := c.print(rc, dupeRecord{
			Name:        r.Name,
			Fingerprint: fmt.Sprintf("%016x", fp),
			Origin:      origin,
			Approximate: c.Approx,
		}); err != nil {
			return err
		}
	}

	if c.Save != "" {
		data, err := set.MarshalBinary()
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.Save, data, 0o644); err != nil {
			return err
		}
		rc.logger.Info("saved fingerprint set", "path", c.Save, "fingerprints", set.Cardinality())
	}

	if failed {
		return errFailed
	}
	return nil
}

func (c *dupesCmd) newSeen() (seenFunc, *fingerprint.Set, error) {
	if c.Approx {
		f, err := fingerprint.NewFilter(c.Capacity, c.FPRate)
		if err != nil {
			return nil, nil, err
		}
		return func(fp uint64) bool {
			if f.HasFingerprint(fp) {
				return true
			}
			f.AddFingerprint(fp)
			return false
		}, nil, nil
	}

	set := fingerprint.NewSet()
	if c.Load != "" {
		data, err := os.ReadFile(c.Load)
		if err != nil {
			return nil, nil, err
		}
		if err := set.UnmarshalBinary(data); err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", c.Load, err)
		}
	}
	return func(fp uint64) bool {
		return !set.AddFingerprint(fp)
	}, set, nil
}

func (c *dupesCmd) print(rc *runContext, rec dupeRecord) error {
	if c.Format == "json" {
		return codec.WriteLine(rc.stdout, codec.Default, rec)
	}

	verdict := "duplicate"
	if rec.Approximate {
		verdict = "possible duplicate"
	}
	if rec.Origin != "" {
		verdict += " of " + rec.Origin
	}
	_, err := fmt.Fprintf(rc.stdout, "%s  %s\n", rec.Name, verdict)
	return err
}
