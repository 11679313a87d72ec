package main

import (
	"fmt"
	"strings"

	"github.com/hupe1980/hashkit/codec"
	"github.com/hupe1980/hashkit/ring"
)

type locateCmd struct {
	Node     []string `short:"n" required:"" env:"HASHKIT_NODES" help:"Ring member as name or name:weight; repeat or comma-separate."`
	Points   int      `default:"160" help:"Ring points per unit of weight."`
	Hash     string   `default:"ketama" enum:"ketama,city32,murmur32" help:"Placement hash (${enum})."`
	Replicas int      `short:"r" default:"1" help:"Distinct nodes to report per key."`
	Format   string   `short:"f" default:"text" enum:"text,json" help:"Output format (${enum})."`
	Keys     []string `arg:"" help:"Keys to place."`
}

type locateRecord struct {
	Key   string   `json:"key"`
	Nodes []string `json:"nodes"`
}

func (c *locateCmd) Run(rc *runContext) error {
	h, err := ring.ParseHashFunc(c.Hash)
	if err != nil {
		return err
	}

	nodes := make([]ring.Node, 0, len(c.Node))
	for _, s := range c.Node {
		n, err := ring.ParseNode(s)
		if err != nil {
			return err
		}
		nodes = append(nodes, n)
	}

	r := ring.New(
		ring.WithHashFunc(h),
		ring.WithPointsPerNode(c.Points),
		ring.WithLookupCache(int64(len(c.Keys))),
		ring.WithLogger(rc.logger),
		ring.WithMetricsCollector(rc.metrics),
	)
	r.Set(nodes...)

	for _, key := range c.Keys {
		owners, err := c.lookup(r, key)
		if err != nil {
			return err
		}

		if c.Format == "json" {
			if err := codec.WriteLine(rc.stdout, codec.Default, locateRecord{Key: key, Nodes: owners}); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(rc.stdout, "%s  %s\n", key, strings.Join(owners, ",")); err != nil {
			return err
		}
	}
	return nil
}

func (c *locateCmd) lookup(r *ring.Ring, key string) ([]string, error) {
	if c.Replicas > 1 {
		return r.GetN([]byte(key), c.Replicas)
	}
	owner, err := r.Get([]byte(key))
	if err != nil {
		return nil, err
	}
	return []string{owner}, nil
}
