package ring

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/hashkit"
	"github.com/hupe1980/hashkit/internal/cache"
)

// ErrEmptyRing is returned by lookups on a ring without nodes.
var ErrEmptyRing = hashkit.ErrEmptyRing

// Node is a ring member. A node of weight w occupies w times the
// configured points per node; weights <= 0 count as 1.
type Node struct {
	Name   string
	Weight int
}

// ParseNode parses "name" or "name:weight".
func ParseNode(s string) (Node, error) {
	name, weight, ok := strings.Cut(s, ":")
	if name == "" {
		return Node{}, fmt.Errorf("ring: empty node name in %q", s)
	}
	if !ok {
		return Node{Name: name, Weight: 1}, nil
	}
	w, err := strconv.Atoi(weight)
	if err != nil || w <= 0 {
		return Node{}, fmt.Errorf("ring: invalid weight in %q", s)
	}
	return Node{Name: name, Weight: w}, nil
}

type point struct {
	hash uint32
	node string
}

// Ring is a consistent-hash ring. It is safe for concurrent use: lookups
// share a read lock and every membership change builds a new point slice.
type Ring struct {
	mu     sync.RWMutex
	nodes  map[string]Node
	points []point

	opts  options
	cache *cache.ShardedLRU[string]
}

// New creates an empty ring.
func New(optFns ...Option) *Ring {
	o := options{
		pointsPerNode: DefaultPointsPerNode,
		hash:          Ketama,
		logger:        hashkit.NoopLogger(),
		metrics:       hashkit.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.pointsPerNode <= 0 {
		o.pointsPerNode = DefaultPointsPerNode
	}
	if o.logger == nil {
		o.logger = hashkit.NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = hashkit.NoopMetricsCollector{}
	}

	r := &Ring{
		nodes: make(map[string]Node),
		opts:  o,
	}
	if o.cacheSize > 0 {
		r.cache = cache.NewShardedLRU[string](o.cacheSize, nil, nil)
	}
	return r
}

// Set replaces the membership with nodes and rebuilds the ring.
func (r *Ring) Set(nodes ...Node) {
	next := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		next[n.Name] = n
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nodes = next
	r.rebuild()
}

// Add inserts or re-weights a node.
func (r *Ring) Add(node Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := maps.Clone(r.nodes)
	next[node.Name] = node
	r.nodes = next
	r.rebuild()
}

// Remove deletes the named node. It reports whether the node was a member.
func (r *Ring) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nodes[name]; !ok {
		return false
	}
	next := maps.Clone(r.nodes)
	delete(next, name)
	r.nodes = next
	r.rebuild()
	return true
}

// need r.mu held for writing
func (r *Ring) rebuild() {
	var total int
	for _, n := range r.nodes {
		total += r.opts.pointsPerNode * max(n.Weight, 1)
	}

	points := make([]point, 0, total)
	for _, n := range r.nodes {
		points = r.place(points, n)
	}

	slices.SortFunc(points, func(a, b point) int {
		if a.hash != b.hash {
			if a.hash < b.hash {
				return -1
			}
			return 1
		}
		return strings.Compare(a.node, b.node)
	})

	r.points = points
	if r.cache != nil {
		r.cache.Purge()
	}

	members := slices.Sorted(maps.Keys(r.nodes))
	r.opts.logger.LogRingRebuild(context.Background(), members, len(points))
	r.opts.metrics.RecordRebuild(len(members), len(points))
}

func (r *Ring) place(points []point, n Node) []point {
	want := r.opts.pointsPerNode * max(n.Weight, 1)
	label := make([]byte, 0, len(n.Name)+8)

	ph, multi := r.opts.hash.(PointHasher)
	for i, placed := 0, 0; placed < want; i++ {
		label = strconv.AppendInt(append(append(label[:0], n.Name...), '-'), int64(i), 10)

		if !multi {
			points = append(points, point{hash: r.opts.hash.Sum32(label), node: n.Name})
			placed++
			continue
		}
		for _, h := range ph.Points(label) {
			if placed == want {
				break
			}
			points = append(points, point{hash: h, node: n.Name})
			placed++
		}
	}
	return points
}

// search returns the index of the first point at or after h, wrapping
// around to 0.
func (r *Ring) search(h uint32) int {
	i, _ := slices.BinarySearchFunc(r.points, h, func(p point, h uint32) int {
		if p.hash < h {
			return -1
		}
		if p.hash > h {
			return 1
		}
		return 0
	})
	if i >= len(r.points) {
		i = 0
	}
	return i
}

// Get returns the node owning key: the first point clockwise from the
// key's hash.
func (r *Ring) Get(key []byte) (string, error) {
	start := time.Now()

	node, err := r.get(key)

	r.opts.metrics.RecordLookup(time.Since(start), err)
	r.opts.logger.LogLookup(context.Background(), key, node, err)

	return node, err
}

func (r *Ring) get(key []byte) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.points) == 0 {
		return "", ErrEmptyRing
	}

	if r.cache != nil {
		if node, ok := r.cache.Get(string(key)); ok {
			return node, nil
		}
	}

	node := r.points[r.search(r.opts.hash.Sum32(key))].node

	if r.cache != nil {
		r.cache.Set(string(key), node)
	}
	return node, nil
}

// GetN returns up to n distinct nodes for key, walking clockwise from the
// owner. The first element equals Get(key).
func (r *Ring) GetN(key []byte, n int) ([]string, error) {
	start := time.Now()

	nodes, err := r.getN(key, n)

	r.opts.metrics.RecordLookup(time.Since(start), err)
	return nodes, err
}

func (r *Ring) getN(key []byte, n int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.points) == 0 {
		return nil, ErrEmptyRing
	}
	n = min(n, len(r.nodes))
	if n <= 0 {
		return nil, nil
	}

	res := make([]string, 0, n)
	i := r.search(r.opts.hash.Sum32(key))
	for range r.points {
		node := r.points[i].node
		if !slices.Contains(res, node) {
			res = append(res, node)
			if len(res) == n {
				break
			}
		}
		if i++; i == len(r.points) {
			i = 0
		}
	}
	return res, nil
}

// Members returns the node names in sorted order.
func (r *Ring) Members() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.nodes))
}

// Nodes returns the members with their weights, sorted by name.
func (r *Ring) Nodes() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nodes := slices.Collect(maps.Values(r.nodes))
	slices.SortFunc(nodes, func(a, b Node) int { return strings.Compare(a.Name, b.Name) })
	return nodes
}

// Len returns the number of points on the ring.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.points)
}
