// Package ring implements a weighted consistent-hash ring.
//
// The default placement follows libketama: each node owns 160 points per
// unit of weight, taken four at a time from the MD5 digest of "<name>-<i>".
// A key belongs to the first point at or after its hash, wrapping around.
// Rings built from the same members therefore agree with memcached clients
// that use Ketama.
//
//	r := ring.New(ring.WithLookupCache(10000))
//	r.Set(ring.Node{Name: "10.0.0.1:11211"}, ring.Node{Name: "10.0.0.2:11211", Weight: 2})
//	node, err := r.Get([]byte("user:42"))
//
// City32 and Murmur32 place one point per replica instead.
package ring
