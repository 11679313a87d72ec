package city

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// ByteOrder selects how input words are loaded from the buffer.
type ByteOrder int

const (
	// LittleEndian always loads words least-significant byte first.
	// Outputs are identical on every platform.
	LittleEndian ByteOrder = iota
	// HostEndian loads words in the native order of the running CPU.
	// Outputs differ between big- and little-endian hosts.
	HostEndian
)

// String implements fmt.Stringer.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case HostEndian:
		return "host-endian"
	default:
		return "unknown"
	}
}

func (o ByteOrder) binary() binary.ByteOrder {
	if o == HostEndian && cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

type options struct {
	order ByteOrder
}

// Option configures a Hasher.
type Option func(*options)

// WithByteOrder sets the byte order used to load input words.
// The default is LittleEndian.
func WithByteOrder(o ByteOrder) Option {
	return func(opts *options) {
		opts.order = o
	}
}

// Hasher computes CityHash values with a fixed byte order.
// A Hasher holds no mutable state and is safe for concurrent use.
type Hasher struct {
	order     ByteOrder
	byteOrder binary.ByteOrder
}

// New returns a Hasher configured by opts.
func New(opts ...Option) *Hasher {
	o := options{order: LittleEndian}
	for _, fn := range opts {
		fn(&o)
	}
	return &Hasher{
		order:     o.order,
		byteOrder: o.order.binary(),
	}
}

// ByteOrder reports the configured byte order.
func (ch *Hasher) ByteOrder() ByteOrder {
	return ch.order
}
