package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies a compressed container format.
type Format uint8

const (
	// FormatNone indicates data that is not in a recognized container.
	FormatNone Format = iota
	// FormatGzip is RFC 1952 gzip.
	FormatGzip
	// FormatZstd is a Zstandard frame.
	FormatZstd
	// FormatLZ4 is an LZ4 frame (not a raw LZ4 block).
	FormatLZ4
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	case FormatLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ErrTooLarge is returned when decoded output would exceed the caller's limit.
var ErrTooLarge = errors.New("compress: decoded size exceeds limit")

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect sniffs the container format from the leading magic bytes.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicZstd):
		return FormatZstd
	case bytes.HasPrefix(data, magicGzip):
		return FormatGzip
	case bytes.HasPrefix(data, magicLZ4):
		return FormatLZ4
	default:
		return FormatNone
	}
}

var zstdDecoderPool sync.Pool

func getZstdDecoder(r io.Reader) (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		dec := v.(*zstd.Decoder)
		if err := dec.Reset(r); err != nil {
			return nil, err
		}
		return dec, nil
	}
	return zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Decode detects the format of data and returns the decoded payload.
// Data in no recognized format is returned as is with FormatNone.
// If limit > 0, decoding stops with ErrTooLarge once the output would
// exceed limit bytes.
func Decode(data []byte, limit int64) ([]byte, Format, error) {
	format := Detect(data)
	src := bytes.NewReader(data)

	var (
		r   io.Reader
		out []byte
		err error
	)

	switch format {
	case FormatNone:
		return data, FormatNone, nil
	case FormatGzip:
		var zr *gzip.Reader
		zr, err = gzip.NewReader(src)
		if err != nil {
			return nil, format, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		r = zr
	case FormatZstd:
		var dec *zstd.Decoder
		dec, err = getZstdDecoder(src)
		if err != nil {
			return nil, format, fmt.Errorf("zstd: %w", err)
		}
		defer putZstdDecoder(dec)
		r = dec
	case FormatLZ4:
		r = lz4.NewReader(src)
	}

	out, err = readLimited(r, limit)
	if err != nil {
		if errors.Is(err, ErrTooLarge) {
			return nil, format, err
		}
		return nil, format, fmt.Errorf("%s: %w", format, err)
	}
	return out, format, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		return nil, ErrTooLarge
	}
	return out, nil
}

// Encode compresses data into the given container format.
func Encode(data []byte, format Format) ([]byte, error) {
	var buf bytes.Buffer

	var w io.WriteCloser
	switch format {
	case FormatNone:
		return data, nil
	case FormatGzip:
		w = gzip.NewWriter(&buf)
	case FormatZstd:
		enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		w = enc
	case FormatLZ4:
		w = lz4.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("compress: unknown format %d", format)
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
