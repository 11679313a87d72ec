// Package codec centralizes the encoding of machine-readable reports.
//
// The CLI writes one JSON document per line with --format=json; the codec
// chosen here decides how those lines are produced. Both codecs leave HTML
// characters unescaped so blob names appear in reports exactly as listed.
package codec

import (
	"fmt"
	"io"
)

// Codec encodes and decodes report records.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// LineEncoder is implemented by codecs that can write a record and its
// trailing newline straight to w.
type LineEncoder interface {
	EncodeLine(w io.Writer, v any) error
}

// Default is the codec used by the CLI.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal panics if v cannot be encoded. Used by tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s: %w", c.Name(), err))
	}
	return b
}

// WriteLine writes v encoded with c (Default if nil) to w, followed by a
// newline.
func WriteLine(w io.Writer, c Codec, v any) error {
	if c == nil {
		c = Default
	}
	if le, ok := c.(LineEncoder); ok {
		return le.EncodeLine(w, v)
	}

	b, err := c.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
