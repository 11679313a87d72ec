package codec

import (
	"bytes"
	"encoding/json"
)

// JSON is the standard-library codec. It produces the same bytes as GoJSON
// for the records hashkit emits and serves as the reference in tests.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSON) Name() string { return "json" }
