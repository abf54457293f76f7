// Package json provides a JSON codec for enum descriptors.
package json

import (
	"encoding/json"

	"github.com/zoobzio/enum"
)

var _ enum.Codec = (*jsonCodec)(nil)

// jsonCodec implements enum.Codec for JSON.
type jsonCodec struct {
	indent string
}

// New returns a compact JSON codec.
func New() enum.Codec {
	return &jsonCodec{}
}

// NewIndent returns a JSON codec that indents nested values with indent,
// which suits descriptors checked into a repository.
func NewIndent(indent string) enum.Codec {
	return &jsonCodec{indent: indent}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent != "" {
		return json.MarshalIndent(v, "", c.indent)
	}
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
