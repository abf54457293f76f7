// Package xml provides an XML codec for enum descriptors.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/enum"
)

var _ enum.Codec = (*xmlCodec)(nil)

// xmlCodec implements enum.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() enum.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML. Descriptors encode as an <enum> element with one
// <member> child per declared member.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
