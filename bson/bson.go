// Package bson provides a BSON codec for enum descriptors.
package bson

import (
	"github.com/zoobzio/enum"
	"go.mongodb.org/mongo-driver/bson"
)

var _ enum.Codec = (*bsonCodec)(nil)

// bsonCodec implements enum.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() enum.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document. v must be a struct or map, which a
// Descriptor always is.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes a BSON document into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
