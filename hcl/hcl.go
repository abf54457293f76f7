// Package hcl provides an HCL native syntax codec for enum descriptors.
//
// A descriptor reads naturally as an HCL file:
//
//	name  = "Permission"
//	flags = true
//
//	member "None" {}
//	member "Read" { value = 1 }
//	member "Write" {
//	  value   = 2
//	  display = "Write Access"
//	}
package hcl

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zoobzio/enum"
)

var _ enum.Codec = (*hclCodec)(nil)

// filename tells hclsimple to use native syntax; it also appears in
// diagnostics.
const filename = "descriptor.hcl"

// hclCodec implements enum.Codec for HCL.
type hclCodec struct{}

// New returns an HCL codec.
func New() enum.Codec {
	return &hclCodec{}
}

// ContentType returns the MIME type for HCL.
func (c *hclCodec) ContentType() string {
	return "application/hcl"
}

// Marshal encodes v, a struct with hcl tags or a pointer to one, as an HCL
// body.
func (c *hclCodec) Marshal(v any) (data []byte, err error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("hcl: cannot encode %T, want struct", v)
	}

	// gohcl panics on tags it cannot encode.
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("hcl: encode %T: %v", v, r)
		}
	}()

	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(rv.Interface(), f.Body())
	return f.Bytes(), nil
}

// Unmarshal decodes HCL data into v.
func (c *hclCodec) Unmarshal(data []byte, v any) error {
	return hclsimple.Decode(filename, data, nil, v)
}
