package enum

import (
	"context"
	"encoding/xml"
	"time"
)

// Descriptor is the serializable form of a Type's declaration.
type Descriptor[V Integer] struct {
	XMLName   xml.Name              `json:"-" yaml:"-" msgpack:"-" bson:"-" xml:"enum"`
	Name      string                `json:"name" yaml:"name" msgpack:"name" bson:"name" xml:"name,attr" hcl:"name"`
	Flags     bool                  `json:"flags,omitempty" yaml:"flags,omitempty" msgpack:"flags,omitempty" bson:"flags,omitempty" xml:"flags,attr,omitempty" hcl:"flags,optional"`
	Separator string                `json:"separator,omitempty" yaml:"separator,omitempty" msgpack:"separator,omitempty" bson:"separator,omitempty" xml:"separator,attr,omitempty" hcl:"separator,optional"`
	Members   []MemberDescriptor[V] `json:"members" yaml:"members" msgpack:"members" bson:"members" xml:"member" hcl:"member,block"`
}

// MemberDescriptor is the serializable form of a declared member.
type MemberDescriptor[V Integer] struct {
	Name    string `json:"name" yaml:"name" msgpack:"name" bson:"name" xml:"name,attr" hcl:"name,label"`
	Value   V      `json:"value" yaml:"value" msgpack:"value" bson:"value" xml:"value,attr" hcl:"value,optional"`
	Display string `json:"display,omitempty" yaml:"display,omitempty" msgpack:"display,omitempty" bson:"display,omitempty" xml:",chardata" hcl:"display,optional"`
}

// Describe returns t's declaration with display defaults applied.
func (t *Type[V]) Describe() Descriptor[V] {
	d := Descriptor[V]{
		Name:      t.name,
		Flags:     t.flags,
		Separator: t.separator,
		Members:   make([]MemberDescriptor[V], 0, len(t.decls)),
	}
	for _, m := range t.registry() {
		d.Members = append(d.Members, MemberDescriptor[V]{
			Name:    m.name,
			Value:   m.raw,
			Display: m.display,
		})
	}
	return d
}

// Definition converts d back into a Definition.
func (d Descriptor[V]) Definition() Definition[V] {
	def := Definition[V]{
		Name:      d.Name,
		Flags:     d.Flags,
		Separator: d.Separator,
		Members:   make([]Decl[V], 0, len(d.Members)),
	}
	for _, m := range d.Members {
		def.Members = append(def.Members, Decl[V]{
			Name:    m.Name,
			Value:   m.Value,
			Display: m.Display,
		})
	}
	return def
}

// Export encodes t's Descriptor with c.
func (t *Type[V]) Export(c Codec) ([]byte, error) {
	start := time.Now()

	data, err := c.Marshal(t.Describe())
	if err != nil {
		err = newCodecError(ErrMarshal, err)
		emitExportComplete(context.Background(), c.ContentType(), t.name, 0, time.Since(start), err)
		return nil, err
	}

	emitExportComplete(context.Background(), c.ContentType(), t.name, len(data), time.Since(start), nil)
	return data, nil
}

// Import decodes a Descriptor with c and returns a new Type built from it.
// The Definition is validated exactly as New validates it.
func Import[V Integer](c Codec, data []byte) (*Type[V], error) {
	start := time.Now()

	var d Descriptor[V]
	if err := c.Unmarshal(data, &d); err != nil {
		err = newCodecError(ErrUnmarshal, err)
		emitImportComplete(context.Background(), c.ContentType(), "", len(data), time.Since(start), err)
		return nil, err
	}

	t, err := New(d.Definition())
	emitImportComplete(context.Background(), c.ContentType(), d.Name, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return t, nil
}
