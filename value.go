package enum

// Value is a Member whose Type is fixed by the marker type D, so that a zero
// Value can decode itself. Use it for struct fields that pass through
// encoding/json, encoding/xml, YAML or MessagePack as text.
//
// The zero Value is the member for raw value zero.
type Value[D Declarer[V], V Integer] struct {
	m Member[V]
}

// ValueOf wraps m. A member of another Type is converted by raw value.
// It panics if D's Definition is invalid.
func ValueOf[D Declarer[V], V Integer](m Member[V]) Value[D, V] {
	t := MustUse[D, V]()
	if m.typ != t {
		m = t.FromRaw(m.raw)
	}
	return Value[D, V]{m: m}
}

// Member returns the wrapped member, bound to D's Type.
func (v Value[D, V]) Member() Member[V] {
	if v.m.typ != nil {
		return v.m
	}
	return MustUse[D, V]().FromRaw(v.m.raw)
}

// Raw returns the raw value.
func (v Value[D, V]) Raw() V { return v.m.raw }

// String formats the value.
func (v Value[D, V]) String() string { return v.Member().String() }

// MarshalText implements encoding.TextMarshaler.
func (v Value[D, V]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value[D, V]) UnmarshalText(text []byte) error {
	t, err := Use[D, V]()
	if err != nil {
		return err
	}
	m, err := t.Parse(string(text))
	if err != nil {
		return err
	}
	v.m = m
	return nil
}
