package enum

import (
	"cmp"
	"strconv"
)

// Member is one value of an enumeration Type.
//
// Members are immutable values. A member returned from the registry carries
// an identity; a transient member (produced by FromRaw or flag algebra for a
// raw value no member declares) does not. The zero Member is transient and
// bound to no Type.
type Member[V Integer] struct {
	typ     *Type[V]
	id      int // 1-based declaration ordinal; 0 for transient members
	name    string
	raw     V
	display string
}

// transient returns an unregistered member of t for raw.
func transient[V Integer](t *Type[V], raw V) Member[V] {
	return Member[V]{typ: t, raw: raw, display: rawText(raw)}
}

// rawText is the decimal text form of a raw value.
func rawText[V Integer](raw V) string {
	if raw < 0 {
		return strconv.FormatInt(int64(raw), 10)
	}
	return strconv.FormatUint(uint64(raw), 10)
}

// Raw returns the member's raw value.
func (m Member[V]) Raw() V { return m.raw }

// Name returns the declared member name, or "" for a transient member.
func (m Member[V]) Name() string { return m.name }

// Display returns the display text the member was built with.
// For a flag set, String may differ when the value decomposes.
func (m Member[V]) Display() string { return m.display }

// Type returns the member's type, or nil for the zero Member.
func (m Member[V]) Type() *Type[V] { return m.typ }

// IsTransient reports whether the member has no registry identity.
func (m Member[V]) IsTransient() bool { return m.id == 0 }

// String formats the member with its type's text codec.
func (m Member[V]) String() string {
	if m.typ == nil {
		if m.display != "" {
			return m.display
		}
		return rawText(m.raw)
	}
	return m.typ.Format(m)
}

// Compare returns -1, 0 or +1 comparing raw values.
func (m Member[V]) Compare(o Member[V]) int { return cmp.Compare(m.raw, o.raw) }

// CompareRaw returns -1, 0 or +1 comparing m's raw value with v.
func (m Member[V]) CompareRaw(v V) int { return cmp.Compare(m.raw, v) }

// Less reports whether m orders before o.
func (m Member[V]) Less(o Member[V]) bool { return m.raw < o.raw }

// LessEqual reports whether m orders before or with o.
func (m Member[V]) LessEqual(o Member[V]) bool { return m.raw <= o.raw }

// Greater reports whether m orders after o.
func (m Member[V]) Greater(o Member[V]) bool { return m.raw > o.raw }

// GreaterEqual reports whether m orders after or with o.
func (m Member[V]) GreaterEqual(o Member[V]) bool { return m.raw >= o.raw }

// Equal reports whether m and o have the same raw value.
// It agrees with Compare; use IdentityEquals to tell apart members that share
// a raw value.
func (m Member[V]) Equal(o Member[V]) bool { return m.ValueEquals(o) }

// ValueEquals reports whether m and o have the same raw value.
func (m Member[V]) ValueEquals(o Member[V]) bool { return m.raw == o.raw }

// IdentityEquals reports whether m and o are the same declared member of the
// same Type. Transient members have no identity and are never
// identity-equal, not even to themselves.
func (m Member[V]) IdentityEquals(o Member[V]) bool {
	return m.id != 0 && m.id == o.id && m.typ == o.typ
}

// MarshalText implements encoding.TextMarshaler.
func (m Member[V]) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver must already
// be bound to a Type (for example a member obtained from that Type); use Value
// for fields that start out zero.
func (m *Member[V]) UnmarshalText(text []byte) error {
	if m.typ == nil {
		return newParseError(ErrUnbound, "", string(text), "")
	}
	parsed, err := m.typ.Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
