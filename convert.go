package enum

// FromRaw returns the member whose raw value is raw. When several members
// share the value, the first declared wins. When none does, FromRaw returns a
// transient member displaying the decimal value.
func (t *Type[V]) FromRaw(raw V) Member[V] {
	members := t.registry()
	if i, ok := t.byRaw[raw]; ok {
		return members[i]
	}
	return transient(t, raw)
}

// ToRaw returns m's raw value.
func (t *Type[V]) ToRaw(m Member[V]) V {
	return m.raw
}

// Canonicalize resolves m to its registry entry by identity. A member with no
// identity in t becomes a new transient member of t carrying m's raw value and
// display text. No raw value search is performed.
func (t *Type[V]) Canonicalize(m Member[V]) Member[V] {
	members := t.registry()
	if m.typ == t && m.id > 0 && m.id <= len(members) {
		return members[m.id-1]
	}
	return Member[V]{typ: t, raw: m.raw, display: m.display}
}
