package enum

// And returns the member for a.Raw() & b.Raw().
func (t *Type[V]) And(a, b Member[V]) Member[V] { return t.FromRaw(a.raw & b.raw) }

// Or returns the member for a.Raw() | b.Raw().
func (t *Type[V]) Or(a, b Member[V]) Member[V] { return t.FromRaw(a.raw | b.raw) }

// Xor returns the member for a.Raw() ^ b.Raw().
func (t *Type[V]) Xor(a, b Member[V]) Member[V] { return t.FromRaw(a.raw ^ b.raw) }

// Not returns the member for the bitwise complement of a.Raw().
func (t *Type[V]) Not(a Member[V]) Member[V] { return t.FromRaw(^a.raw) }

// Combine ORs members left to right. With no members it returns FromRaw(0).
func (t *Type[V]) Combine(members ...Member[V]) Member[V] {
	var raw V
	for _, m := range members {
		raw |= m.raw
	}
	return t.FromRaw(raw)
}

// And is shorthand for m.Type().And(m, o).
func (m Member[V]) And(o Member[V]) Member[V] { return m.apply(o, m.raw&o.raw) }

// Or is shorthand for m.Type().Or(m, o).
func (m Member[V]) Or(o Member[V]) Member[V] { return m.apply(o, m.raw|o.raw) }

// Xor is shorthand for m.Type().Xor(m, o).
func (m Member[V]) Xor(o Member[V]) Member[V] { return m.apply(o, m.raw^o.raw) }

// Not is shorthand for m.Type().Not(m).
func (m Member[V]) Not() Member[V] { return m.apply(m, ^m.raw) }

// Has reports whether every bit of flag is set in m.
func (m Member[V]) Has(flag Member[V]) bool { return m.raw&flag.raw == flag.raw }

// apply resolves raw through the first bound type of m and o.
func (m Member[V]) apply(o Member[V], raw V) Member[V] {
	t := m.typ
	if t == nil {
		t = o.typ
	}
	if t == nil {
		return Member[V]{raw: raw, display: rawText(raw)}
	}
	return t.FromRaw(raw)
}
