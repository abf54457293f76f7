// Package testing provides fixtures and assertions for code built on enum.
package testing

import (
	"iter"
	gotesting "testing"

	"github.com/zoobzio/enum"
)

// Permission is a flag set with a declared zero member and a multi-bit alias.
type Permission struct{}

// Definition implements enum.Declarer.
func (Permission) Definition() enum.Definition[uint8] {
	return enum.Definition[uint8]{
		Name:  "Permission",
		Flags: true,
		Members: []enum.Decl[uint8]{
			enum.Item[uint8]("None", 0),
			enum.Item[uint8]("Read", 1),
			enum.Item[uint8]("Write", 2),
			enum.Item[uint8]("Execute", 4),
			enum.Item[uint8]("ReadWrite", 3).Labeled("RW"),
		},
	}
}

// Level is a signed enumeration with a negative member.
type Level struct{}

// Definition implements enum.Declarer.
func (Level) Definition() enum.Definition[int8] {
	return enum.Definition[int8]{
		Name: "Level",
		Members: []enum.Decl[int8]{
			enum.Item[int8]("Debug", -1),
			enum.Item[int8]("Info", 0),
			enum.Item[int8]("Warn", 1),
			enum.Item[int8]("Error", 2),
		},
	}
}

// Color is a plain enumeration with a display label.
type Color struct{}

// Definition implements enum.Declarer.
func (Color) Definition() enum.Definition[int] {
	return enum.Definition[int]{
		Name: "Color",
		Members: []enum.Decl[int]{
			enum.Item("Red", 1),
			enum.Item("Green", 2),
			enum.Item("DarkBlue", 3).Labeled("Dark Blue"),
		},
	}
}

// MustType builds def, failing tb on error.
func MustType[V enum.Integer](tb gotesting.TB, def enum.Definition[V]) *enum.Type[V] {
	tb.Helper()
	t, err := enum.New(def)
	if err != nil {
		tb.Fatalf("New(%s) error: %v", def.Name, err)
	}
	return t
}

// Combinations yields t.FromRaw of the OR of every subset of t's nonzero
// members. The empty subset is yielded only when t declares a zero member,
// since a transient zero formats as "0" and does not parse back.
func Combinations[V enum.Integer](t *enum.Type[V]) iter.Seq[enum.Member[V]] {
	var (
		flags   []V
		hasZero bool
	)
	for m := range t.All() {
		if m.Raw() == 0 {
			hasZero = true
			continue
		}
		flags = append(flags, m.Raw())
	}
	start := 1
	if hasZero {
		start = 0
	}
	return func(yield func(enum.Member[V]) bool) {
		for mask := start; mask < 1<<len(flags); mask++ {
			var raw V
			for i, f := range flags {
				if mask&(1<<i) != 0 {
					raw |= f
				}
			}
			if !yield(t.FromRaw(raw)) {
				return
			}
		}
	}
}

// RequireRoundTrip exports t with c, imports the result, and fails tb unless
// the imported Type declares exactly what t declares.
func RequireRoundTrip[V enum.Integer](tb gotesting.TB, t *enum.Type[V], c enum.Codec) *enum.Type[V] {
	tb.Helper()

	data, err := t.Export(c)
	if err != nil {
		tb.Fatalf("Export(%s) error: %v", c.ContentType(), err)
	}

	imported, err := enum.Import[V](c, data)
	if err != nil {
		tb.Fatalf("Import(%s) error: %v\n%s", c.ContentType(), err, data)
	}

	if got, want := imported.Fingerprint(), t.Fingerprint(); got != want {
		tb.Fatalf("%s round trip changed the declaration:\ngot  %+v\nwant %+v", c.ContentType(), imported.Describe(), t.Describe())
	}
	return imported
}

// RequireTextRoundTrip fails tb unless every member m yields m again, by raw
// value, through Format and Parse.
func RequireTextRoundTrip[V enum.Integer](tb gotesting.TB, t *enum.Type[V], members iter.Seq[enum.Member[V]]) {
	tb.Helper()
	for m := range members {
		text := t.Format(m)
		parsed, err := t.Parse(text)
		if err != nil {
			tb.Errorf("Parse(%q) error: %v", text, err)
			continue
		}
		if parsed.Raw() != m.Raw() {
			tb.Errorf("Parse(Format(%v)) = %v, want %v", m.Raw(), parsed.Raw(), m.Raw())
		}
	}
}
