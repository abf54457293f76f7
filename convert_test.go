package enum_test

import (
	"testing"

	"github.com/zoobzio/enum"
)

func TestFromRaw_Registered(t *testing.T) {
	colors := newColors(t)

	m := colors.FromRaw(2)
	if m.IsTransient() {
		t.Fatal("FromRaw(2) should resolve to a registry entry")
	}
	if !m.IdentityEquals(colors.MustMember("Green")) {
		t.Errorf("FromRaw(2) = %v, want Green", m)
	}
	if m.Type() != colors {
		t.Error("FromRaw() member should be bound to its Type")
	}
}

func TestFromRaw_Transient(t *testing.T) {
	colors := newColors(t)

	m := colors.FromRaw(42)
	if !m.IsTransient() {
		t.Fatal("FromRaw(42) should be transient")
	}
	if m.Raw() != 42 {
		t.Errorf("Raw() = %d, want 42", m.Raw())
	}
	if m.Display() != "42" || m.String() != "42" {
		t.Errorf("transient display = %q / %q, want %q", m.Display(), m.String(), "42")
	}
	if m.Name() != "" {
		t.Errorf("transient Name() = %q, want empty", m.Name())
	}
	if colors.Len() != 3 {
		t.Errorf("Len() = %d, transient members must not join the registry", colors.Len())
	}
}

func TestFromRaw_NegativeTransient(t *testing.T) {
	levels := enum.MustNew(enum.Definition[int16]{
		Name:    "Level",
		Members: []enum.Decl[int16]{enum.Item[int16]("Info", 0)},
	})
	if got := levels.FromRaw(-7).String(); got != "-7" {
		t.Errorf("FromRaw(-7).String() = %q, want %q", got, "-7")
	}
}

func TestFromRaw_SharedValueFirstWins(t *testing.T) {
	statuses := enum.MustNew(enum.Definition[int]{
		Name: "Status",
		Members: []enum.Decl[int]{
			enum.Item("Active", 1),
			enum.Item("Enabled", 1),
			enum.Item("Disabled", 2),
		},
	})

	m := statuses.FromRaw(1)
	if m.Name() != "Active" {
		t.Errorf("FromRaw(1).Name() = %q, want the first declared %q", m.Name(), "Active")
	}
	if statuses.Len() != 3 {
		t.Errorf("Len() = %d, members sharing a raw value are all registered", statuses.Len())
	}
}

func TestFromRaw_TransientsAreNotIdentical(t *testing.T) {
	colors := newColors(t)

	a := colors.FromRaw(9)
	b := colors.FromRaw(9)

	if !a.ValueEquals(b) {
		t.Error("transients for the same raw value should be value-equal")
	}
	if a.IdentityEquals(b) {
		t.Error("transients have no registry identity")
	}
}

func TestToRaw(t *testing.T) {
	colors := newColors(t)

	tests := []enum.Member[int]{
		colors.MustMember("Red"),
		colors.FromRaw(3),
		colors.FromRaw(100),
	}
	for _, m := range tests {
		if colors.ToRaw(m) != m.Raw() {
			t.Errorf("ToRaw(%v) = %d, want %d", m, colors.ToRaw(m), m.Raw())
		}
	}
}

func TestCanonicalize_RegistryEntry(t *testing.T) {
	statuses := enum.MustNew(enum.Definition[int]{
		Name: "Status",
		Members: []enum.Decl[int]{
			enum.Item("Active", 1),
			enum.Item("Enabled", 1),
		},
	})

	enabled := statuses.MustMember("Enabled")
	got := statuses.Canonicalize(enabled)

	// Resolution is by identity, so Enabled stays Enabled even though
	// FromRaw(1) would return Active.
	if !got.IdentityEquals(enabled) {
		t.Errorf("Canonicalize(Enabled) = %q, want Enabled", got.Name())
	}
}

func TestCanonicalize_Transient(t *testing.T) {
	colors := newColors(t)

	m := colors.Canonicalize(colors.FromRaw(77))
	if !m.IsTransient() || m.Raw() != 77 || m.Display() != "77" {
		t.Errorf("Canonicalize(transient) = (%v, %d, %q), want a transient copy", m.IsTransient(), m.Raw(), m.Display())
	}
	if m.Type() != colors {
		t.Error("Canonicalize() should bind the copy to the Type")
	}
}

func TestCanonicalize_ForeignMember(t *testing.T) {
	colors := newColors(t)
	other := newColors(t)

	red := other.MustMember("Red")
	m := colors.Canonicalize(red)

	// A member of another Type has no identity here and is copied, not
	// searched for by raw value.
	if !m.IsTransient() {
		t.Error("Canonicalize(foreign member) should be transient")
	}
	if m.Raw() != 1 || m.Display() != "Red" {
		t.Errorf("Canonicalize(foreign) = (%d, %q), want (1, %q)", m.Raw(), m.Display(), "Red")
	}
	if m.Type() != colors {
		t.Error("Canonicalize() should bind the copy to the receiving Type")
	}
}

func TestCanonicalize_ZeroMember(t *testing.T) {
	colors := newColors(t)

	var zero enum.Member[int]
	m := colors.Canonicalize(zero)
	if !m.IsTransient() || m.Raw() != 0 {
		t.Errorf("Canonicalize(zero) = (%v, %d), want transient 0", m.IsTransient(), m.Raw())
	}
}
