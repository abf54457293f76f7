package enum_test

import (
	"testing"

	"github.com/zoobzio/enum"
)

// permissionDef is a flag set with a declared zero member.
func permissionDef() enum.Definition[uint8] {
	return enum.Definition[uint8]{
		Name:  "Permission",
		Flags: true,
		Members: []enum.Decl[uint8]{
			{Name: "None"},
			enum.Item[uint8]("Read", 1),
			enum.Item[uint8]("Write", 2),
			enum.Item[uint8]("Execute", 4),
		},
	}
}

// colorDef is a plain enumeration.
func colorDef() enum.Definition[int] {
	return enum.Definition[int]{
		Name: "Color",
		Members: []enum.Decl[int]{
			enum.Item("Red", 1),
			enum.Item("Green", 2),
			enum.Item("DarkBlue", 3).Labeled("Dark Blue"),
		},
	}
}

func newPermissions(t testing.TB) *enum.Type[uint8] {
	t.Helper()
	typ, err := enum.New(permissionDef())
	if err != nil {
		t.Fatalf("New(Permission) error: %v", err)
	}
	return typ
}

func newColors(t testing.TB) *enum.Type[int] {
	t.Helper()
	typ, err := enum.New(colorDef())
	if err != nil {
		t.Fatalf("New(Color) error: %v", err)
	}
	return typ
}

// Permission is a Declarer marker for Use and Value.
type Permission struct{}

func (Permission) Definition() enum.Definition[uint8] { return permissionDef() }

// Color is a Declarer marker for Use and Value.
type Color struct{}

func (Color) Definition() enum.Definition[int] { return colorDef() }
