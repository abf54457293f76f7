// Package enum provides extensible, strongly typed enumerations with custom
// display text and flag-set composition.
//
// An enumeration is a closed set of named members. Each member carries an
// integer raw value, which orders and combines it, and a display string,
// which is what it prints as and parses from.
//
// # Declaring a Type
//
// Members are declared explicitly with a Definition:
//
//	var Colors = enum.MustNew(enum.Definition[int]{
//	    Name: "Color",
//	    Members: []enum.Decl[int]{
//	        enum.Item("Red", 1),
//	        enum.Item("Green", 2),
//	        enum.Item("DarkBlue", 3).Labeled("Dark Blue"),
//	    },
//	})
//
//	red := Colors.MustMember("Red")
//	c, err := Colors.Parse("Dark Blue")
//
// The registry behind a Type is built lazily on first use, exactly once,
// even when first use happens on several goroutines at the same time.
//
// # Flag Sets
//
// A Definition with Flags set is a flag set. Its members combine with
// And/Or/Xor/Not, and values that match no single member format as the
// members they contain joined by the separator (", " unless configured):
//
//	var Perms = enum.MustNew(enum.Definition[uint8]{
//	    Name:  "Permission",
//	    Flags: true,
//	    Members: []enum.Decl[uint8]{
//	        {Name: "None"},
//	        enum.Item[uint8]("Read", 1),
//	        enum.Item[uint8]("Write", 2),
//	    },
//	})
//
//	rw := Perms.FromRaw(3)             // "Read, Write"
//	p, _ := Perms.Parse("Read, Write") // raw value 3
//
// Display strings of a flag set may not contain the separator; New rejects
// such a declaration so every formatted value parses back.
//
// # Transient Members
//
// Converting a raw value that no member declares, or combining flags into a
// value no member declares, yields a transient member: same type, same raw
// value, display text equal to the decimal raw value, but no identity in the
// registry. Transient members are never added to the registry.
//
// # Equality
//
// Equal and Compare are defined by raw value. IdentityEquals reports whether
// two members are the same declared member, which matters when several
// members share a raw value.
//
// # Typed Values
//
// For struct fields that must decode from text, implement Declarer on a
// marker type and use Value:
//
//	type Permission struct{}
//
//	func (Permission) Definition() enum.Definition[uint8] { return permDef }
//
//	type Grant struct {
//	    Perms enum.Value[Permission, uint8] `json:"perms"`
//	}
//
// # Descriptors
//
// A Type can be exported to and imported from any Codec as a Descriptor.
// The following codec implementations are available as submodules:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//   - hcl - HCL native syntax (application/hcl)
package enum

// Integer is the set of raw value types. Every member is backed by one of
// these, which provides total ordering, equality and bitwise operators.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// DefaultSeparator joins the members of a decomposed flag value.
const DefaultSeparator = ", "

// Definition declares an enumeration type.
type Definition[V Integer] struct {
	// Name identifies the type in errors and events. Non-flag members with
	// empty display text format as Name.
	Name string

	// Flags marks the type as a flag set.
	Flags bool

	// Separator joins decomposed flags when formatting and splits text when
	// parsing. Empty means DefaultSeparator. Ignored unless Flags is set.
	Separator string

	// Members in declaration order.
	Members []Decl[V]
}

// Decl declares a single member.
type Decl[V Integer] struct {
	Name    string // required, unique within the type
	Value   V      // raw value; zero when omitted
	Display string // display text; Name when omitted
}

// Item declares a member with an explicit raw value.
func Item[V Integer](name string, value V) Decl[V] {
	return Decl[V]{Name: name, Value: value}
}

// Labeled returns a copy of d with explicit display text.
func (d Decl[V]) Labeled(display string) Decl[V] {
	d.Display = display
	return d
}

// Declarer is implemented by marker types that own a Definition.
// See Use and Value.
type Declarer[V Integer] interface {
	Definition() Definition[V]
}
