package enum

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"
	"time"
)

// Type is an enumeration type and owns its member registry.
//
// A Type is created by New from a Definition. Its registry is built on first
// use and is immutable afterwards, so a Type is safe for concurrent use.
type Type[V Integer] struct {
	name      string
	flags     bool
	separator string
	decls     []Decl[V]

	// Registry state (built once on first operation)
	buildOnce sync.Once
	members   []Member[V]    // declaration order; identity i+1 lives at index i
	byRaw     map[V]int      // first member per raw value
	byText    map[string]int // first member per formatted text
	byName    map[string]int // member per declared name
}

// New validates def and returns its Type.
//
// The registry is not built until the first operation on the Type. New fails
// with a *ConfigError when the type or a member has no name, when two members
// share a name, or when a flag member's display text contains the separator.
func New[V Integer](def Definition[V]) (*Type[V], error) {
	if def.Name == "" {
		return nil, newConfigError(ErrInvalidDefinition, "", "")
	}

	t := &Type[V]{
		name:  def.Name,
		flags: def.Flags,
		decls: append([]Decl[V](nil), def.Members...),
	}
	if t.flags {
		t.separator = def.Separator
		if t.separator == "" {
			t.separator = DefaultSeparator
		}
	}

	seen := make(map[string]struct{}, len(t.decls))
	for i, d := range t.decls {
		if d.Name == "" {
			return nil, newConfigError(ErrInvalidDefinition, t.name, fmt.Sprintf("#%d", i))
		}
		if _, dup := seen[d.Name]; dup {
			return nil, newConfigError(ErrDuplicateMember, t.name, d.Name)
		}
		seen[d.Name] = struct{}{}

		if t.flags && strings.Contains(displayOf(d), t.separator) {
			return nil, newConfigError(ErrSeparatorInDisplay, t.name, d.Name)
		}
	}

	emitTypeDefined(context.Background(), t.name, t.separator, len(t.decls))
	return t, nil
}

// MustNew is like New but panics on error. Useful for package-level vars.
func MustNew[V Integer](def Definition[V]) *Type[V] {
	t, err := New(def)
	if err != nil {
		panic(err)
	}
	return t
}

// displayOf applies the display default.
func displayOf[V Integer](d Decl[V]) string {
	if d.Display == "" {
		return d.Name
	}
	return d.Display
}

// registry builds the member table once and returns it.
func (t *Type[V]) registry() []Member[V] {
	t.buildOnce.Do(t.build)
	return t.members
}

func (t *Type[V]) build() {
	start := time.Now()

	members := make([]Member[V], len(t.decls))
	byRaw := make(map[V]int, len(t.decls))
	byName := make(map[string]int, len(t.decls))
	for i, d := range t.decls {
		members[i] = Member[V]{
			typ:     t,
			id:      i + 1,
			name:    d.Name,
			raw:     d.Value,
			display: displayOf(d),
		}
		if _, ok := byRaw[d.Value]; !ok {
			byRaw[d.Value] = i
		}
		byName[d.Name] = i
	}
	t.members = members
	t.byRaw = byRaw
	t.byName = byName

	// Formatting needs members and byRaw in place.
	byText := make(map[string]int, len(members))
	for i, m := range members {
		text := t.format(m)
		if _, ok := byText[text]; !ok {
			byText[text] = i
		}
	}
	t.byText = byText

	emitRegistryBuilt(context.Background(), t.name, len(members), time.Since(start))
}

// Name returns the type name.
func (t *Type[V]) Name() string { return t.name }

// IsFlags reports whether the type is a flag set.
func (t *Type[V]) IsFlags() bool { return t.flags }

// Separator returns the flag separator, or "" for non-flag types.
func (t *Type[V]) Separator() string { return t.separator }

// Len returns the number of declared members.
func (t *Type[V]) Len() int { return len(t.registry()) }

// Members returns all declared members in declaration order.
// The slice is a fresh copy on every call.
func (t *Type[V]) Members() []Member[V] {
	members := t.registry()
	out := make([]Member[V], len(members))
	copy(out, members)
	return out
}

// All returns a sequence over the declared members in declaration order.
// The sequence may be iterated any number of times.
func (t *Type[V]) All() iter.Seq[Member[V]] {
	return func(yield func(Member[V]) bool) {
		for _, m := range t.registry() {
			if !yield(m) {
				return
			}
		}
	}
}

// Member returns the member declared under name.
func (t *Type[V]) Member(name string) (Member[V], bool) {
	members := t.registry()
	i, ok := t.byName[name]
	if !ok {
		return Member[V]{}, false
	}
	return members[i], true
}

// MustMember is like Member but panics when name is not declared.
func (t *Type[V]) MustMember(name string) Member[V] {
	m, ok := t.Member(name)
	if !ok {
		panic(newConfigError(ErrNotFound, t.name, name))
	}
	return m
}

// String returns the type name.
func (t *Type[V]) String() string { return t.name }
