package enum

import (
	"context"
	"strings"
)

// Format returns the display text of m.
//
// For a non-flag type this is m's display text, or the type name when that is
// empty. For a flag set, a declared member with exactly m's raw value formats
// as that member's display text. Otherwise the non-zero members whose bits are
// all set in m are joined with the separator in declaration order, each raw
// value at most once. A value containing no declared flag keeps its own
// display text.
func (t *Type[V]) Format(m Member[V]) string {
	t.registry()
	return t.format(m)
}

// format assumes the registry is built.
func (t *Type[V]) format(m Member[V]) string {
	if !t.flags {
		if m.display != "" {
			return m.display
		}
		return t.name
	}

	if i, ok := t.byRaw[m.raw]; ok {
		return t.members[i].display
	}

	var (
		parts []string
		seen  = make(map[V]struct{})
	)
	for _, e := range t.members {
		if e.raw == 0 || m.raw&e.raw != e.raw {
			continue
		}
		if _, dup := seen[e.raw]; dup {
			continue
		}
		seen[e.raw] = struct{}{}
		parts = append(parts, e.display)
	}
	if len(parts) > 0 {
		return strings.Join(parts, t.separator)
	}
	if m.display != "" {
		return m.display
	}
	return rawText(m.raw)
}

// Parse returns the member whose formatted text is text.
//
// For a flag set, text is split on the separator without trimming and every
// token must match a member; the matches are combined with Or from left to
// right. Parse fails with a *ParseError wrapping ErrNotFound if the text, or
// any token, matches nothing, and returns the zero Member in that case. Empty
// text never parses since no member formats as "".
func (t *Type[V]) Parse(text string) (Member[V], error) {
	members := t.registry()

	if !t.flags {
		if i, ok := t.byText[text]; ok {
			return members[i], nil
		}
		return Member[V]{}, t.parseFailed(text, "")
	}

	var (
		result Member[V]
		found  bool
	)
	for _, token := range strings.Split(text, t.separator) {
		i, ok := t.byText[token]
		if !ok {
			return Member[V]{}, t.parseFailed(text, token)
		}
		if !found {
			result, found = members[i], true
			continue
		}
		result = t.Or(result, members[i])
	}
	return result, nil
}

// MustParse is like Parse but panics on error.
func (t *Type[V]) MustParse(text string) Member[V] {
	m, err := t.Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}

func (t *Type[V]) parseFailed(text, token string) error {
	err := newParseError(ErrNotFound, t.name, text, token)
	emitParseFailed(context.Background(), t.name, text, err)
	return err
}
