// Package naming translates between the kebab-case identifiers used by
// callers of this library and the PascalCase names used by the Salesforce
// REST API, in both directions.
//
// Forward translation (ObjectName, FieldName) is a pure function of a single
// identifier and its context. Reverse translation operates on a batch of
// vendor names at once: a standard field and a custom field can share the
// same short form after stripping vendor decoration (e.g. "FooBar" and
// "FooBar__c"), so collisions are detected and disambiguated per batch.
package naming

import (
	"strings"
	"unicode"
)

const (
	// CustomMarker is the Salesforce suffix denoting a user-defined
	// (non-standard) object or field.
	CustomMarker = "__c"

	// DisambiguationMarker is appended to a canonical identifier when its
	// short form collides with another name in the same batch. It marks the
	// member whose vendor name carries no custom marker.
	DisambiguationMarker = "__s"
)

// Context selects which reference set suppresses the custom marker during
// forward translation.
type Context int

const (
	// ObjectContext checks names against the standard object set.
	ObjectContext Context = iota

	// FieldContext checks names against the system field set.
	FieldContext
)

// Name identifies a Salesforce object or field.
//
// An Ident is translated from kebab-case to the vendor's PascalCase form; a
// Literal passes through verbatim, letting callers supply an exact vendor
// name when the translation rules don't fit.
type Name interface {
	vendor(ctx Context) string
}

// Ident is a canonical kebab-case identifier, e.g. "foo-bar".
type Ident string

// Literal is an exact vendor name used as-is, e.g. "FooBar__c".
type Literal string

func (l Literal) vendor(Context) string { return string(l) }

func (id Ident) vendor(ctx Context) string {
	s := string(id)

	// A disambiguation-marked identifier names the non-custom member of a
	// collision pair, so the custom marker must not be re-applied.
	disambiguated := strings.HasSuffix(s, DisambiguationMarker)
	if disambiguated {
		s = strings.TrimSuffix(s, DisambiguationMarker)
	}

	var b strings.Builder
	for _, part := range strings.Split(s, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	name := b.String()

	if disambiguated || strings.HasSuffix(name, CustomMarker) {
		return name
	}
	switch ctx {
	case ObjectContext:
		if IsStandardObject(name) {
			return name
		}
	case FieldContext:
		if IsSystemField(name) {
			return name
		}
	}
	return name + CustomMarker
}

// ObjectName renders n as a vendor object name.
func ObjectName(n Name) string { return n.vendor(ObjectContext) }

// FieldName renders n as a vendor field name.
func FieldName(n Name) string { return n.vendor(FieldContext) }

// Reverse translates a batch of vendor names to canonical identifiers,
// one per input, in input order.
//
// Collision handling is scoped to the given batch only: when two names share
// a short form after stripping the custom marker, the custom-marked member
// keeps the clean short form and every unmarked member receives the
// disambiguation marker. Translating the same vendor name in a different
// batch may therefore yield a different canonical identifier.
func Reverse(names []string) []string {
	short := make([]string, len(names))
	clean := make([]string, len(names))
	groups := make(map[string][]int, len(names))
	for i, n := range names {
		short[i] = kebab(n)
		clean[i] = strings.TrimSuffix(short[i], CustomMarker)
		groups[clean[i]] = append(groups[clean[i]], i)
	}

	out := make([]string, len(names))
	for i, n := range names {
		switch {
		case len(groups[clean[i]]) == 1:
			out[i] = short[i]
		case strings.HasSuffix(n, CustomMarker):
			out[i] = clean[i]
		default:
			out[i] = clean[i] + DisambiguationMarker
		}
	}
	return out
}

// kebab splits a vendor name at uppercase boundaries and lowercases it:
// "FooBar__c" -> "foo-bar__c".
func kebab(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
