package client

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/crmkit/sforce/pkg/naming"
	"github.com/crmkit/sforce/pkg/session"
)

// Condition constrains one field in a generated where clause.
type Condition interface {
	render(field string) string
}

type equalsCond struct{ value any }

type opCond struct {
	op    string
	value any
}

type literalCond struct{ raw string }

// Equals matches a field against a value: strings are quoted, other scalars
// are rendered verbatim.
func Equals(value any) Condition { return equalsCond{value} }

// Op matches a field using an explicit SOQL operator, e.g. Op(">", 100) or
// Op("like", "Acme%").
func Op(operator string, value any) Condition { return opCond{operator, value} }

// Literal matches a field against a raw right-hand side inserted without
// quoting, e.g. Literal("LAST_N_DAYS:30").
func Literal(raw string) Condition { return literalCond{raw} }

func (c equalsCond) render(field string) string {
	return field + " = " + renderValue(c.value)
}

func (c opCond) render(field string) string {
	return field + " " + c.op + " " + renderValue(c.value)
}

func (c literalCond) render(field string) string {
	return field + " = " + c.raw
}

func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
	}
	return fmt.Sprintf("%v", v)
}

// fieldRef resolves a condition key. Canonical identifiers are all
// lowercase, so a key carrying an uppercase letter is taken as an exact
// vendor name - the same escape hatch Literal provides for the field list.
func fieldRef(key string) naming.Name {
	if strings.ToLower(key) != key {
		return naming.Literal(key)
	}
	return naming.Ident(key)
}

// SelectQuery builds a SOQL query for object and executes it, returning a
// cursor over the matching records.
//
// The projected field list always carries the Id field first and is
// de-duplicated case-insensitively. When no fields are given, the
// projection defaults to the object's full described schema. Conditions map
// canonical field identifiers to Condition values and are rendered in
// sorted field order.
func (c *Client) SelectQuery(ctx context.Context, tok *session.Token, object naming.Name, conditions map[string]Condition, fields ...naming.Name) (*Cursor, error) {
	vendorFields := make([]string, 0, len(fields)+1)
	vendorFields = append(vendorFields, "Id")
	seen := map[string]bool{"id": true}

	appendField := func(name string) {
		key := strings.ToLower(name)
		if !seen[key] {
			seen[key] = true
			vendorFields = append(vendorFields, name)
		}
	}

	if len(fields) == 0 {
		schema, err := c.DescribeObject(ctx, tok, object, nil)
		if err != nil {
			return nil, err
		}
		idents := make([]string, 0, len(schema))
		for ident := range schema {
			idents = append(idents, ident)
		}
		sort.Strings(idents)
		for _, ident := range idents {
			appendField(naming.FieldName(naming.Ident(ident)))
		}
	} else {
		for _, f := range fields {
			appendField(naming.FieldName(f))
		}
	}

	var b strings.Builder
	b.WriteString("select ")
	b.WriteString(strings.Join(vendorFields, ", "))
	b.WriteString(" from ")
	b.WriteString(naming.ObjectName(object))

	if len(conditions) > 0 {
		idents := make([]string, 0, len(conditions))
		for ident := range conditions {
			idents = append(idents, ident)
		}
		sort.Strings(idents)

		clauses := make([]string, 0, len(idents))
		for _, ident := range idents {
			field := naming.FieldName(fieldRef(ident))
			clauses = append(clauses, conditions[ident].render(field))
		}
		b.WriteString(" where ")
		b.WriteString(strings.Join(clauses, " and "))
	}

	return c.Query(ctx, tok, b.String())
}
