package client

import (
	"context"
	"net/http"

	"github.com/crmkit/sforce/pkg/naming"
	"github.com/crmkit/sforce/pkg/session"
)

// DescribeOptions control field filtering and descriptor projection for
// DescribeObject.
type DescribeOptions struct {
	// OmitSystemFields drops vendor-managed system fields (Id, CreatedDate,
	// ...) from the result.
	OmitSystemFields bool

	// Property selects a single descriptor property per field. Empty means
	// "type".
	Property string

	// Properties selects a named subset of descriptor properties, returned
	// as a sub-map per field. Takes precedence over Property.
	Properties []string

	// Full returns each field's raw descriptor untouched. Takes precedence
	// over Properties and Property.
	Full bool
}

// DescribeObject fetches the object's field descriptors and returns them
// keyed by canonical field identifier.
//
// The surviving field names are reverse-translated as one batch, so
// collision disambiguation is computed over exactly this object's visible
// field list.
func (c *Client) DescribeObject(ctx context.Context, tok *session.Token, object naming.Name, opts *DescribeOptions) (map[string]any, error) {
	req, err := Build(tok, http.MethodGet, c.sobjectPath(object)+"/describe", nil)
	if err != nil {
		return nil, err
	}
	m, err := c.doJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &DescribeOptions{}
	}

	descriptors, _ := m["fields"].([]any)
	names := make([]string, 0, len(descriptors))
	values := make([]any, 0, len(descriptors))
	for _, d := range descriptors {
		field, ok := d.(map[string]any)
		if !ok {
			continue
		}
		name, ok := field["name"].(string)
		if !ok {
			continue
		}
		if opts.OmitSystemFields && naming.IsSystemField(name) {
			continue
		}
		names = append(names, name)
		values = append(values, project(field, opts))
	}

	canon := naming.Reverse(names)
	schema := make(map[string]any, len(names))
	for i := range names {
		schema[canon[i]] = values[i]
	}
	return schema, nil
}

// project reduces a field descriptor according to the selected projection.
func project(field map[string]any, opts *DescribeOptions) any {
	switch {
	case opts.Full:
		return field
	case len(opts.Properties) > 0:
		sub := make(map[string]any, len(opts.Properties))
		for _, p := range opts.Properties {
			if v, ok := field[p]; ok {
				sub[p] = v
			}
		}
		return sub
	case opts.Property != "":
		return field[opts.Property]
	default:
		return field["type"]
	}
}
