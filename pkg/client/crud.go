package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/crmkit/sforce/pkg/naming"
	"github.com/crmkit/sforce/pkg/session"
)

// sobjectPath returns the collection path for an object.
func (c *Client) sobjectPath(object naming.Name) string {
	return c.basePath() + "/sobjects/" + naming.ObjectName(object)
}

// Objects lists the org's queryable object names as canonical identifiers,
// translated as one batch.
func (c *Client) Objects(ctx context.Context, tok *session.Token) ([]string, error) {
	req, err := Build(tok, http.MethodGet, c.basePath()+"/sobjects", nil)
	if err != nil {
		return nil, err
	}
	m, err := c.doJSON(ctx, req)
	if err != nil {
		return nil, err
	}

	descriptors, _ := m["sobjects"].([]any)
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		desc, ok := d.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := desc["name"].(string); ok {
			names = append(names, name)
		}
	}
	return naming.Reverse(names), nil
}

// Get fetches a record by id. Keys of the returned record are canonical,
// translated batch-scoped over the record's own key set.
func (c *Client) Get(ctx context.Context, tok *session.Token, object naming.Name, id string) (Record, error) {
	req, err := Build(tok, http.MethodGet, c.sobjectPath(object)+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	m, err := c.doJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	return translateRecord(m), nil
}

// Create inserts a new record and returns the vendor response (new record
// id, success flag) with canonical keys. Body field names are passed through
// verbatim; use naming.FieldName to derive them.
func (c *Client) Create(ctx context.Context, tok *session.Token, object naming.Name, body any) (Record, error) {
	req, err := Build(tok, http.MethodPost, c.sobjectPath(object), &RequestOptions{Body: body})
	if err != nil {
		return nil, err
	}
	m, err := c.doJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	return translateRecord(m), nil
}

// Update modifies an existing record by id. Salesforce answers 204 on
// success, so there is no response payload.
func (c *Client) Update(ctx context.Context, tok *session.Token, object naming.Name, id string, body any) error {
	req, err := Build(tok, http.MethodPatch, c.sobjectPath(object)+"/"+url.PathEscape(id), &RequestOptions{Body: body})
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, req)
	return err
}

// Delete removes a record by id.
func (c *Client) Delete(ctx context.Context, tok *session.Token, object naming.Name, id string) error {
	req, err := Build(tok, http.MethodDelete, c.sobjectPath(object)+"/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, req)
	return err
}

// Upsert creates or updates a record addressed by an alternate (external id)
// key. It fails with ErrInvalidKey when key resolves to the primary Id
// field: upsert-by-Id is a create or update, not an upsert.
func (c *Client) Upsert(ctx context.Context, tok *session.Token, object naming.Name, key naming.Name, value string, body any) (Record, error) {
	field := naming.FieldName(key)
	if field == "Id" {
		return nil, ErrInvalidKey
	}
	path := fmt.Sprintf("%s/%s/%s", c.sobjectPath(object), field, url.PathEscape(value))
	req, err := Build(tok, http.MethodPatch, path, &RequestOptions{Body: body})
	if err != nil {
		return nil, err
	}
	m, err := c.doJSON(ctx, req)
	if err != nil {
		return nil, err
	}
	return translateRecord(m), nil
}

// Save dispatches to Update when the record carries an id, else to Create.
// The id field is not included in an update body.
func (c *Client) Save(ctx context.Context, tok *session.Token, object naming.Name, record map[string]any) (Record, error) {
	for _, key := range []string{"Id", "id"} {
		id, ok := record[key].(string)
		if !ok || id == "" {
			continue
		}
		body := make(map[string]any, len(record)-1)
		for k, v := range record {
			if k != key {
				body[k] = v
			}
		}
		return nil, c.Update(ctx, tok, object, id, body)
	}
	return c.Create(ctx, tok, object, record)
}
