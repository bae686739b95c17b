package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmkit/sforce/internal/testutil"
	"github.com/crmkit/sforce/pkg/auth"
	"github.com/crmkit/sforce/pkg/client"
	"github.com/crmkit/sforce/pkg/naming"
)

// TestFullFlow drives the whole stack against the mock API: authenticate,
// describe, query across pages, then create and update a record.
func TestFullFlow(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.RespondJSON("/services/oauth2/token", http.StatusOK, `{
		"access_token": "00Dxx!integration",
		"instance_url": "`+mock.URL()+`"
	}`)
	mock.RespondJSON("/services/data/v59.0/sobjects/Account/describe", http.StatusOK, `{
		"fields": [
			{"name": "Id", "type": "id"},
			{"name": "Name", "type": "string"},
			{"name": "Rating__c", "type": "picklist"}
		]
	}`)
	mock.RespondJSON("/services/data/v59.0/query", http.StatusOK, `{
		"done": false,
		"nextRecordsUrl": "/services/data/v59.0/query/01g-2000",
		"records": [{"Id": "001a", "Name": "Acme", "Rating__c": "hot"}]
	}`)
	mock.RespondJSON("/services/data/v59.0/query/01g-2000", http.StatusOK, `{
		"done": true,
		"records": [{"Id": "001b", "Name": "Globex", "Rating__c": "cold"}]
	}`)
	mock.RespondJSON("/services/data/v59.0/sobjects/Account", http.StatusCreated, `{
		"id": "001c", "success": true
	}`)
	mock.Handle("/services/data/v59.0/sobjects/Account/001c", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()

	// Authenticate against the mock token endpoint.
	a := auth.New()
	tok, err := a.Login(ctx, &auth.Credentials{
		LoginURL:     mock.URL(),
		ClientID:     "id",
		ClientSecret: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, mock.URL(), tok.InstanceURL)

	c, err := client.New(client.DefaultConfig())
	require.NoError(t, err)

	// Describe feeds the default projection of the convenience query.
	schema, err := c.DescribeObject(ctx, tok, naming.Ident("account"), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"id":        "id",
		"name":      "string",
		"rating__c": "picklist",
	}, schema)

	// Query across both pages, no fields given.
	cur, err := c.SelectQuery(ctx, tok, naming.Ident("account"), nil)
	require.NoError(t, err)

	var names []string
	for cur.Next(ctx) {
		rec := cur.Record()
		names = append(names, rec["name"].(string))
		assert.Contains(t, rec, "rating__c")
	}
	require.NoError(t, cur.Err())
	assert.Equal(t, []string{"Acme", "Globex"}, names)

	// Create then update through Save.
	created, err := c.Create(ctx, tok, naming.Ident("account"), map[string]any{"Name": "Initech"})
	require.NoError(t, err)
	assert.Equal(t, "001c", created["id"])

	_, err = c.Save(ctx, tok, naming.Ident("account"),
		map[string]any{"Id": "001c", "Name": "Initech GmbH"})
	require.NoError(t, err)

	last := mock.LastRequest()
	require.NotNil(t, last)
	assert.Equal(t, "/services/data/v59.0/sobjects/Account/001c", last.Path)
	assert.Equal(t, []string{"PATCH"}, last.Query["_HttpMethod"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(last.Body, &body))
	assert.Equal(t, "Initech GmbH", body["Name"])
}
