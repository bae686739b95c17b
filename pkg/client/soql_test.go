package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmkit/sforce/internal/testutil"
	"github.com/crmkit/sforce/pkg/naming"
)

func TestCondition_Render(t *testing.T) {
	tests := []struct {
		name     string
		cond     Condition
		expected string
	}{
		{
			name:     "string equality is quoted",
			cond:     Equals("Acme"),
			expected: "Name = 'Acme'",
		},
		{
			name:     "quotes in strings are escaped",
			cond:     Equals("O'Brien"),
			expected: `Name = 'O\'Brien'`,
		},
		{
			name:     "non-string scalar is unquoted",
			cond:     Equals(42),
			expected: "Name = 42",
		},
		{
			name:     "boolean scalar",
			cond:     Equals(true),
			expected: "Name = true",
		},
		{
			name:     "operator qualified clause",
			cond:     Op(">", 100),
			expected: "Name > 100",
		},
		{
			name:     "operator with string value",
			cond:     Op("like", "Acme%"),
			expected: "Name like 'Acme%'",
		},
		{
			name:     "literal right-hand side is inserted verbatim",
			cond:     Literal("LAST_N_DAYS:30"),
			expected: "Name = LAST_N_DAYS:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cond.render("Name"))
		})
	}
}

// selectSOQL runs SelectQuery against a mock that accepts any query and
// returns the SOQL string the client sent.
func selectSOQL(t *testing.T, conds map[string]Condition, fields ...naming.Name) string {
	t.Helper()
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.RespondJSON(queryPath, http.StatusOK, `{"done": true, "records": []}`)

	c := newTestClient(t)
	_, err := c.SelectQuery(context.Background(), mock.Token(), naming.Ident("account"), conds,
		fields...)
	require.NoError(t, err)

	last := mock.LastRequest()
	require.NotNil(t, last)
	require.Len(t, last.Query["q"], 1)
	return last.Query["q"][0]
}

func TestSelectQuery_FieldList(t *testing.T) {
	soql := selectSOQL(t, nil, naming.Ident("name"), naming.Ident("priority"))
	assert.Equal(t, "select Id, Name, Priority__c from Account", soql)
}

func TestSelectQuery_LiteralFieldBypassesTranslation(t *testing.T) {
	soql := selectSOQL(t, nil, naming.Literal("BillingCity"))
	assert.Equal(t, "select Id, BillingCity from Account", soql)
}

func TestSelectQuery_IdForcedFirstAndDeduplicated(t *testing.T) {
	soql := selectSOQL(t, nil, naming.Ident("name"), naming.Literal("ID"), naming.Ident("name"))
	assert.Equal(t, "select Id, Name from Account", soql)
}

func TestSelectQuery_WhereClause(t *testing.T) {
	soql := selectSOQL(t, map[string]Condition{
		"name":          Equals("Acme"),
		"num-employees": Op(">", 50),
	}, naming.Ident("name"))
	assert.Equal(t,
		"select Id, Name from Account where Name = 'Acme' and NumEmployees__c > 50",
		soql)
}

func TestSelectQuery_LiteralConditionKey(t *testing.T) {
	soql := selectSOQL(t, map[string]Condition{
		"BillingCity": Equals("Berlin"),
	}, naming.Ident("name"))
	assert.Equal(t,
		"select Id, Name from Account where BillingCity = 'Berlin'",
		soql)
}

func TestSelectQuery_DefaultsToDescribedSchema(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.RespondJSON("/services/data/v59.0/sobjects/Account/describe", http.StatusOK, `{
		"fields": [
			{"name": "Id", "type": "id"},
			{"name": "Name", "type": "string"},
			{"name": "Rating__c", "type": "picklist"}
		]
	}`)
	mock.RespondJSON(queryPath, http.StatusOK, `{"done": true, "records": []}`)

	c := newTestClient(t)
	_, err := c.SelectQuery(context.Background(), mock.Token(), naming.Ident("account"), nil)
	require.NoError(t, err)

	last := mock.LastRequest()
	require.NotNil(t, last)
	require.Len(t, last.Query["q"], 1)
	assert.Equal(t, "select Id, Name, Rating__c from Account", last.Query["q"][0])
}
