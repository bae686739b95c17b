package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crmkit/sforce/pkg/naming"
	"github.com/crmkit/sforce/pkg/session"
)

// Cursor walks a paginated query result on demand, in the manner of
// database/sql.Rows:
//
//	cur, err := c.Query(ctx, tok, "select Id from Account")
//	for cur.Next(ctx) {
//	    rec := cur.Record()
//	    ...
//	}
//	if err := cur.Err(); err != nil { ... }
//
// The continuation request for a page is issued only when the consumer
// advances past the previous page's buffered records; there is no
// read-ahead and no artificial page limit. A failed page fetch ends the
// iteration; records already yielded remain valid.
type Cursor struct {
	client *Client
	tok    *session.Token

	buf  []Record
	pos  int
	next string // continuation path, empty when exhausted
	cur  Record
	err  error
}

// Query executes a SOQL query string and returns a cursor positioned before
// the first record. The initial page is fetched here; follow-up pages are
// fetched lazily by Next.
func (c *Client) Query(ctx context.Context, tok *session.Token, soql string) (*Cursor, error) {
	req, err := Build(tok, http.MethodGet, c.basePath()+"/query", &RequestOptions{
		Query: url.Values{"q": {soql}},
	})
	if err != nil {
		return nil, err
	}

	cur := &Cursor{client: c, tok: tok}
	if err := cur.consumePage(ctx, req); err != nil {
		return nil, err
	}
	return cur, nil
}

// Next advances the cursor to the following record, fetching the next page
// when the current one is exhausted. It returns false at the end of the
// result set or on error; consult Err afterwards.
func (cur *Cursor) Next(ctx context.Context) bool {
	if cur.err != nil {
		return false
	}
	for cur.pos >= len(cur.buf) {
		if cur.next == "" {
			return false
		}
		req, err := Build(cur.tok, http.MethodGet, cur.next, nil)
		if err != nil {
			cur.err = err
			return false
		}
		if err := cur.consumePage(ctx, req); err != nil {
			cur.err = err
			return false
		}
	}
	cur.cur = cur.buf[cur.pos]
	cur.pos++
	return true
}

// Record returns the record the cursor was advanced to by Next.
func (cur *Cursor) Record() Record {
	return cur.cur
}

// Err returns the error that terminated iteration, if any.
func (cur *Cursor) Err() error {
	return cur.err
}

// consumePage fetches one result page and replaces the cursor's buffer with
// its translated records. The vendor's continuation reference, when present,
// is stored verbatim for the next fetch.
func (cur *Cursor) consumePage(ctx context.Context, req *Request) error {
	page, err := cur.client.doJSON(ctx, req)
	if err != nil {
		return err
	}
	sfQueryPagesTotal.Inc()

	raw, _ := page["records"].([]any)
	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(map[string]any); ok {
			records = append(records, translateRecord(m))
		}
	}
	cur.buf = records
	cur.pos = 0

	cur.next = ""
	if nextURL, ok := page["nextRecordsUrl"].(string); ok {
		cur.next = nextURL
	}
	return nil
}

// translateRecord rewrites a raw record's keys to canonical identifiers.
// Translation is batch-scoped to this record's own key set, so collision
// disambiguation matches what the record actually carries. Nested
// record-shaped values are translated recursively, slices element-wise.
func translateRecord(m map[string]any) Record {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	canon := naming.Reverse(keys)

	out := make(Record, len(m))
	for i, k := range keys {
		out[canon[i]] = translateValue(m[k])
	}
	return out
}

func translateValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return translateRecord(val)
	case []any:
		for i, elem := range val {
			val[i] = translateValue(elem)
		}
		return val
	default:
		return v
	}
}
