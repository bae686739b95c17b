package client

import (
	"net/http"
	"net/url"

	"github.com/crmkit/sforce/pkg/session"
)

// Request is an authorized request descriptor. Build performs no network
// I/O; descriptors are dispatched by Client.Do.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Query  url.Values

	// Body is marshalled as JSON unless it is already a []byte or string.
	Body any
}

// RequestOptions override parts of the base descriptor produced by Build.
type RequestOptions struct {
	// Header entries are merged into the base headers key by key; on a key
	// present in both, the option value wins.
	Header map[string]string

	// Query entries are merged into the base query values key by key; on a
	// key present in both, the option value wins.
	Query url.Values

	// Body replaces the base body outright.
	Body any
}

// Build composes an authorized request descriptor from a session token,
// method and instance-relative path. It returns ErrNoSession when the token
// is absent or empty.
//
// A PATCH descriptor is rewritten to POST carrying the _HttpMethod=PATCH
// override query parameter, which Salesforce accepts on behalf of transports
// that cannot issue PATCH natively.
func Build(tok *session.Token, method, path string, opts *RequestOptions) (*Request, error) {
	if !tok.Valid() {
		return nil, ErrNoSession
	}

	req := &Request{
		Method: method,
		URL:    tok.InstanceURL + path,
		Header: make(http.Header),
		Query:  make(url.Values),
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("Accept", "application/json")

	if method == http.MethodPatch {
		req.Method = http.MethodPost
		req.Query.Set("_HttpMethod", http.MethodPatch)
	}

	if opts != nil {
		for k, v := range opts.Header {
			req.Header.Set(k, v)
		}
		for k, vs := range opts.Query {
			req.Query[k] = vs
		}
		if opts.Body != nil {
			req.Body = opts.Body
		}
	}

	return req, nil
}
