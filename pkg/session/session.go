// Package session defines the session token handed to every API operation.
//
// A token is acquired once (see pkg/auth for one implementation), treated as
// an immutable value, and passed explicitly on every call. The library keeps
// no process-wide session state.
package session

// Token authorizes requests against one Salesforce instance.
type Token struct {
	// InstanceURL is the base URL of the org's API host,
	// e.g. "https://na1.salesforce.com".
	InstanceURL string `json:"instance_url"`

	// AccessToken is the opaque OAuth bearer token.
	AccessToken string `json:"access_token"`
}

// Valid reports whether the token carries enough state to authorize a
// request.
func (t *Token) Valid() bool {
	return t != nil && t.InstanceURL != "" && t.AccessToken != ""
}
