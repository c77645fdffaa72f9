// Package auth implements credential verification and ownership
// authorization for the course API: Basic Auth extraction, bcrypt password
// hashing, principal resolution against the user store, and the
// principal-vs-owner mutation check.
package auth

import (
	"encoding/base64"
	"strings"
)

// Credentials is the identifier/secret pair parsed from a request's
// Authorization header. It lives for one request and is never persisted.
type Credentials struct {
	Email    string
	Password string
}

// ParseBasicAuth extracts Basic Auth credentials from an Authorization
// header value. Missing or malformed input yields ok=false; this is a
// normal negative result, not an error, so the caller can treat "no
// credentials" uniformly regardless of how the header was broken.
func ParseBasicAuth(header string) (Credentials, bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return Credentials{}, false
	}

	payload := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if payload == "" {
		return Credentials{}, false
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Credentials{}, false
	}

	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return Credentials{}, false
	}

	return Credentials{Email: parts[0], Password: parts[1]}, true
}
