// Package common contains header names and sentinel errors shared by the
// gallery gateway, the state store and the CLI.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName correlates a gateway call with server-side logs.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix precedes the access token in the Authorization header.
	BearerPrefix = "Bearer "
)
