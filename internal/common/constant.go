// Package common contains shared constants and sentinel errors used across
// the AuthAPI server and client components.
package common

// APIKeyHeaderName is the HTTP header that carries the pre-shared API key
// checked by the server's key gate.
const APIKeyHeaderName = "Authorization"
