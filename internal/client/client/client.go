// Package client talks to the AuthAPI server over HTTP. It translates
// response statuses into the sentinel errors the CLI reacts to.
package client

import "context"

type Client interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (string, error)
	Ping(ctx context.Context) error
}
