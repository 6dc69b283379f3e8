package client

import "errors"

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrAccessDenied       = errors.New("api key rejected")
)
