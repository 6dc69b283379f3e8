// Package models contains server-side domain models.
package models

import "time"

// User is a registered account. PasswordHash is an opaque bcrypt record with
// the salt and cost factor embedded; the plaintext password is never stored.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
