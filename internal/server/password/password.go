// Package password provides one-way password hashing and verification built
// on bcrypt. The per-call random salt and the cost factor are embedded in the
// returned record, so nothing besides the record itself needs to be stored.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the cost used by the server unless configured otherwise.
const DefaultCost = bcrypt.DefaultCost

// Hasher hashes and verifies passwords with a fixed cost factor.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// valid bcrypt range fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt record for the password. Two calls with the same
// password produce different records because of salt randomization.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored record. Any malformed
// record yields false; a corrupt stored hash must never grant access.
func (h *Hasher) Verify(password, record string) bool {
	return bcrypt.CompareHashAndPassword([]byte(record), []byte(password)) == nil
}
