// Package auth issues and validates the signed bearer tokens returned by a
// successful login. Tokens are self-contained: validity is proven entirely by
// the HMAC signature and the expiry claim, so there is no server-side
// revocation list.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkrasnov/authapi/internal/common"
)

// Claims includes the registered claims plus the user's display name.
// The stable user ID travels in the Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	UserName string `json:"username,omitempty"`
}

// TokenParams holds the signing parameters baked into every issued token.
// Loaded once from configuration and immutable afterwards.
type TokenParams struct {
	Secret   []byte
	Issuer   string
	Audience string
	Lifetime time.Duration
}

// GenerateToken builds and signs an HS256 token for the given user with
// expiry = now + p.Lifetime.
func GenerateToken(userID, userName string, p TokenParams, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    p.Issuer,
			Audience:  jwt.ClaimStrings{p.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.Lifetime)),
		},
		UserName: userName,
	})

	tokenString, err := token.SignedString(p.Secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies the signature, expiry, issuer and audience of a token
// and returns its claims. Failures map onto the shared sentinels:
// common.ErrTokenExpired, common.ErrInvalidSignature, common.ErrMalformedToken.
func ParseToken(tokenString string, p TokenParams, now time.Time) (*Claims, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	}
	if p.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.Issuer))
	}
	if p.Audience != "" {
		opts = append(opts, jwt.WithAudience(p.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return p.Secret, nil
	}, opts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrInvalidSignature
		default:
			return nil, fmt.Errorf("invalid token: %w", err)
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidSignature
	}

	return claims, nil
}
