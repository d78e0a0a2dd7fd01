package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a parsed JWT together with the user ID extracted from its
// subject claim and, for freshly issued tokens, the signed compact string.
type Token struct {
	jwt.RegisteredClaims

	Token        *jwt.Token `json:"-"`
	UserID       string     `json:"-"`
	SignedString string     `json:"-"`
}
