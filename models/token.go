package models

import "github.com/golang-jwt/jwt/v5"

// Token is a bearer token presented by an internal caller of the gateway.
//
// The embedded [jwt.Token] is set after signing or parsing; Subject caches
// the "sub" claim, which names the calling system (e.g. "order-service").
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	Subject string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
